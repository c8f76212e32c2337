package domain

import "fmt"

type RoomType string

const (
	RoomSingle RoomType = "Single"
	RoomDouble RoomType = "Double"
)

// ParseRoomType validates a room type coming from configuration or a query
// string.
func ParseRoomType(s string) (RoomType, error) {
	switch t := RoomType(s); t {
	case RoomSingle, RoomDouble:
		return t, nil
	}
	return "", fmt.Errorf("%w: room type must be %q or %q, got %q", ErrInvalidInput, RoomSingle, RoomDouble, s)
}

// Room is a single inventory unit. The hotel owns it; a customer's booked
// list only back-references it.
type Room struct {
	Number        int
	Type          RoomType
	PricePerNight float64
	MaxGuests     int
	Available     bool
}

func NewRoom(number int, roomType RoomType, pricePerNight float64, maxGuests int) (*Room, error) {
	if _, err := ParseRoomType(string(roomType)); err != nil {
		return nil, err
	}
	if pricePerNight <= 0 {
		return nil, fmt.Errorf("%w: price per night must be positive", ErrInvalidInput)
	}
	if maxGuests <= 0 {
		return nil, fmt.Errorf("%w: max guests must be positive", ErrInvalidInput)
	}
	return &Room{
		Number:        number,
		Type:          roomType,
		PricePerNight: pricePerNight,
		MaxGuests:     maxGuests,
		Available:     true,
	}, nil
}

// Book flips the room to unavailable. Booking a room that is already taken is
// a state error, not a rejection; the hotel transaction checks availability
// first and never hits it.
func (r *Room) Book() error {
	if !r.Available {
		return fmt.Errorf("%w: room %d is not available", ErrInvalidState, r.Number)
	}
	r.Available = false
	return nil
}

// Release makes the room available again. Idempotent.
func (r *Room) Release() { r.Available = true }

// Quote prices a stay of the given length in the given season. The caller
// resolves the season at call time, so the same stay can price differently on
// different calendar days; treat the result as a quote, not a constant.
func (r *Room) Quote(nights int, season Season) (float64, error) {
	if nights <= 0 {
		return 0, fmt.Errorf("%w: nights must be positive", ErrInvalidInput)
	}
	return r.PricePerNight * season.Multiplier() * float64(nights), nil
}
