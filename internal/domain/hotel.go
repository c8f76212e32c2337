package domain

import (
	"fmt"
	"strings"
	"time"
)

// Hotel is the registry of rooms and the sole authority over their existence
// and uniqueness. It runs the booking transaction and keeps the append-only
// booking ledger. Hotel itself is not safe for concurrent use; the
// application layer serializes access to it.
type Hotel struct {
	Name string

	rooms map[int]*Room
	order []int // room numbers in registration order, for stable listings
	log   []BookingLogEntry
	now   Clock
}

func NewHotel(name string, now Clock) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: hotel name cannot be empty", ErrInvalidInput)
	}
	if now == nil {
		now = time.Now
	}
	return &Hotel{Name: name, rooms: make(map[int]*Room), now: now}, nil
}

// AddRoom registers a room. Rooms are added at setup and never removed.
func (h *Hotel) AddRoom(r *Room) error {
	if _, ok := h.rooms[r.Number]; ok {
		return fmt.Errorf("%w: room %d already exists", ErrInvalidState, r.Number)
	}
	h.rooms[r.Number] = r
	h.order = append(h.order, r.Number)
	return nil
}

// Room looks a room up by number.
func (h *Hotel) Room(number int) (*Room, error) {
	r, ok := h.rooms[number]
	if !ok {
		return nil, fmt.Errorf("%w: room %d", ErrNotFound, number)
	}
	return r, nil
}

// Season resolves the pricing season from the hotel's clock.
func (h *Hotel) Season() Season { return SeasonOf(h.now()) }

// AvailableRooms returns a snapshot of the currently available rooms in
// registration order, optionally filtered by type. filter is "" for all.
func (h *Hotel) AvailableRooms(filter string) ([]Room, error) {
	var want RoomType
	if filter != "" {
		t, err := ParseRoomType(filter)
		if err != nil {
			return nil, err
		}
		want = t
	}
	out := make([]Room, 0, len(h.order))
	for _, n := range h.order {
		r := h.rooms[n]
		if !r.Available {
			continue
		}
		if want != "" && r.Type != want {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

// Quote prices a stay in the given room at today's season.
func (h *Hotel) Quote(number, nights int) (float64, error) {
	r, err := h.Room(number)
	if err != nil {
		return 0, err
	}
	return r.Quote(nights, h.Season())
}

// Book runs the booking transaction: validate, look up, check availability
// and capacity, quote, charge, then commit. Every check before the commit is
// read-only, so a rejection leaves no partial state behind and there is
// nothing to roll back. Rejections come back in the result; only malformed
// input or a missing room is an error.
func (h *Hotel) Book(c *Customer, number, nights, guests int) (BookingResult, error) {
	if nights <= 0 {
		return BookingResult{}, fmt.Errorf("%w: nights must be positive", ErrInvalidInput)
	}
	if guests <= 0 {
		return BookingResult{}, fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	room, err := h.Room(number)
	if err != nil {
		return BookingResult{}, err
	}
	if !room.Available {
		return BookingResult{Reason: RejectUnavailable}, nil
	}
	if guests > room.MaxGuests {
		return BookingResult{Reason: RejectOverCapacity}, nil
	}

	season := h.Season()
	total, err := room.Quote(nights, season)
	if err != nil {
		return BookingResult{}, err
	}

	paid, err := c.Pay(total)
	if err != nil {
		return BookingResult{}, err
	}
	if !paid {
		return BookingResult{Reason: RejectInsufficientFunds, Total: total}, nil
	}

	// Commit. Payment succeeded, so the remaining mutations must all happen.
	if err := room.Book(); err != nil {
		return BookingResult{}, err
	}
	c.AddRoom(room)
	entry := BookingLogEntry{
		Timestamp:  h.now(),
		Customer:   c.Name,
		RoomNumber: room.Number,
		RoomType:   room.Type,
		Nights:     nights,
		TotalPrice: roundCents(total),
		Season:     season,
	}
	h.log = append(h.log, entry)
	return BookingResult{Booked: true, Total: total, Entry: &entry}, nil
}

// Cancel releases the room and removes it from the customer's booked list.
// The payment and loyalty points are deliberately NOT reversed: no refunds.
func (h *Hotel) Cancel(c *Customer, number int) error {
	room, err := h.Room(number)
	if err != nil {
		return err
	}
	if !c.HasRoom(number) {
		return fmt.Errorf("%w: %s has no booking for room %d", ErrInvalidState, c.Name, number)
	}
	room.Release()
	return c.RemoveRoom(number)
}

// BookingLog returns a snapshot of the ledger.
func (h *Hotel) BookingLog() []BookingLogEntry {
	out := make([]BookingLogEntry, len(h.log))
	copy(out, h.log)
	return out
}
