package domain

import (
	"fmt"
	"strings"
)

// Customer holds a budget, accrued loyalty points and back-references to the
// rooms currently booked. Budget never goes negative: payment is a binary
// affordability gate, not partial payment.
type Customer struct {
	Name          string
	Budget        float64
	LoyaltyPoints int

	booked []*Room
}

func NewCustomer(name string, budget float64) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name cannot be empty", ErrInvalidInput)
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: budget cannot be negative", ErrInvalidInput)
	}
	return &Customer{Name: name, Budget: budget}, nil
}

// AddRoom appends a room to the booked list. Uniqueness is not enforced here;
// the hotel transaction cannot book the same room twice anyway because the
// room flips unavailable on the first commit.
func (c *Customer) AddRoom(r *Room) { c.booked = append(c.booked, r) }

// RemoveRoom drops the first booked entry matching the room number.
func (c *Customer) RemoveRoom(number int) error {
	for i, r := range c.booked {
		if r.Number == number {
			c.booked = append(c.booked[:i], c.booked[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s has no booking for room %d", ErrNotFound, c.Name, number)
}

func (c *Customer) HasRoom(number int) bool {
	for _, r := range c.booked {
		if r.Number == number {
			return true
		}
	}
	return false
}

// BookedRooms returns a snapshot of the booked list.
func (c *Customer) BookedRooms() []Room {
	out := make([]Room, 0, len(c.booked))
	for _, r := range c.booked {
		out = append(out, *r)
	}
	return out
}

// Pay deducts total from the budget if it fits and awards one loyalty point
// per full 100 paid. An unaffordable total is a normal outcome (false, nil)
// and leaves the customer untouched.
func (c *Customer) Pay(total float64) (bool, error) {
	if total <= 0 {
		return false, fmt.Errorf("%w: total price must be positive", ErrInvalidInput)
	}
	if c.Budget < total {
		return false, nil
	}
	c.Budget -= total
	c.LoyaltyPoints += int(total / 100)
	return true, nil
}

// Summary renders a human-readable listing of the customer's booked rooms.
func (c *Customer) Summary() (string, error) {
	if len(c.booked) == 0 {
		return "", fmt.Errorf("%w: %s has no bookings", ErrInvalidState, c.Name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "summary for %s\nbooked rooms:\n", c.Name)
	for _, r := range c.booked {
		fmt.Fprintf(&b, "%d, %.2f$ per night\n", r.Number, r.PricePerNight)
	}
	return b.String(), nil
}
