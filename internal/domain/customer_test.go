package domain_test

import (
	"errors"
	"strings"
	"testing"

	"hotel_booking/internal/domain"
)

func TestNewCustomer_Validation(t *testing.T) {
	if _, err := domain.NewCustomer("", 500.0); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("empty name: expected ErrInvalidInput, got %v", err)
	}
	if _, err := domain.NewCustomer("   ", 500.0); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("blank name: expected ErrInvalidInput, got %v", err)
	}
	if _, err := domain.NewCustomer("gio", -1); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("negative budget: expected ErrInvalidInput, got %v", err)
	}
	c, err := domain.NewCustomer("  gio  ", 0)
	if err != nil {
		t.Fatalf("zero budget should be allowed: %v", err)
	}
	if c.Name != "gio" {
		t.Fatalf("name should be trimmed, got %q", c.Name)
	}
}

func TestCustomer_PaySufficientBudget(t *testing.T) {
	c, _ := domain.NewCustomer("lasha", 500.0)
	ok, err := c.Pay(200.0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok {
		t.Fatal("payment should succeed")
	}
	if c.Budget != 300.0 {
		t.Fatalf("budget: got %v, want 300", c.Budget)
	}
	if c.LoyaltyPoints != 2 {
		t.Fatalf("loyalty points: got %d, want 2", c.LoyaltyPoints)
	}
}

func TestCustomer_PayInsufficientBudget(t *testing.T) {
	c, _ := domain.NewCustomer("lasha", 500.0)
	ok, err := c.Pay(600.0)
	if err != nil {
		t.Fatalf("insufficient budget is not an error, got %v", err)
	}
	if ok {
		t.Fatal("payment should fail")
	}
	if c.Budget != 500.0 || c.LoyaltyPoints != 0 {
		t.Fatalf("state must be unchanged: budget=%v points=%d", c.Budget, c.LoyaltyPoints)
	}
}

func TestCustomer_PayInvalidTotal(t *testing.T) {
	c, _ := domain.NewCustomer("lasha", 500.0)
	for _, total := range []float64{0, -20} {
		if _, err := c.Pay(total); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("total=%v: expected ErrInvalidInput, got %v", total, err)
		}
	}
}

func TestCustomer_RemoveRoom(t *testing.T) {
	c, _ := domain.NewCustomer("lasha", 500.0)
	if err := c.RemoveRoom(101); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("remove unbooked room: expected ErrNotFound, got %v", err)
	}

	r, _ := domain.NewRoom(101, domain.RoomSingle, 100.0, 1)
	c.AddRoom(r)
	if !c.HasRoom(101) {
		t.Fatal("expected room 101 in booked list")
	}
	if err := c.RemoveRoom(101); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.HasRoom(101) {
		t.Fatal("room 101 should be removed")
	}
}

func TestCustomer_Summary(t *testing.T) {
	c, _ := domain.NewCustomer("gio", 500.0)
	if _, err := c.Summary(); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("no bookings: expected ErrInvalidState, got %v", err)
	}

	r, _ := domain.NewRoom(101, domain.RoomSingle, 100.0, 1)
	c.AddRoom(r)
	s, err := c.Summary()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(s, "gio") || !strings.Contains(s, "101") {
		t.Fatalf("summary missing name or room: %q", s)
	}
}
