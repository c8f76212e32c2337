package domain_test

import (
	"errors"
	"testing"

	"hotel_booking/internal/domain"
)

func TestNewRoom_Validation(t *testing.T) {
	cases := []struct {
		name      string
		roomType  domain.RoomType
		price     float64
		maxGuests int
		wantErr   bool
	}{
		{"single ok", domain.RoomSingle, 100.0, 1, false},
		{"double ok", domain.RoomDouble, 170.0, 2, false},
		{"bad type", domain.RoomType("Triple"), 100.0, 3, true},
		{"zero price", domain.RoomSingle, 0, 1, true},
		{"negative price", domain.RoomSingle, -10, 1, true},
		{"zero guests", domain.RoomSingle, 100.0, 0, true},
	}
	for _, c := range cases {
		r, err := domain.NewRoom(101, c.roomType, c.price, c.maxGuests)
		if c.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error", c.name)
			}
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("%s: expected ErrInvalidInput, got %v", c.name, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", c.name, err)
		}
		if !r.Available {
			t.Fatalf("%s: new room should be available", c.name)
		}
	}
}

func TestRoom_BookAndRelease(t *testing.T) {
	r, err := domain.NewRoom(101, domain.RoomSingle, 100.0, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := r.Book(); err != nil {
		t.Fatalf("first book: %v", err)
	}
	if r.Available {
		t.Fatal("room should be unavailable after booking")
	}
	if err := r.Book(); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("double book: expected ErrInvalidState, got %v", err)
	}
	r.Release()
	r.Release() // idempotent
	if !r.Available {
		t.Fatal("room should be available after release")
	}
}

func TestRoom_Quote(t *testing.T) {
	r, err := domain.NewRoom(101, domain.RoomSingle, 100.0, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// linear in nights, scaled by the season multiplier
	for nights := 1; nights <= 5; nights++ {
		got, err := r.Quote(nights, domain.SeasonSummer)
		if err != nil {
			t.Fatalf("nights=%d: %v", nights, err)
		}
		want := 100.0 * 1.3 * float64(nights)
		if got != want {
			t.Fatalf("nights=%d: got %v, want %v", nights, got, want)
		}
	}

	for _, nights := range []int{0, -1} {
		if _, err := r.Quote(nights, domain.SeasonWinter); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("nights=%d: expected ErrInvalidInput, got %v", nights, err)
		}
	}
}
