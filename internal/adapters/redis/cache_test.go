package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "hotel_booking/internal/adapters/redis"
	"hotel_booking/internal/domain"
)

func TestCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	rooms := []domain.Room{
		{Number: 101, Type: domain.RoomSingle, PricePerNight: 100.0, MaxGuests: 1, Available: true},
	}
	if err := cache.Set(ctx, "rooms:avail", rooms, 60); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got []domain.Room
	ok, err := cache.Get(ctx, "rooms:avail", &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if len(got) != 1 || got[0].Number != 101 || got[0].PricePerNight != 100.0 {
		t.Fatalf("unexpected value: %+v", got)
	}

	if err := cache.Del(ctx, "rooms:avail"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if ok, _ := cache.Get(ctx, "rooms:avail", &got); ok {
		t.Fatal("expected a miss after Del")
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := cache.Set(ctx, "quote:101:2:summer", 260.0, 30); err != nil {
		t.Fatalf("Set: %v", err)
	}
	mr.FastForward(31 * time.Second)

	var got float64
	if ok, _ := cache.Get(ctx, "quote:101:2:summer", &got); ok {
		t.Fatal("expected the key to expire")
	}
}
