package app

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"hotel_booking/internal/domain"
)

// QueryService is the read side: cache-aside over the Cache port with a TTL,
// with singleflight collapsing concurrent misses onto one snapshot.
type QueryService struct {
	books *BookingService
	cache domain.Cache
	ttl   time.Duration
	sf    singleflight.Group
}

func NewQueryService(b *BookingService, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{books: b, cache: c, ttl: ttl}
}

// AvailableRooms returns the available-rooms snapshot, optionally filtered by
// room type ("" for all).
func (q *QueryService) AvailableRooms(ctx context.Context, filter string) ([]domain.Room, error) {
	key := availKey(filter)
	var cached []domain.Room
	if ok, _ := q.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	v, err, _ := q.sf.Do(key, func() (any, error) {
		rooms, err := q.books.snapshotAvailable(filter)
		if err != nil {
			return nil, err
		}
		_ = q.cache.Set(ctx, key, rooms, int(q.ttl.Seconds()))
		return rooms, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Room), nil
}

// QuoteView is the priced answer to "what would this stay cost today".
type QuoteView struct {
	RoomNumber int
	Nights     int
	Season     domain.Season
	Total      float64
}

// Quote prices a stay at today's season. Cached per room/nights/season so the
// key rolls over naturally when the season does.
func (q *QueryService) Quote(ctx context.Context, number, nights int) (QuoteView, error) {
	if nights <= 0 {
		// reject before touching the cache; same class of error the room returns
		_, _, err := q.books.quote(number, nights)
		return QuoteView{}, err
	}

	season := q.books.season()
	key := quoteKey(number, nights, season)
	var cached QuoteView
	if ok, _ := q.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	v, err, _ := q.sf.Do(key, func() (any, error) {
		total, season, err := q.books.quote(number, nights)
		if err != nil {
			return nil, err
		}
		view := QuoteView{RoomNumber: number, Nights: nights, Season: season, Total: total}
		_ = q.cache.Set(ctx, key, view, int(q.ttl.Seconds()))
		return view, nil
	})
	if err != nil {
		return QuoteView{}, err
	}
	return v.(QuoteView), nil
}
