package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

// BookingService is the command side: it owns the hotel, serializes the
// booking/cancel critical section (the HTTP adapter is concurrent, the domain
// is not), forwards domain results to the logging sink and metrics, and
// evicts cache keys the mutation invalidated.
type BookingService struct {
	mu    sync.Mutex
	hotel *domain.Hotel
	cache domain.Cache
	log   zerolog.Logger
}

func NewBookingService(h *domain.Hotel, cache domain.Cache, log zerolog.Logger) *BookingService {
	return &BookingService{hotel: h, cache: cache, log: log}
}

func (s *BookingService) Book(ctx context.Context, c *domain.Customer, roomNumber, nights, guests int) (domain.BookingResult, error) {
	s.mu.Lock()
	res, err := s.hotel.Book(c, roomNumber, nights, guests)
	s.mu.Unlock()
	if err != nil {
		return domain.BookingResult{}, err
	}

	if !res.Booked {
		observability.ObserveBooking(string(res.Reason))
		s.log.Warn().
			Str("customer", c.Name).
			Int("room", roomNumber).
			Str("reason", string(res.Reason)).
			Float64("total", res.Total).
			Msg("booking rejected")
		return res, nil
	}

	observability.ObserveBooking("booked")
	observability.ObserveRevenue(res.Entry.TotalPrice)
	s.log.Info().
		Str("customer", c.Name).
		Int("room", roomNumber).
		Int("nights", nights).
		Float64("total", res.Entry.TotalPrice).
		Str("season", string(res.Entry.Season)).
		Msg("booking committed")

	if s.cache != nil {
		s.invalidateAvailability(ctx)
		s.invalidateQuotes(ctx, roomNumber, res.Entry.Season)
	}
	return res, nil
}

func (s *BookingService) Cancel(ctx context.Context, c *domain.Customer, roomNumber int) error {
	s.mu.Lock()
	err := s.hotel.Cancel(c, roomNumber)
	season := s.hotel.Season()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	observability.ObserveCancellation()
	s.log.Info().
		Str("customer", c.Name).
		Int("room", roomNumber).
		Msg("booking cancelled")

	if s.cache != nil {
		s.invalidateAvailability(ctx)
		s.invalidateQuotes(ctx, roomNumber, season)
	}
	return nil
}

// Summary renders the customer's booking summary under the same lock that
// guards mutation of the booked list.
func (s *BookingService) Summary(c *domain.Customer) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.Summary()
}

// BookingLog returns a snapshot of the hotel's ledger.
func (s *BookingService) BookingLog() []domain.BookingLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hotel.BookingLog()
}

// locked read helpers for the query service

func (s *BookingService) snapshotAvailable(filter string) ([]domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hotel.AvailableRooms(filter)
}

func (s *BookingService) season() domain.Season {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hotel.Season()
}

func (s *BookingService) quote(number, nights int) (float64, domain.Season, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	season := s.hotel.Season()
	total, err := s.hotel.Quote(number, nights)
	return total, season, err
}

// invalidate availability caches (all type filters)
func (s *BookingService) invalidateAvailability(ctx context.Context) {
	for _, key := range []string{availKey(""), availKey(string(domain.RoomSingle)), availKey(string(domain.RoomDouble))} {
		_ = s.cache.Del(ctx, key)
	}
}

// invalidate the most common quote cache variants for a room
func (s *BookingService) invalidateQuotes(ctx context.Context, roomNumber int, season domain.Season) {
	// Quotes only depend on static room data and the season, but clear the
	// short-stay keys anyway so a re-priced room never serves a stale total.
	for nights := 1; nights <= 7; nights++ {
		_ = s.cache.Del(ctx, quoteKey(roomNumber, nights, season))
	}
}

func availKey(filter string) string {
	if filter == "" {
		return "rooms:avail"
	}
	return "rooms:avail:" + filter
}

func quoteKey(number, nights int, season domain.Season) string {
	return fmt.Sprintf("quote:%d:%d:%s", number, nights, season)
}
