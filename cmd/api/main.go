package main

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	server "hotel_booking/internal/adapters/http_server"
	"hotel_booking/internal/adapters/observability"
	redisad "hotel_booking/internal/adapters/redis"
	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
	"hotel_booking/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// hotel setup: rooms are added before operation begins, never removed
	hotel, err := domain.NewHotel(cfg.HotelName, time.Now)
	if err != nil {
		log.Fatal().Err(err).Msg("hotel setup failed")
	}
	for _, spec := range cfg.Rooms {
		room, err := domain.NewRoom(spec.Number, domain.RoomType(spec.Type), spec.Price, spec.MaxGuests)
		if err != nil {
			log.Fatal().Err(err).Int("room", spec.Number).Msg("invalid room in inventory")
		}
		if err := hotel.AddRoom(room); err != nil {
			log.Fatal().Err(err).Int("room", spec.Number).Msg("duplicate room in inventory")
		}
	}
	log.Info().Str("hotel", hotel.Name).Int("rooms", len(cfg.Rooms)).Msg("inventory loaded")

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	books := app.NewBookingService(hotel, cache, log.Logger)
	queries := app.NewQueryService(books, cache, cfg.CacheTTL)
	customers := app.NewCustomerDirectory()

	// http
	srv := server.New(cfg.HTTPRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{B: books, Q: queries, Customers: customers})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
