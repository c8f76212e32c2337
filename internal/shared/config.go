package shared

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	HotelName   string
	Rooms       []RoomSpec
	CacheTTL    time.Duration
	HTTPRPS     int
}

// RoomSpec is the construction-time room inventory, read from HOTEL_ROOMS as
// a JSON array.
type RoomSpec struct {
	Number    int     `json:"number"`
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	MaxGuests int     `json:"max_guests"`
}

var defaultRooms = []RoomSpec{
	{Number: 101, Type: "Single", Price: 100.0, MaxGuests: 1},
	{Number: 102, Type: "Double", Price: 170.0, MaxGuests: 2},
	{Number: 103, Type: "Double", Price: 130.0, MaxGuests: 3},
	{Number: 104, Type: "Single", Price: 110.0, MaxGuests: 1},
	{Number: 105, Type: "Double", Price: 230.0, MaxGuests: 2},
	{Number: 106, Type: "Double", Price: 260.0, MaxGuests: 3},
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisDB:     atoi("REDIS_DB", 0),
		RedisPass:   env("REDIS_PASSWORD", ""),
		HotelName:   env("HOTEL_NAME", "The Grand Budapest Hotel"),
		Rooms:       loadRooms(),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 60)) * time.Second,
		HTTPRPS:     atoi("HTTP_RPS", 50),
	}
	return c
}

func loadRooms() []RoomSpec {
	raw := os.Getenv("HOTEL_ROOMS")
	if raw == "" {
		return defaultRooms
	}
	var rooms []RoomSpec
	if err := json.Unmarshal([]byte(raw), &rooms); err != nil || len(rooms) == 0 {
		log.Warn().Err(err).Msg("HOTEL_ROOMS is not a valid room list; using default inventory")
		return defaultRooms
	}
	return rooms
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
