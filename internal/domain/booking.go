package domain

import (
	"math"
	"time"
)

// BookingLogEntry is an immutable record of a committed booking, kept in the
// hotel's in-memory ledger for the process lifetime.
type BookingLogEntry struct {
	Timestamp  time.Time
	Customer   string
	RoomNumber int
	RoomType   RoomType
	Nights     int
	TotalPrice float64 // rounded to cents
	Season     Season
}

// RejectReason labels the expected business-rule rejections. These are valid
// requests the hotel could not satisfy, distinct from malformed ones.
type RejectReason string

const (
	RejectUnavailable       RejectReason = "unavailable"
	RejectOverCapacity      RejectReason = "over_capacity"
	RejectInsufficientFunds RejectReason = "insufficient_funds"
)

// BookingResult describes the outcome of a booking attempt. The domain does
// not log; the application layer turns the result into observability events.
type BookingResult struct {
	Booked bool
	Reason RejectReason // set when Booked is false
	Total  float64      // quoted total, when the transaction got that far
	Entry  *BookingLogEntry
}

func roundCents(v float64) float64 { return math.Round(v*100) / 100 }
