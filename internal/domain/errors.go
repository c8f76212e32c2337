package domain

import "errors"

// Sentinel errors wrapped by domain operations. Callers branch with errors.Is;
// business-rule rejections (room taken, over capacity, short budget) are NOT
// errors and come back inside a BookingResult instead.
var (
	ErrNotFound     = errors.New("hotel: not found")
	ErrInvalidInput = errors.New("hotel: invalid input")
	ErrInvalidState = errors.New("hotel: invalid state")
)
