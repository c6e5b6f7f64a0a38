package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrSlotTaken = errors.New("slot just got taken, choose another time")

var ErrAreaUnavailable = errors.New("party area unavailable")

var ErrAlreadyBooked = errors.New("resource already booked")

var ErrResourceTypeMismatch = errors.New("resource type mismatch")

var ErrInvalidBookingState = errors.New("invalid booking state")

var ErrBlackedOut = errors.New("time is blocked out, choose another time")
