package model

import "errors"

// Store level outcomes. Callers translate them into user facing errors.

var ErrNotFound = errors.New("record not found")

var ErrNoFreeResource = errors.New("no free resource for the requested window")

var ErrOverlap = errors.New("reservation overlaps an existing reservation")
