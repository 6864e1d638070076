package storage

import "errors"

// ErrUserNotFound is returned when an external identity does not resolve to an internal user row.
var ErrUserNotFound = errors.New("user not found")

// ErrGigNotFound is returned when a gig does not exist.
var ErrGigNotFound = errors.New("gig not found")

// ErrUpdateConflict is returned when a conditional status write affected zero rows,
// meaning another transition won the race since the pre-check read.
var ErrUpdateConflict = errors.New("gig was updated by another request")

// ErrNoPaymentsForGig is returned when a gig expected to carry payment rows has none.
var ErrNoPaymentsForGig = errors.New("no payments found for gig")
