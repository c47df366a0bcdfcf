package booking

import "errors"

// Request failures are sentinels so the HTTP layer can map each to its
// stable status and message.
var (
	ErrMissingFields     = errors.New("some fields are missing")
	ErrInvalidSeatCount  = errors.New("invalid seat count")
	ErrMovieNotFound     = errors.New("requested movie not found")
	ErrShowNotFound      = errors.New("show not found")
	ErrInsufficientSeats = errors.New("not enough seats available")
	// ErrUpdateConflict surfaces after the retry budget is spent losing
	// compare-and-set races.
	ErrUpdateConflict = errors.New("failed to update booking")
)
