package booking

import (
	"context"

	"github.com/go-redis/redis/v8"

	movieRepo "cinebook/database/repository/movie"
	"cinebook/models"
)

// Engine enforces seat availability and consistency for booking requests.
type Engine interface {
	Book(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
}

// DefaultEngine runs each booking as an independent read-check-write
// transaction against the catalog store. It holds no per-request state, so
// replicas need no coordination beyond the store's conditional update.
type DefaultEngine struct {
	Repo  movieRepo.MovieRepository
	Cache *redis.Client
	// MaxAttempts bounds the read-check-write retries under contention.
	MaxAttempts int
}
