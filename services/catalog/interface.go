package catalog

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	movieRepo "cinebook/database/repository/movie"
	"cinebook/models"
)

// Service is the read side of the catalog.
type Service interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, movieID string) (*models.Movie, error)
}

// DefaultService serves catalog reads through a cache-aside redis layer.
// Redis is a soft dependency here: any cache failure degrades to a direct
// repository read.
type DefaultService struct {
	Repo  movieRepo.MovieRepository
	Cache *redis.Client
	TTL   time.Duration
}
