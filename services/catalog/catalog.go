package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"cinebook/models"
	"cinebook/utils"
)

// ListMovies returns every movie, serving from cache when possible.
func (s *DefaultService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	if s.Cache != nil {
		data, err := s.Cache.Get(ctx, utils.MovieListCacheKey).Result()
		if err == nil {
			var movies []models.Movie
			if err := json.Unmarshal([]byte(data), &movies); err == nil {
				return movies, nil
			}
			utils.GetLogger().Warn("corrupt movie list cache entry, falling back to store")
		} else if !errors.Is(err, redis.Nil) {
			utils.GetLogger().Warn("movie list cache read failed", zap.Error(err))
		}
	}

	movies, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, utils.MovieListCacheKey, movies)
	return movies, nil
}

// GetMovie returns one movie by id, serving from cache when possible.
// Not-found is never cached; it passes through from the repository.
func (s *DefaultService) GetMovie(ctx context.Context, movieID string) (*models.Movie, error) {
	key := utils.MovieCacheKey(movieID)
	if s.Cache != nil {
		data, err := s.Cache.Get(ctx, key).Result()
		if err == nil {
			var movie models.Movie
			if err := json.Unmarshal([]byte(data), &movie); err == nil {
				return &movie, nil
			}
			utils.GetLogger().Warn("corrupt movie cache entry, falling back to store",
				zap.String("movieId", movieID))
		} else if !errors.Is(err, redis.Nil) {
			utils.GetLogger().Warn("movie cache read failed",
				zap.String("movieId", movieID), zap.Error(err))
		}
	}

	movie, err := s.Repo.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, movie)
	return movie, nil
}

func (s *DefaultService) cacheSet(ctx context.Context, key string, v interface{}) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, s.TTL).Err(); err != nil {
		utils.GetLogger().Warn("movie cache write failed", zap.String("key", key), zap.Error(err))
	}
}
