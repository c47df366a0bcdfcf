package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	movieRepo "cinebook/database/repository/movie"
	"cinebook/models"
	"cinebook/services/catalog"
	"cinebook/utils"
)

type stubMovieRepo struct {
	movies   []models.Movie
	getAll   int
	getByID  int
	notFound bool
}

func (s *stubMovieRepo) GetAll(ctx context.Context) ([]models.Movie, error) {
	s.getAll++
	return s.movies, nil
}

func (s *stubMovieRepo) GetByID(ctx context.Context, movieID string) (*models.Movie, error) {
	s.getByID++
	if s.notFound {
		return nil, movieRepo.ErrMovieNotFound
	}
	return &s.movies[0], nil
}

func (s *stubMovieRepo) ApplyBookingUpdate(ctx context.Context, movieID string, loc models.ShowLocation, expectedSeats, newSeats int, booked models.Booking) error {
	return nil
}

func (s *stubMovieRepo) EnsureIndexes(ctx context.Context) error { return nil }

func sampleMovies() []models.Movie {
	return []models.Movie{{
		ID:    primitive.NewObjectID(),
		Title: "Midnight Ledger",
		Genre: "Thriller",
		Schedule: models.Schedule{
			"2026-09-03": {{ID: "late-show", Time: "21:45", SeatsAvailable: 30}},
		},
	}}
}

func TestListMoviesCacheMiss(t *testing.T) {
	movies := sampleMovies()
	repo := &stubMovieRepo{movies: movies}
	cache, mock := redismock.NewClientMock()
	svc := &catalog.DefaultService{Repo: repo, Cache: cache, TTL: 30 * time.Second}

	payload, err := json.Marshal(movies)
	require.NoError(t, err)
	mock.ExpectGet(utils.MovieListCacheKey).RedisNil()
	mock.ExpectSet(utils.MovieListCacheKey, payload, 30*time.Second).SetVal("OK")

	got, err := svc.ListMovies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, movies, got)
	assert.Equal(t, 1, repo.getAll)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMoviesCacheHitSkipsStore(t *testing.T) {
	movies := sampleMovies()
	repo := &stubMovieRepo{movies: movies}
	cache, mock := redismock.NewClientMock()
	svc := &catalog.DefaultService{Repo: repo, Cache: cache, TTL: 30 * time.Second}

	payload, err := json.Marshal(movies)
	require.NoError(t, err)
	mock.ExpectGet(utils.MovieListCacheKey).SetVal(string(payload))

	got, err := svc.ListMovies(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, movies[0].Title, got[0].Title)
	assert.Zero(t, repo.getAll, "cache hit must not reach the store")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMoviesCacheFailureDegradesToStore(t *testing.T) {
	movies := sampleMovies()
	repo := &stubMovieRepo{movies: movies}
	cache, mock := redismock.NewClientMock()
	svc := &catalog.DefaultService{Repo: repo, Cache: cache, TTL: 30 * time.Second}

	payload, err := json.Marshal(movies)
	require.NoError(t, err)
	mock.ExpectGet(utils.MovieListCacheKey).SetErr(errors.New("redis down"))
	mock.ExpectSet(utils.MovieListCacheKey, payload, 30*time.Second).SetErr(errors.New("redis down"))

	got, err := svc.ListMovies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, movies, got)
	assert.Equal(t, 1, repo.getAll)
}

func TestGetMovieCacheMiss(t *testing.T) {
	movies := sampleMovies()
	repo := &stubMovieRepo{movies: movies}
	cache, mock := redismock.NewClientMock()
	svc := &catalog.DefaultService{Repo: repo, Cache: cache, TTL: 30 * time.Second}

	id := movies[0].ID.Hex()
	payload, err := json.Marshal(&movies[0])
	require.NoError(t, err)
	mock.ExpectGet(utils.MovieCacheKey(id)).RedisNil()
	mock.ExpectSet(utils.MovieCacheKey(id), payload, 30*time.Second).SetVal("OK")

	got, err := svc.GetMovie(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, movies[0].Title, got.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMovieNotFoundPassesThrough(t *testing.T) {
	repo := &stubMovieRepo{notFound: true}
	cache, mock := redismock.NewClientMock()
	svc := &catalog.DefaultService{Repo: repo, Cache: cache, TTL: 30 * time.Second}

	id := primitive.NewObjectID().Hex()
	mock.ExpectGet(utils.MovieCacheKey(id)).RedisNil()

	_, err := svc.GetMovie(context.Background(), id)
	assert.ErrorIs(t, err, movieRepo.ErrMovieNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
