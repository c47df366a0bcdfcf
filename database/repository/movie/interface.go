package movieRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"cinebook/config"
	"cinebook/database"
	"cinebook/models"
)

var (
	// ErrMovieNotFound is returned when no stored movie matches the given id,
	// including ids that are not valid ObjectID hex.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrSeatsConflict is the compare-and-set miss: the seat count changed
	// between the caller's read and the conditional write.
	ErrSeatsConflict = errors.New("seat availability changed since read")
)

// MovieRepository is the catalog store: point lookup, bulk listing, and the
// sole mutation entry point used by the booking engine.
type MovieRepository interface {
	GetAll(ctx context.Context) ([]models.Movie, error)
	GetByID(ctx context.Context, movieID string) (*models.Movie, error)

	// ApplyBookingUpdate decrements the seat count and appends the booking in
	// one atomic write against the (movie, date bucket, show index) target.
	// The write is guarded by expectedSeats; a guard miss returns
	// ErrSeatsConflict and leaves the document untouched.
	ApplyBookingUpdate(ctx context.Context, movieID string, loc models.ShowLocation, expectedSeats, newSeats int, booking models.Booking) error

	EnsureIndexes(ctx context.Context) error
}

type mongoMovieRepo struct {
	coll *mongo.Collection
}

// NewMongoMovieRepo constructs a new MongoDB MovieRepository.
func NewMongoMovieRepo() MovieRepository {
	db := database.MongoClient.Database(config.AppConfig.MovieDBName)
	return &mongoMovieRepo{
		coll: db.Collection("movies"),
	}
}

// NewMovieRepoWithCollection wires a repository to an explicit collection.
// Used by the seeder and integration tests.
func NewMovieRepoWithCollection(coll *mongo.Collection) MovieRepository {
	return &mongoMovieRepo{coll: coll}
}
