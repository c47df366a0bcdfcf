package movieRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"cinebook/models"
)

// GetAll returns every movie document with its embedded schedule.
func (r *mongoMovieRepo) GetAll(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	defer cursor.Close(ctx)

	var movies []models.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}
	return movies, nil
}

// GetByID fetches one movie by its hex ObjectID. An id that does not parse
// cannot name a stored movie, so it maps to ErrMovieNotFound rather than a
// storage failure.
func (r *mongoMovieRepo) GetByID(ctx context.Context, movieID string) (*models.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, ErrMovieNotFound
	}

	var movie models.Movie
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&movie); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to fetch movie %s: %w", movieID, err)
	}
	return &movie, nil
}
