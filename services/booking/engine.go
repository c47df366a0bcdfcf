package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	movieRepo "cinebook/database/repository/movie"
	"cinebook/models"
	"cinebook/utils"
)

const defaultMaxAttempts = 3

// validateRequest checks the payload and parses the seat count. It performs
// no I/O; a rejected request never reaches the store.
func validateRequest(req models.BookingRequest) (int, error) {
	if req.MovieID == "" || req.ShowID == "" || req.Seats == "" ||
		req.Name == "" || req.Email == "" || req.PhoneNumber == "" {
		return 0, ErrMissingFields
	}
	seats, err := strconv.Atoi(strings.TrimSpace(req.Seats))
	if err != nil || seats <= 0 {
		return 0, ErrInvalidSeatCount
	}
	return seats, nil
}

// Book runs the booking transaction: validate, resolve the show, check
// capacity, then commit with a conditional update guarded by the seat count
// read in this very cycle. A guard miss means another booking landed in
// between; the cycle restarts on fresh state up to MaxAttempts.
func (e *DefaultEngine) Book(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	seats, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	attempts := e.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}

	logger := utils.GetLogger()

	for attempt := 1; attempt <= attempts; attempt++ {
		movie, err := e.Repo.GetByID(ctx, req.MovieID)
		if err != nil {
			if errors.Is(err, movieRepo.ErrMovieNotFound) {
				return nil, ErrMovieNotFound
			}
			return nil, fmt.Errorf("failed to resolve movie %s: %w", req.MovieID, err)
		}

		show, loc, ok := movie.FindShow(req.ShowID)
		if !ok {
			return nil, ErrShowNotFound
		}

		if show.SeatsAvailable < seats {
			return nil, ErrInsufficientSeats
		}

		booked := models.Booking{
			ID:          uuid.New().String(),
			Name:        req.Name,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Seats:       seats,
			BookedAt:    time.Now().UTC(),
		}

		err = e.Repo.ApplyBookingUpdate(ctx, req.MovieID, loc, show.SeatsAvailable, show.SeatsAvailable-seats, booked)
		if err == nil {
			logger.Info("booking committed",
				zap.String("movieId", req.MovieID),
				zap.String("showId", req.ShowID),
				zap.String("bookingId", booked.ID),
				zap.Int("seats", seats),
				zap.Int("attempt", attempt),
			)
			e.invalidateCache(req.MovieID)
			return &booked, nil
		}
		if errors.Is(err, movieRepo.ErrSeatsConflict) {
			logger.Warn("booking commit lost the seat race, retrying on fresh state",
				zap.String("movieId", req.MovieID),
				zap.String("showId", req.ShowID),
				zap.Int("attempt", attempt),
			)
			continue
		}
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	return nil, ErrUpdateConflict
}

// invalidateCache drops the cached catalog entries that embed the mutated
// seat count. Best effort: a cache miss later is just a slower read.
func (e *DefaultEngine) invalidateCache(movieID string) {
	if e.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := e.Cache.Del(ctx, utils.MovieListCacheKey, utils.MovieCacheKey(movieID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate movie cache",
			zap.String("movieId", movieID), zap.Error(err))
	}
}
