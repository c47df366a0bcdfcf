package movieRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"cinebook/models"
)

// ApplyBookingUpdate performs the booking commit as a single conditional
// UpdateOne: the filter pins the document id and the exact seat count the
// engine observed, the update sets the new count and pushes the booking.
// Either both take effect or neither does. MatchedCount == 0 means another
// writer got there first.
func (r *mongoMovieRepo) ApplyBookingUpdate(ctx context.Context, movieID string, loc models.ShowLocation, expectedSeats, newSeats int, booking models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return ErrMovieNotFound
	}

	seatField := fmt.Sprintf("schedule.%s.%d.seatsAvailable", loc.Date, loc.Index)
	bookingsField := fmt.Sprintf("schedule.%s.%d.bookings", loc.Date, loc.Index)

	filter := bson.M{
		"_id":     oid,
		seatField: expectedSeats,
	}
	update := bson.M{
		"$set":  bson.M{seatField: newSeats},
		"$push": bson.M{bookingsField: booking},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to apply booking update: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrSeatsConflict
	}
	return nil
}
