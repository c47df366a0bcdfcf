package models

import "time"

// Booking is an immutable record appended to a show's booking history.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber"`
	Seats       int       `bson:"seats" json:"seats"`
	BookedAt    time.Time `bson:"bookedAt" json:"bookedAt"`
}

// BookingRequest is the transient client payload. Seats arrives as a string
// and is parsed by the engine before any store access is attempted.
type BookingRequest struct {
	MovieID     string `json:"movieId"`
	ShowID      string `json:"showId"`
	Seats       string `json:"seats"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}
