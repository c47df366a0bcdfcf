package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Schedule maps a calendar date (YYYY-MM-DD) to the shows screening that day.
type Schedule map[string][]Show

// Movie is the denormalized catalog document: the full schedule and every
// booking ever taken live inside it.
type Movie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Genre       string             `bson:"genre,omitempty" json:"genre,omitempty"`
	Language    string             `bson:"language,omitempty" json:"language,omitempty"`
	DurationMin int                `bson:"durationMin,omitempty" json:"durationMin,omitempty"`
	PosterURL   string             `bson:"posterUrl,omitempty" json:"posterUrl,omitempty"`
	Schedule    Schedule           `bson:"schedule" json:"schedule"`
}

// Show is a single screening. Its id is unique only within the parent movie.
type Show struct {
	ID             string    `bson:"id" json:"id"`
	Time           string    `bson:"time,omitempty" json:"time,omitempty"`
	SeatsAvailable int       `bson:"seatsAvailable" json:"seatsAvailable"`
	Bookings       []Booking `bson:"bookings" json:"bookings"`
}

// ShowLocation pinpoints a show inside a movie's schedule by date bucket and
// position, the coordinates the conditional update is addressed to.
type ShowLocation struct {
	Date  string
	Index int
}

// FindShow scans every date bucket for the show with the given id. Buckets
// carry no ordering and show ids are not date-predictable, so the scan is
// exhaustive.
func (m *Movie) FindShow(showID string) (*Show, ShowLocation, bool) {
	for date, shows := range m.Schedule {
		for i := range shows {
			if shows[i].ID == showID {
				return &shows[i], ShowLocation{Date: date, Index: i}, true
			}
		}
	}
	return nil, ShowLocation{}, false
}
