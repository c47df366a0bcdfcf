package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"cinebook/config"
	"cinebook/database"
	"cinebook/models"
)

// Seeds the movies collection with a week of showtimes per movie.
func main() {
	config.LoadConfig()
	database.InitDB()
	defer database.CloseDB()

	coll := database.MongoClient.
		Database(config.AppConfig.MovieDBName).
		Collection("movies")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear movies collection: %v", err)
	}

	titles := []struct {
		Title    string
		Genre    string
		Language string
		Duration int
	}{
		{"Interstellar Drift", "Sci-Fi", "English", 156},
		{"The Last Monsoon", "Drama", "Hindi", 132},
		{"Midnight Ledger", "Thriller", "English", 118},
		{"Paper Lanterns", "Romance", "Japanese", 104},
	}

	showTimes := []string{"10:30", "14:00", "18:15", "21:45"}

	// Generate dates for the next 7 days.
	var weekDates []string
	today := time.Now()
	for i := 0; i < 7; i++ {
		weekDates = append(weekDates, today.AddDate(0, 0, i).Format("2006-01-02"))
	}

	var docs []interface{}
	for _, t := range titles {
		schedule := models.Schedule{}
		for _, date := range weekDates {
			var shows []models.Show
			for _, at := range showTimes {
				shows = append(shows, models.Show{
					ID:             uuid.New().String(),
					Time:           at,
					SeatsAvailable: 40 + rand.Intn(81),
					Bookings:       []models.Booking{},
				})
			}
			schedule[date] = shows
		}
		docs = append(docs, models.Movie{
			Title:       t.Title,
			Genre:       t.Genre,
			Language:    t.Language,
			DurationMin: t.Duration,
			Schedule:    schedule,
		})
	}

	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to insert movies: %v", err)
	}

	fmt.Printf("Seeded %d movies into %s.movies\n", len(res.InsertedIDs), config.AppConfig.MovieDBName)
	for i, id := range res.InsertedIDs {
		fmt.Printf("  %s -> %v\n", titles[i].Title, id)
	}
}
