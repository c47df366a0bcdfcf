package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cinebook/handlers"
)

// RegisterRoutes wires all endpoints onto the router. The movie surface is
// public and CORS is wide open, matching the frontend this backend serves.
func RegisterRoutes(r *gin.Engine, mh *handlers.MovieHandler) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	movie := r.Group("/movie")
	{
		movie.GET("/get-movies", mh.GetMovies)
		movie.POST("/book-movie", mh.BookMovie)
		movie.GET("/:id", mh.GetMovieByID)
	}

	r.GET("/health", handlers.HealthHandler)
}
