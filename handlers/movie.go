package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	movieRepo "cinebook/database/repository/movie"
	"cinebook/models"
	"cinebook/services/booking"
	"cinebook/services/catalog"
	"cinebook/utils"
)

// MovieHandler exposes the catalog reads and the booking endpoint.
type MovieHandler struct {
	Catalog catalog.Service
	Engine  booking.Engine
}

// NewMovieHandler constructs a MovieHandler.
func NewMovieHandler(catalogSvc catalog.Service, engine booking.Engine) *MovieHandler {
	return &MovieHandler{Catalog: catalogSvc, Engine: engine}
}

// GetMovies handles GET /movie/get-movies.
func (h *MovieHandler) GetMovies(c *gin.Context) {
	movies, err := h.Catalog.ListMovies(c.Request.Context())
	if err != nil {
		utils.JSONMessage(c, http.StatusInternalServerError, "Something went wrong", err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

// GetMovieByID handles GET /movie/:id.
func (h *MovieHandler) GetMovieByID(c *gin.Context) {
	movie, err := h.Catalog.GetMovie(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, movieRepo.ErrMovieNotFound) {
			utils.JSONMessage(c, http.StatusNotFound, "Movie not found", nil)
			return
		}
		utils.JSONMessage(c, http.StatusInternalServerError, "Something went wrong", err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// BookMovie handles POST /movie/book-movie. Every engine failure maps to its
// stable message; diagnostic detail stays in the logs.
func (h *MovieHandler) BookMovie(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusUnauthorized, "Some fields are missing", err)
		return
	}

	_, err := h.Engine.Book(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, utils.MessageResponse{Message: "Booking created successfully"})
	case errors.Is(err, booking.ErrMissingFields):
		utils.JSONMessage(c, http.StatusUnauthorized, "Some fields are missing", nil)
	case errors.Is(err, booking.ErrInvalidSeatCount):
		utils.JSONMessage(c, http.StatusUnauthorized, "Invalid seat count", nil)
	case errors.Is(err, booking.ErrMovieNotFound):
		utils.JSONMessage(c, http.StatusNotFound, "Requested movie not found", nil)
	case errors.Is(err, booking.ErrShowNotFound):
		utils.JSONMessage(c, http.StatusNotFound, "Show not found", nil)
	case errors.Is(err, booking.ErrInsufficientSeats):
		utils.JSONMessage(c, http.StatusNotFound, "Not enough seats available", nil)
	case errors.Is(err, booking.ErrUpdateConflict):
		utils.JSONMessage(c, http.StatusInternalServerError, "Failed to update booking", err)
	default:
		utils.JSONMessage(c, http.StatusInternalServerError, "Something went wrong", err)
	}
}
