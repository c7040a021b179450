package handlers

import (
	"errors"
	"net/http"

	"race-circuit-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		// ErrInvalidState, ErrAlreadyJoined, validation failures.
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}

// currentUserID reads the identity the JWT middleware stored.
func currentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}
