package handlers

import (
	"net/http"
	"strconv"

	"race-circuit-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CircuitHandler struct {
	circuitService *services.CircuitService
	authService    *services.AuthService
}

func NewCircuitHandler(circuitService *services.CircuitService, authService *services.AuthService) *CircuitHandler {
	return &CircuitHandler{circuitService: circuitService, authService: authService}
}

func (h *CircuitHandler) Create(c *gin.Context) {
	user, err := h.authService.GetUser(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not found"})
		return
	}

	var req services.CircuitCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	circuit, err := h.circuitService.Create(user, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, circuit)
}

func (h *CircuitHandler) List(c *gin.Context) {
	var isPublic *bool
	if raw := c.Query("is_public"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid is_public"})
			return
		}
		isPublic = &v
	}

	circuits, err := h.circuitService.List(currentUserID(c), isPublic)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, circuits)
}

func (h *CircuitHandler) Get(c *gin.Context) {
	circuit, err := h.circuitService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, circuit)
}

func (h *CircuitHandler) Delete(c *gin.Context) {
	if err := h.circuitService.Delete(c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "circuit deleted successfully"})
}
