package handlers

import (
	"net/http"

	"race-circuit-backend/internal/services"
	"race-circuit-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type RaceHandler struct {
	raceService        *services.RaceService
	leaderboardService *services.LeaderboardService
	authService        *services.AuthService
	hub                *ws.Hub
}

func NewRaceHandler(raceService *services.RaceService, leaderboardService *services.LeaderboardService, authService *services.AuthService, hub *ws.Hub) *RaceHandler {
	return &RaceHandler{
		raceService:        raceService,
		leaderboardService: leaderboardService,
		authService:        authService,
		hub:                hub,
	}
}

type CreateRaceRequest struct {
	CircuitID string `json:"circuit_id" binding:"required"`
}

func (h *RaceHandler) Create(c *gin.Context) {
	user, err := h.authService.GetUser(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not found"})
		return
	}

	var req CreateRaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	race, err := h.raceService.Create(user, req.CircuitID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, race)
}

func (h *RaceHandler) List(c *gin.Context) {
	races, err := h.raceService.List(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, races)
}

func (h *RaceHandler) Get(c *gin.Context) {
	race, err := h.raceService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, race)
}

func (h *RaceHandler) Join(c *gin.Context) {
	user, err := h.authService.GetUser(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not found"})
		return
	}

	if err := h.raceService.Join(c.Param("id"), user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "joined race successfully"})
}

// Start flips the race to active and tells the room.
func (h *RaceHandler) Start(c *gin.Context) {
	race, err := h.raceService.Start(c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.BroadcastToRace(race.ID, ws.NewRaceStarted(race.ID, *race.StartTime))

	c.JSON(http.StatusOK, MessageResponse{Message: "race started successfully"})
}

func (h *RaceHandler) Leaderboard(c *gin.Context) {
	standings, err := h.leaderboardService.Rank(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, standings)
}
