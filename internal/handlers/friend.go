package handlers

import (
	"net/http"

	"race-circuit-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	friendService *services.FriendService
	authService   *services.AuthService
}

func NewFriendHandler(friendService *services.FriendService, authService *services.AuthService) *FriendHandler {
	return &FriendHandler{friendService: friendService, authService: authService}
}

type FriendRequestBody struct {
	FriendEmail string `json:"friend_email" binding:"required,email"`
}

func (h *FriendHandler) SendRequest(c *gin.Context) {
	user, err := h.authService.GetUser(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not found"})
		return
	}

	var req FriendRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.friendService.SendRequest(user, req.FriendEmail); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "friend request sent"})
}

func (h *FriendHandler) List(c *gin.Context) {
	friends, err := h.friendService.List(currentUserID(c), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

func (h *FriendHandler) Accept(c *gin.Context) {
	if err := h.friendService.Accept(c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "friend request accepted"})
}
