package handlers

import (
	"net/http"

	"race-circuit-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	groupService *services.GroupService
	authService  *services.AuthService
}

func NewGroupHandler(groupService *services.GroupService, authService *services.AuthService) *GroupHandler {
	return &GroupHandler{groupService: groupService, authService: authService}
}

type CreateGroupRequest struct {
	Name      string   `json:"name" binding:"required,min=1,max=100"`
	MemberIDs []string `json:"member_ids"`
}

func (h *GroupHandler) Create(c *gin.Context) {
	user, err := h.authService.GetUser(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not found"})
		return
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	group, err := h.groupService.Create(user, req.Name, req.MemberIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.groupService.List(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}
