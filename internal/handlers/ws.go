package handlers

import (
	"net/http"

	"race-circuit-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type WSHandler struct {
	hub    *ws.Hub
	engine *ws.Engine
	log    *zap.Logger
}

func NewWSHandler(hub *ws.Hub, engine *ws.Engine, log *zap.Logger) *WSHandler {
	return &WSHandler{hub: hub, engine: engine, log: log}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket upgrades the per-user channel and runs its session
// until disconnect.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "user id required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := ws.NewClient(userID, conn)
	h.hub.Register(client)
	go client.WritePump()
	h.engine.HandleClient(client)
}
