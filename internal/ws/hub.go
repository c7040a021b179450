package ws

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Hub ties the connection registry to the race rooms and fans messages
// out. Delivery is best-effort and not atomic: a member disconnecting
// mid-broadcast simply misses the message. Sequential broadcasts from
// one caller reach each still-connected recipient in call order.
type Hub struct {
	registry *Registry
	rooms    *RoomSet
	log      *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		registry: NewRegistry(log),
		rooms:    NewRoomSet(),
		log:      log,
	}
}

func (h *Hub) Register(c *Client) {
	h.registry.Register(c)
	h.log.Info("client connected", zap.String("user_id", c.UserID))
}

// Unregister drops c's channel. Room membership is left alone: a
// disconnected participant is still in the race and can reconnect.
func (h *Hub) Unregister(c *Client) {
	h.registry.Unregister(c)
	h.log.Info("client disconnected", zap.String("user_id", c.UserID))
}

func (h *Hub) JoinRace(raceID, userID string) {
	h.rooms.Join(raceID, userID)
}

func (h *Hub) LeaveRace(raceID, userID string) {
	h.rooms.Leave(raceID, userID)
}

// BroadcastToRace sends event to every room member with a live channel.
// The sender, if a member, is not excluded.
func (h *Hub) BroadcastToRace(raceID string, event interface{}) {
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error("broadcast marshal failed", zap.String("race_id", raceID), zap.Error(err))
		return
	}
	for _, userID := range h.rooms.Members(raceID) {
		h.registry.Send(userID, data)
	}
}

// SendToUser delivers event to one user, silently dropped if offline.
func (h *Hub) SendToUser(userID string, event interface{}) {
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error("send marshal failed", zap.String("user_id", userID), zap.Error(err))
		return
	}
	h.registry.Send(userID, data)
}
