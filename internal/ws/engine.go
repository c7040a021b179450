package ws

import (
	"encoding/json"

	"race-circuit-backend/internal/models"
	"race-circuit-backend/internal/services"

	"go.uber.org/zap"
)

// Engine runs one session per connected client: it reads inbound events
// off the socket, applies them through the race service, and emits the
// resulting broadcasts. Event errors are logged, never sent back; the
// socket is a one-way firehose from the client's point of view.
type Engine struct {
	hub   *Hub
	races *services.RaceService
	log   *zap.Logger
}

func NewEngine(hub *Hub, races *services.RaceService, log *zap.Logger) *Engine {
	return &Engine{hub: hub, races: races, log: log}
}

// HandleClient reads events until the connection drops, then
// unregisters the channel. Room membership survives the disconnect.
func (e *Engine) HandleClient(c *Client) {
	defer e.hub.Unregister(c)
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		e.Dispatch(c.UserID, raw)
	}
}

// Dispatch applies one inbound event for userID.
func (e *Engine) Dispatch(userID string, raw []byte) {
	var event InboundEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		e.log.Warn("unparseable event", zap.String("user_id", userID), zap.Error(err))
		return
	}

	switch event.Type {
	case EventJoinRace:
		e.hub.JoinRace(event.RaceID, userID)

	case EventPositionUpdate:
		sample := models.PositionSample{
			Latitude:  event.Latitude,
			Longitude: event.Longitude,
			Speed:     event.Speed,
			Timestamp: event.Timestamp,
		}
		saved, err := e.races.RecordPosition(event.RaceID, userID, sample)
		if err != nil {
			e.log.Warn("position update rejected",
				zap.String("user_id", userID), zap.String("race_id", event.RaceID), zap.Error(err))
			return
		}
		e.hub.BroadcastToRace(event.RaceID, NewParticipantPosition(userID, *saved))

	case EventFinishRace:
		result, err := e.races.Finish(event.RaceID, userID, event.FinalTime)
		if err != nil {
			e.log.Warn("finish rejected",
				zap.String("user_id", userID), zap.String("race_id", event.RaceID), zap.Error(err))
			return
		}
		e.hub.BroadcastToRace(event.RaceID, NewParticipantFinished(userID, event.FinalTime))
		if result.RaceCompleted {
			e.hub.BroadcastToRace(event.RaceID, NewRaceCompleted(event.RaceID, result.EndTime))
		}

	default:
		e.log.Warn("unknown event type",
			zap.String("user_id", userID), zap.String("type", event.Type))
	}
}
