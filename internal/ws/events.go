package ws

import (
	"time"

	"race-circuit-backend/internal/models"
)

// Inbound event types.
const (
	EventJoinRace       = "join_race"
	EventPositionUpdate = "position_update"
	EventFinishRace     = "finish_race"
)

// Outbound event types.
const (
	EventRaceStarted         = "race_started"
	EventParticipantPosition = "participant_position"
	EventParticipantFinished = "participant_finished"
	EventRaceCompleted       = "race_completed"
)

// InboundEvent is the flat tagged record clients send over the socket.
// Fields beyond type/race_id apply per event type.
type InboundEvent struct {
	Type      string    `json:"type"`
	RaceID    string    `json:"race_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Speed     float64   `json:"speed"`
	Timestamp time.Time `json:"timestamp"`
	FinalTime float64   `json:"final_time"`
}

type RaceStartedEvent struct {
	Type      string    `json:"type"`
	RaceID    string    `json:"race_id"`
	StartTime time.Time `json:"start_time"`
}

func NewRaceStarted(raceID string, startTime time.Time) RaceStartedEvent {
	return RaceStartedEvent{Type: EventRaceStarted, RaceID: raceID, StartTime: startTime}
}

type ParticipantPositionEvent struct {
	Type     string                `json:"type"`
	UserID   string                `json:"user_id"`
	Position models.PositionSample `json:"position"`
}

func NewParticipantPosition(userID string, position models.PositionSample) ParticipantPositionEvent {
	return ParticipantPositionEvent{Type: EventParticipantPosition, UserID: userID, Position: position}
}

type ParticipantFinishedEvent struct {
	Type      string  `json:"type"`
	UserID    string  `json:"user_id"`
	FinalTime float64 `json:"final_time"`
}

func NewParticipantFinished(userID string, finalTime float64) ParticipantFinishedEvent {
	return ParticipantFinishedEvent{Type: EventParticipantFinished, UserID: userID, FinalTime: finalTime}
}

type RaceCompletedEvent struct {
	Type    string    `json:"type"`
	RaceID  string    `json:"race_id"`
	EndTime time.Time `json:"end_time"`
}

func NewRaceCompleted(raceID string, endTime time.Time) RaceCompletedEvent {
	return RaceCompletedEvent{Type: EventRaceCompleted, RaceID: raceID, EndTime: endTime}
}
