package models

import "time"

type Race struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	CircuitID   string     `gorm:"size:36;not null;index" json:"circuit_id"`
	CircuitName string     `gorm:"size:255;not null" json:"circuit_name"`
	CreatorID   string     `gorm:"size:36;not null;index" json:"creator_id"`
	CreatorName string     `gorm:"size:100;not null" json:"creator_name"`
	Status      string     `gorm:"size:20;not null;default:'waiting'" json:"status"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	// Participant user ids in join order, filled in by the race service.
	Participants []string `gorm:"-" json:"participants"`
}

const (
	RaceStatusWaiting   = "waiting"
	RaceStatusActive    = "active"
	RaceStatusCompleted = "completed"
)
