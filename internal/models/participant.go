package models

import "time"

// RaceParticipant is a user's per-race progress record. Seq is the join
// order within the race and is the storage order for leaderboard ties.
type RaceParticipant struct {
	ID        string           `gorm:"primaryKey;size:36" json:"id"`
	RaceID    string           `gorm:"size:36;not null;index:idx_race_user,unique" json:"race_id"`
	UserID    string           `gorm:"size:36;not null;index:idx_race_user,unique" json:"user_id"`
	UserName  string           `gorm:"size:100;not null" json:"user_name"`
	Seq       int              `gorm:"not null" json:"-"`
	Positions []PositionSample `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE" json:"positions,omitempty"`
	Status    string           `gorm:"size:20;not null;default:'active'" json:"status"`
	FinalTime *float64         `json:"final_time,omitempty"`
	Rank      *int             `json:"rank,omitempty"`
	JoinedAt  time.Time        `json:"joined_at"`
}

const (
	ParticipantStatusActive   = "active"
	ParticipantStatusFinished = "finished"
	ParticipantStatusDNF      = "dnf"
)

// PositionSample rows are append-only; nothing edits or removes them.
type PositionSample struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	ParticipantID string    `gorm:"size:36;not null;index" json:"-"`
	Latitude      float64   `gorm:"not null" json:"latitude"`
	Longitude     float64   `gorm:"not null" json:"longitude"`
	Speed         float64   `gorm:"not null" json:"speed"`
	Timestamp     time.Time `gorm:"not null" json:"timestamp"`
}
