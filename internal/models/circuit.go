package models

import "time"

type Circuit struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	CreatorID   string         `gorm:"size:36;not null;index" json:"creator_id"`
	CreatorName string         `gorm:"size:100;not null" json:"creator_name"`
	Coordinates []CircuitPoint `gorm:"foreignKey:CircuitID;constraint:OnDelete:CASCADE" json:"coordinates,omitempty"`
	Distance    float64        `gorm:"not null" json:"distance"`
	IsPublic    bool           `gorm:"not null;default:true" json:"is_public"`
	CreatedAt   time.Time      `json:"created_at"`
}

// CircuitPoint is one vertex of the circuit geometry. Seq preserves the
// drawing order of the path.
type CircuitPoint struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	CircuitID string  `gorm:"size:36;not null;index" json:"-"`
	Seq       int     `gorm:"not null" json:"-"`
	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`
}
