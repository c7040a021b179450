package models

import "time"

type User struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Email          string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"size:255;not null" json:"-"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	ProfilePicture *string   `gorm:"size:512" json:"profile_picture,omitempty"`
	TotalRaces     int       `gorm:"not null;default:0" json:"total_races"`
	Wins           int       `gorm:"not null;default:0" json:"wins"`
	TotalDistance  float64   `gorm:"not null;default:0" json:"total_distance"`
	CreatedAt      time.Time `json:"created_at"`
}
