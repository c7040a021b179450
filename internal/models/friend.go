package models

import "time"

type Friend struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;not null;index" json:"user_id"`
	FriendID    string    `gorm:"size:36;not null;index" json:"friend_id"`
	FriendName  string    `gorm:"size:100;not null" json:"friend_name"`
	FriendEmail string    `gorm:"size:255;not null" json:"friend_email"`
	Status      string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	FriendStatusPending  = "pending"
	FriendStatusAccepted = "accepted"
)
