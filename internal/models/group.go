package models

import "time"

type Group struct {
	ID        string        `gorm:"primaryKey;size:36" json:"id"`
	Name      string        `gorm:"size:100;not null" json:"name"`
	CreatorID string        `gorm:"size:36;not null;index" json:"creator_id"`
	Members   []GroupMember `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

type GroupMember struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	GroupID string `gorm:"size:36;not null;index" json:"-"`
	UserID  string `gorm:"size:36;not null" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
}
