package services

import (
	"errors"
	"time"

	"race-circuit-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FriendService struct {
	db *gorm.DB
}

func NewFriendService(db *gorm.DB) *FriendService {
	return &FriendService{db: db}
}

func (s *FriendService) SendRequest(requester *models.User, friendEmail string) error {
	var friend models.User
	if err := s.db.Where("email = ?", friendEmail).First(&friend).Error; err != nil {
		return ErrNotFound
	}
	if friend.ID == requester.ID {
		return errors.New("cannot add yourself as friend")
	}

	var count int64
	err := s.db.Model(&models.Friend{}).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			requester.ID, friend.ID, friend.ID, requester.ID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("friend request already exists")
	}

	request := models.Friend{
		ID:          uuid.NewString(),
		UserID:      requester.ID,
		FriendID:    friend.ID,
		FriendName:  friend.Name,
		FriendEmail: friend.Email,
		Status:      models.FriendStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	return s.db.Create(&request).Error
}

// List returns the caller's friendships from either direction, each
// normalized so the friend fields describe the other user.
func (s *FriendService) List(userID, status string) ([]models.Friend, error) {
	q := s.db.Where("user_id = ? OR friend_id = ?", userID, userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var rows []models.Friend
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	for i := range rows {
		if rows[i].UserID == userID {
			continue
		}
		// Caller is the recipient; flip the record to point at the sender.
		var other models.User
		name, email := "Unknown", "Unknown"
		if err := s.db.First(&other, "id = ?", rows[i].UserID).Error; err == nil {
			name, email = other.Name, other.Email
		}
		rows[i].FriendID = rows[i].UserID
		rows[i].FriendName = name
		rows[i].FriendEmail = email
		rows[i].UserID = userID
	}
	return rows, nil
}

func (s *FriendService) Accept(requestID, userID string) error {
	var request models.Friend
	err := s.db.Where("id = ? AND friend_id = ?", requestID, userID).
		First(&request).Error
	if err != nil {
		return ErrNotFound
	}

	return s.db.Model(&request).Update("status", models.FriendStatusAccepted).Error
}
