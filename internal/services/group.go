package services

import (
	"time"

	"race-circuit-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupService struct {
	db *gorm.DB
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{db: db}
}

// Create builds a group with the creator always a member. Unknown member
// ids are skipped rather than failing the whole group.
func (s *GroupService) Create(creator *models.User, name string, memberIDs []string) (*models.Group, error) {
	group := models.Group{
		ID:        uuid.NewString(),
		Name:      name,
		CreatorID: creator.ID,
		CreatedAt: time.Now().UTC(),
		Members: []models.GroupMember{
			{UserID: creator.ID, Name: creator.Name},
		},
	}

	for _, memberID := range memberIDs {
		if memberID == creator.ID {
			continue
		}
		var user models.User
		if err := s.db.First(&user, "id = ?", memberID).Error; err != nil {
			continue
		}
		group.Members = append(group.Members, models.GroupMember{
			UserID: user.ID,
			Name:   user.Name,
		})
	}

	if err := s.db.Create(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *GroupService) List(userID string) ([]models.Group, error) {
	var groupIDs []string
	err := s.db.Model(&models.GroupMember{}).
		Where("user_id = ?", userID).
		Pluck("group_id", &groupIDs).Error
	if err != nil {
		return nil, err
	}
	if len(groupIDs) == 0 {
		return []models.Group{}, nil
	}

	var groups []models.Group
	err = s.db.Preload("Members").
		Where("id IN ?", groupIDs).
		Order("created_at DESC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}
