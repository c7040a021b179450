package services

import (
	"time"

	"race-circuit-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CircuitService struct {
	db *gorm.DB
}

func NewCircuitService(db *gorm.DB) *CircuitService {
	return &CircuitService{db: db}
}

type CircuitCreate struct {
	Name        string              `json:"name" binding:"required,min=1,max=255"`
	Coordinates []CoordinateRequest `json:"coordinates" binding:"required,min=2,dive"`
	Distance    float64             `json:"distance" binding:"required,gt=0"`
	IsPublic    *bool               `json:"is_public"`
}

type CoordinateRequest struct {
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
}

func (s *CircuitService) Create(creator *models.User, req CircuitCreate) (*models.Circuit, error) {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	circuit := models.Circuit{
		ID:          uuid.NewString(),
		Name:        req.Name,
		CreatorID:   creator.ID,
		CreatorName: creator.Name,
		Distance:    req.Distance,
		IsPublic:    isPublic,
		CreatedAt:   time.Now().UTC(),
	}
	for i, c := range req.Coordinates {
		circuit.Coordinates = append(circuit.Coordinates, models.CircuitPoint{
			Seq:       i,
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
		})
	}

	if err := s.db.Create(&circuit).Error; err != nil {
		return nil, err
	}
	return &circuit, nil
}

// List returns public circuits plus the caller's own. isPublic narrows
// to public only (true) or the caller's own only (false).
func (s *CircuitService) List(userID string, isPublic *bool) ([]models.Circuit, error) {
	q := s.db.Preload("Coordinates", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq ASC")
	})

	switch {
	case isPublic == nil:
		q = q.Where("is_public = ? OR creator_id = ?", true, userID)
	case *isPublic:
		q = q.Where("is_public = ?", true)
	default:
		q = q.Where("creator_id = ?", userID)
	}

	var circuits []models.Circuit
	if err := q.Order("created_at DESC").Find(&circuits).Error; err != nil {
		return nil, err
	}
	return circuits, nil
}

func (s *CircuitService) Get(circuitID string) (*models.Circuit, error) {
	var circuit models.Circuit
	err := s.db.Preload("Coordinates", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq ASC")
	}).First(&circuit, "id = ?", circuitID).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &circuit, nil
}

func (s *CircuitService) Delete(circuitID, userID string) error {
	var circuit models.Circuit
	if err := s.db.First(&circuit, "id = ?", circuitID).Error; err != nil {
		return ErrNotFound
	}
	if circuit.CreatorID != userID {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("circuit_id = ?", circuitID).Delete(&models.CircuitPoint{}).Error; err != nil {
			return err
		}
		return tx.Delete(&circuit).Error
	})
}
