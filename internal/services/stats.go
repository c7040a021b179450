package services

import (
	"race-circuit-backend/internal/models"

	"gorm.io/gorm"
)

// StatsService owns the per-user statistics counters. Counters only ever
// go up; callers decide when an event counts.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// WithTx returns a view of the service bound to tx, so counter updates
// can join a caller's transaction.
func (s *StatsService) WithTx(tx *gorm.DB) *StatsService {
	return &StatsService{db: tx}
}

func (s *StatsService) IncrementTotalRaces(userID string) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("total_races", gorm.Expr("total_races + 1")).Error
}

func (s *StatsService) IncrementWins(userID string) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("wins", gorm.Expr("wins + 1")).Error
}

func (s *StatsService) AddDistance(userID string, distance float64) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("total_distance", gorm.Expr("total_distance + ?", distance)).Error
}
