package services

import (
	"sort"

	"race-circuit-backend/internal/models"

	"gorm.io/gorm"
)

type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

// Rank returns the race standings: finished participants ascending by
// final time, then everyone still out on the circuit in join order.
// Read-only; persisted ranks are assigned on race completion, not here.
func (s *LeaderboardService) Rank(raceID string) ([]models.RaceParticipant, error) {
	var race models.Race
	if err := s.db.First(&race, "id = ?", raceID).Error; err != nil {
		return nil, ErrNotFound
	}

	var participants []models.RaceParticipant
	if err := s.db.Where("race_id = ?", raceID).Order("seq ASC").Find(&participants).Error; err != nil {
		return nil, err
	}

	rankParticipants(participants)
	return participants, nil
}

// rankParticipants orders in place. The sort must be stable: equal final
// times keep the underlying join order.
func rankParticipants(participants []models.RaceParticipant) {
	sort.SliceStable(participants, func(i, j int) bool {
		a, b := participants[i].FinalTime, participants[j].FinalTime
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}
