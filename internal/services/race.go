package services

import (
	"sync"
	"time"

	"race-circuit-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RaceService owns the race lifecycle. All mutating operations for one
// race serialize on that race's lock; independent races never contend.
type RaceService struct {
	db    *gorm.DB
	stats *StatsService

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRaceService(db *gorm.DB, stats *StatsService) *RaceService {
	return &RaceService{
		db:    db,
		stats: stats,
		locks: make(map[string]*sync.Mutex),
	}
}

// raceLock returns the mutex for raceID, creating it on first use. Locks
// for finished races are never reclaimed; each is a few words.
func (s *RaceService) raceLock(raceID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[raceID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[raceID] = l
	}
	return l
}

func (s *RaceService) Create(creator *models.User, circuitID string) (*models.Race, error) {
	var circuit models.Circuit
	if err := s.db.First(&circuit, "id = ?", circuitID).Error; err != nil {
		return nil, ErrNotFound
	}

	race := models.Race{
		ID:          uuid.NewString(),
		CircuitID:   circuit.ID,
		CircuitName: circuit.Name,
		CreatorID:   creator.ID,
		CreatorName: creator.Name,
		Status:      models.RaceStatusWaiting,
		CreatedAt:   time.Now().UTC(),
	}
	participant := models.RaceParticipant{
		ID:       uuid.NewString(),
		RaceID:   race.ID,
		UserID:   creator.ID,
		UserName: creator.Name,
		Seq:      0,
		Status:   models.ParticipantStatusActive,
		JoinedAt: race.CreatedAt,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&race).Error; err != nil {
			return err
		}
		return tx.Create(&participant).Error
	})
	if err != nil {
		return nil, err
	}

	race.Participants = []string{creator.ID}
	return &race, nil
}

func (s *RaceService) List(status string) ([]models.Race, error) {
	q := s.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var races []models.Race
	if err := q.Find(&races).Error; err != nil {
		return nil, err
	}
	for i := range races {
		if err := s.loadParticipants(&races[i]); err != nil {
			return nil, err
		}
	}
	return races, nil
}

func (s *RaceService) Get(raceID string) (*models.Race, error) {
	var race models.Race
	if err := s.db.First(&race, "id = ?", raceID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := s.loadParticipants(&race); err != nil {
		return nil, err
	}
	return &race, nil
}

// Join adds user to a waiting race and creates its participant record.
// All-or-nothing: any failure leaves the participant set untouched.
func (s *RaceService) Join(raceID string, user *models.User) error {
	lock := s.raceLock(raceID)
	lock.Lock()
	defer lock.Unlock()

	var race models.Race
	if err := s.db.First(&race, "id = ?", raceID).Error; err != nil {
		return ErrNotFound
	}
	if race.Status != models.RaceStatusWaiting {
		return ErrInvalidState
	}

	var count int64
	if err := s.db.Model(&models.RaceParticipant{}).
		Where("race_id = ? AND user_id = ?", raceID, user.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyJoined
	}

	var seq int64
	if err := s.db.Model(&models.RaceParticipant{}).
		Where("race_id = ?", raceID).Count(&seq).Error; err != nil {
		return err
	}

	participant := models.RaceParticipant{
		ID:       uuid.NewString(),
		RaceID:   raceID,
		UserID:   user.ID,
		UserName: user.Name,
		Seq:      int(seq),
		Status:   models.ParticipantStatusActive,
		JoinedAt: time.Now().UTC(),
	}
	return s.db.Create(&participant).Error
}

// Start flips a waiting race to active. Only the creator may start.
func (s *RaceService) Start(raceID, requesterID string) (*models.Race, error) {
	lock := s.raceLock(raceID)
	lock.Lock()
	defer lock.Unlock()

	var race models.Race
	if err := s.db.First(&race, "id = ?", raceID).Error; err != nil {
		return nil, ErrNotFound
	}
	if race.CreatorID != requesterID {
		return nil, ErrForbidden
	}
	if race.Status != models.RaceStatusWaiting {
		return nil, ErrInvalidState
	}

	now := time.Now().UTC()
	err := s.db.Model(&race).Updates(map[string]interface{}{
		"status":     models.RaceStatusActive,
		"start_time": now,
	}).Error
	if err != nil {
		return nil, err
	}

	race.Status = models.RaceStatusActive
	race.StartTime = &now
	if err := s.loadParticipants(&race); err != nil {
		return nil, err
	}
	return &race, nil
}

// RecordPosition appends a sample to the participant's position
// sequence. Samples are taken as sent; plausibility checks are not this
// layer's job.
func (s *RaceService) RecordPosition(raceID, userID string, sample models.PositionSample) (*models.PositionSample, error) {
	var participant models.RaceParticipant
	if err := s.db.Where("race_id = ? AND user_id = ?", raceID, userID).
		First(&participant).Error; err != nil {
		return nil, ErrNotFound
	}

	sample.ID = 0
	sample.ParticipantID = participant.ID
	if sample.Timestamp.IsZero() {
		sample.Timestamp = time.Now().UTC()
	}
	if err := s.db.Create(&sample).Error; err != nil {
		return nil, err
	}
	return &sample, nil
}

// FinishResult reports what a finish changed beyond the participant row.
type FinishResult struct {
	Participant   models.RaceParticipant
	RaceCompleted bool
	EndTime       time.Time
}

// Finish marks the participant finished with the supplied final time. A
// repeat finish overwrites final_time without error, but does not count
// toward the user's statistics a second time. When the last active
// participant finishes, the race completes and ranks are persisted.
// All mutations commit together: a store failure anywhere in the
// sequence rolls the finish back entirely, so the caller can retry.
func (s *RaceService) Finish(raceID, userID string, finalTime float64) (*FinishResult, error) {
	lock := s.raceLock(raceID)
	lock.Lock()
	defer lock.Unlock()

	var race models.Race
	if err := s.db.First(&race, "id = ?", raceID).Error; err != nil {
		return nil, ErrNotFound
	}
	if race.Status != models.RaceStatusActive {
		return nil, ErrInvalidState
	}

	var participant models.RaceParticipant
	if err := s.db.Where("race_id = ? AND user_id = ?", raceID, userID).
		First(&participant).Error; err != nil {
		return nil, ErrNotFound
	}
	firstFinish := participant.Status != models.ParticipantStatusFinished

	result := &FinishResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&participant).Updates(map[string]interface{}{
			"status":     models.ParticipantStatusFinished,
			"final_time": finalTime,
		}).Error; err != nil {
			return err
		}

		if firstFinish {
			stats := s.stats.WithTx(tx)
			if err := stats.IncrementTotalRaces(userID); err != nil {
				return err
			}
			var circuit models.Circuit
			if err := tx.First(&circuit, "id = ?", race.CircuitID).Error; err == nil {
				if err := stats.AddDistance(userID, circuit.Distance); err != nil {
					return err
				}
			}
		}

		var remaining int64
		if err := tx.Model(&models.RaceParticipant{}).
			Where("race_id = ? AND status = ?", raceID, models.ParticipantStatusActive).
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			end, err := s.completeRace(tx, &race)
			if err != nil {
				return err
			}
			result.RaceCompleted = true
			result.EndTime = end
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	participant.Status = models.ParticipantStatusFinished
	participant.FinalTime = &finalTime
	result.Participant = participant
	return result, nil
}

// completeRace transitions active → completed and freezes the final
// standings as persisted ranks. Called with the race lock held, inside
// the finish transaction.
func (s *RaceService) completeRace(tx *gorm.DB, race *models.Race) (time.Time, error) {
	now := time.Now().UTC()
	err := tx.Model(race).Updates(map[string]interface{}{
		"status":   models.RaceStatusCompleted,
		"end_time": now,
	}).Error
	if err != nil {
		return time.Time{}, err
	}

	var participants []models.RaceParticipant
	if err := tx.Where("race_id = ?", race.ID).Order("seq ASC").Find(&participants).Error; err != nil {
		return time.Time{}, err
	}
	rankParticipants(participants)

	for i := range participants {
		rank := i + 1
		if err := tx.Model(&participants[i]).UpdateColumn("rank", rank).Error; err != nil {
			return time.Time{}, err
		}
	}
	if len(participants) > 0 && participants[0].FinalTime != nil {
		if err := s.stats.WithTx(tx).IncrementWins(participants[0].UserID); err != nil {
			return time.Time{}, err
		}
	}

	return now, nil
}

func (s *RaceService) loadParticipants(race *models.Race) error {
	var ids []string
	err := s.db.Model(&models.RaceParticipant{}).
		Where("race_id = ?", race.ID).Order("seq ASC").
		Pluck("user_id", &ids).Error
	if err != nil {
		return err
	}
	if ids == nil {
		ids = []string{}
	}
	race.Participants = ids
	return nil
}
