package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"race-circuit-backend/internal/database"
	"race-circuit-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway in-memory database with the full schema.
// The DSN is namespaced by test so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := models.User{
		ID:           uuid.NewString(),
		Email:        name + "@example.com",
		PasswordHash: "x",
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedCircuit(t *testing.T, db *gorm.DB, creator *models.User) *models.Circuit {
	t.Helper()
	circuit := models.Circuit{
		ID:          uuid.NewString(),
		Name:        "test circuit",
		CreatorID:   creator.ID,
		CreatorName: creator.Name,
		Distance:    5.2,
		IsPublic:    true,
		CreatedAt:   time.Now().UTC(),
		Coordinates: []models.CircuitPoint{
			{Seq: 0, Latitude: 48.85, Longitude: 2.35},
			{Seq: 1, Latitude: 48.86, Longitude: 2.36},
		},
	}
	require.NoError(t, db.Create(&circuit).Error)
	return &circuit
}
