package database

import (
	"fmt"

	"race-circuit-backend/internal/config"
	"race-circuit-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config, log *zap.Logger) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	log.Info("database connected", zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))
	return db
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Circuit{},
		&models.CircuitPoint{},
		&models.Race{},
		&models.RaceParticipant{},
		&models.PositionSample{},
		&models.Friend{},
		&models.Group{},
		&models.GroupMember{},
	)
}
