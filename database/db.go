package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/arsh077/Khurak-new-application/config"
	"github.com/arsh077/Khurak-new-application/logger"
	"github.com/arsh077/Khurak-new-application/models"
)

var DB *gorm.DB

// Init opens the PostgreSQL connection and runs migrations.
func Init(cfg *config.Config) error {
	pc := cfg.PostgresConfig
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		pc.Host, pc.User, pc.Password, pc.DBName, pc.Port, pc.SSLMode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("database connection established")

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.DailyLog{},
		&models.FoodEntry{},
		&models.ExerciseEntry{},
		&models.EnergyEvent{},
		&models.MissionSlot{},
		&models.QuestCompletion{},
		&models.PaymentRecord{},
	); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	logger.Info("migrations completed")
	return nil
}

// Close releases the underlying sql.DB.
func Close() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Error("failed to retrieve sql.DB")
		return
	}
	_ = sqlDB.Close()
}
