package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/arsh077/Khurak-new-application/database"
	"github.com/arsh077/Khurak-new-application/logger"
	"github.com/arsh077/Khurak-new-application/middleware"
	"github.com/arsh077/Khurak-new-application/models"
	"github.com/arsh077/Khurak-new-application/services"
	"github.com/arsh077/Khurak-new-application/workout"
)

// GetExerciseCatalog lists the exercises per category with their burn
// multipliers.
func GetExerciseCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"catalog": workout.Catalog})
}

type logExerciseRequest struct {
	Category models.WorkoutCategory `json:"category" binding:"required"`
	Name     string                 `json:"name" binding:"required"`
	Sets     []models.WorkoutSet    `json:"sets" binding:"required,min=1"`
}

// LogExercise records a workout: the burn estimate is derived once here
// and mirrored into the energy-event ledger.
func LogExercise(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req logExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ex, err := workout.Find(req.Category, req.Name)
	if err != nil {
		if errors.Is(err, workout.ErrUnknownExercise) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown exercise for category"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log exercise"})
		return
	}

	log, err := services.DayLog(userID, time.Now())
	if err != nil {
		logger.Error("failed to load daily log", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load daily log"})
		return
	}

	burned := workout.Burn(req.Category, ex.CalPerUnit, req.Sets)
	setsJSON, err := json.Marshal(req.Sets)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sets"})
		return
	}

	entry := models.ExerciseEntry{
		ID:             uuid.NewString(),
		DailyLogID:     log.ID,
		Category:       req.Category,
		Name:           req.Name,
		SetsJSON:       string(setsJSON),
		CaloriesBurned: burned,
	}
	event := models.EnergyEvent{
		DailyLogID: log.ID,
		Source:     models.SourceExercise,
		Delta:      burned,
		Ref:        entry.ID,
	}

	if err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return tx.Create(&event).Error
	}); err != nil {
		logger.Error("failed to save exercise", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log exercise"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry, "calories_burned": burned})
}

// GetExercises lists today's logged workouts.
func GetExercises(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	log, err := services.DayLog(userID, time.Now())
	if err != nil {
		logger.Error("failed to load daily log", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load daily log"})
		return
	}

	var entries []models.ExerciseEntry
	if err := database.DB.Where("daily_log_id = ?", log.ID).
		Order("created_at asc").Find(&entries).Error; err != nil {
		logger.Error("failed to list exercises", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list exercises"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exercises": entries})
}
