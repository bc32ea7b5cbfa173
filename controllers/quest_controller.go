package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/arsh077/Khurak-new-application/database"
	"github.com/arsh077/Khurak-new-application/logger"
	"github.com/arsh077/Khurak-new-application/models"
	"github.com/arsh077/Khurak-new-application/progression"
	"github.com/arsh077/Khurak-new-application/services"
	"github.com/arsh077/Khurak-new-application/tracker"
)

// questCatalogEntry is one program plus its unlock state for this user.
type questCatalogEntry struct {
	progression.Program
	Unlocked   bool `json:"unlocked"`
	Unlockable bool `json:"unlockable"`
}

// GetQuestCatalog lists every program with per-user unlock flags.
func GetQuestCatalog(c *gin.Context) {
	profile, ok := loadProfile(c)
	if !ok {
		return
	}

	entries := make([]questCatalogEntry, 0, len(progression.Programs))
	for id := 1; id <= len(progression.Programs); id++ {
		p, err := progression.ProgramByID(id)
		if err != nil {
			continue
		}
		entries = append(entries, questCatalogEntry{
			Program:    p,
			Unlocked:   progression.IsUnlocked(id, profile.CompletedWeeks),
			Unlockable: progression.Unlockable(id),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"programs":        entries,
		"completed_weeks": profile.CompletedWeeks,
	})
}

// GetQuestProgram returns one program with its unlock state and, when
// unlocked, the full week of task lists in weekday order.
func GetQuestProgram(c *gin.Context) {
	profile, ok := loadProfile(c)
	if !ok {
		return
	}

	programID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid program id"})
		return
	}
	p, err := progression.ProgramByID(programID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown program"})
		return
	}

	unlocked := progression.IsUnlocked(programID, profile.CompletedWeeks)
	resp := gin.H{
		"program":    p,
		"unlocked":   unlocked,
		"unlockable": progression.Unlockable(programID),
	}
	if unlocked {
		days := make([]gin.H, 0, len(progression.DayOrder))
		for _, day := range progression.DayOrder {
			if tasks, found := p.Days[day]; found {
				days = append(days, gin.H{"day": day, "tasks": tasks})
			}
		}
		resp["days"] = days
	}
	c.JSON(http.StatusOK, resp)
}

// GetQuestDay returns the task list for one weekday of an unlocked
// program.
func GetQuestDay(c *gin.Context) {
	profile, ok := loadProfile(c)
	if !ok {
		return
	}

	programID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid program id"})
		return
	}
	day := c.Param("day")

	tasks, err := progression.DayTasks(programID, day, profile.CompletedWeeks)
	if err != nil {
		switch {
		case errors.Is(err, progression.ErrUnknownProgram):
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown program"})
		case errors.Is(err, progression.ErrLevelLocked):
			c.JSON(http.StatusForbidden, gin.H{"error": "program is locked"})
		case errors.Is(err, progression.ErrUnknownDay):
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown training day"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load program day"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"day": day, "tasks": tasks})
}

type completeDayRequest struct {
	ProgramID int    `json:"program_id" binding:"required"`
	Day       string `json:"day" binding:"required"`
}

// CompleteQuestDay credits one finished training day: XP, rank/level
// re-derivation and, for the flagship program, week advancement. At most
// one credit per program per calendar date.
func CompleteQuestDay(c *gin.Context) {
	profile, ok := loadProfile(c)
	if !ok {
		return
	}

	var req completeDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	date := tracker.DateKey(now)

	var existing models.QuestCompletion
	dupErr := database.DB.
		Where("user_id = ? AND program_id = ? AND date = ?", profile.UserID, req.ProgramID, date).
		First(&existing).Error
	alreadyCredited := dupErr == nil
	if dupErr != nil && !errors.Is(dupErr, gorm.ErrRecordNotFound) {
		logger.Error("failed to check completion", zap.Uint("user", profile.UserID), zap.Error(dupErr))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete day"})
		return
	}

	weekly, err := services.WeeklyXP(profile.UserID, now)
	if err != nil {
		logger.Error("failed to sum weekly xp", zap.Uint("user", profile.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete day"})
		return
	}

	state := progression.State{
		TotalXP:        profile.TotalXP,
		WeeklyXP:       weekly,
		CompletedWeeks: profile.CompletedWeeks,
	}
	next, info, err := progression.Award(state, req.ProgramID, alreadyCredited)
	if err != nil {
		switch {
		case errors.Is(err, progression.ErrAlreadyCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": "already completed today"})
		case errors.Is(err, progression.ErrProgramLocked):
			c.JSON(http.StatusForbidden, gin.H{"error": "program is locked"})
		case errors.Is(err, progression.ErrUnknownProgram):
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown program"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete day"})
		}
		return
	}

	log, err := services.DayLog(profile.UserID, now)
	if err != nil {
		logger.Error("failed to load daily log", zap.Uint("user", profile.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete day"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		completion := models.QuestCompletion{
			UserID:    profile.UserID,
			ProgramID: req.ProgramID,
			Date:      date,
			Day:       req.Day,
			XP:        info.XP,
		}
		if err := tx.Create(&completion).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Profile{}).Where("id = ?", profile.ID).Updates(map[string]any{
			"total_xp":        next.TotalXP,
			"completed_weeks": next.CompletedWeeks,
			"rank":            info.Rank,
			"level":           info.Level,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.DailyLog{}).Where("id = ?", log.ID).Updates(map[string]any{
			"quests_completed": log.QuestsCompleted + 1,
			"weekly_xp":        next.WeeklyXP,
		}).Error
	})
	if err != nil {
		logger.Error("failed to persist completion", zap.Uint("user", profile.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete day"})
		return
	}

	c.JSON(http.StatusOK, info)
}
