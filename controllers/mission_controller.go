package controllers

import (
	"errors"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/arsh077/Khurak-new-application/database"
	"github.com/arsh077/Khurak-new-application/logger"
	"github.com/arsh077/Khurak-new-application/middleware"
	"github.com/arsh077/Khurak-new-application/missions"
	"github.com/arsh077/Khurak-new-application/models"
	"github.com/arsh077/Khurak-new-application/services"
	"github.com/arsh077/Khurak-new-application/tracker"
)

var (
	missionRng   = rand.New(rand.NewSource(time.Now().UnixNano()))
	missionRngMu sync.Mutex
)

func drawInitialWindow() []string {
	missionRngMu.Lock()
	defer missionRngMu.Unlock()
	return missions.InitialWindow(missionRng)
}

func drawReplacement(active []string, completedID string) ([]string, error) {
	missionRngMu.Lock()
	defer missionRngMu.Unlock()
	return missions.Replace(active, completedID, missionRng)
}

// activeWindow loads the persisted three-slot window, seeding it on the
// user's first visit.
func activeWindow(userID uint) ([]string, error) {
	var slots []models.MissionSlot
	if err := database.DB.Where("user_id = ?", userID).
		Order("slot asc").Find(&slots).Error; err != nil {
		return nil, err
	}
	if len(slots) == missions.WindowSize {
		ids := make([]string, missions.WindowSize)
		for _, s := range slots {
			ids[s.Slot] = s.MissionID
		}
		return ids, nil
	}

	ids := drawInitialWindow()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.MissionSlot{}).Error; err != nil {
			return err
		}
		for i, id := range ids {
			if err := tx.Create(&models.MissionSlot{UserID: userID, Slot: i, MissionID: id}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetMissions returns the three active side ops.
func GetMissions(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	ids, err := activeWindow(userID)
	if err != nil {
		logger.Error("failed to load mission window", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load missions"})
		return
	}

	ops := make([]missions.SideOp, 0, len(ids))
	for _, id := range ids {
		if op, found := missions.ByID(id); found {
			ops = append(ops, op)
		}
	}
	c.JSON(http.StatusOK, gin.H{"missions": ops})
}

type completeMissionRequest struct {
	MissionID string `json:"mission_id" binding:"required"`
	PhotoRef  string `json:"photo_ref"`
}

// CompleteMission applies the op's side effect, credits any microburn,
// bumps the daily completion counter and rotates the vacated slot.
func CompleteMission(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req completeMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	op, found := missions.ByID(req.MissionID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown mission"})
		return
	}
	if op.Type == missions.TypePhoto && req.PhotoRef == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "this mission needs a photo"})
		return
	}

	active, err := activeWindow(userID)
	if err != nil {
		logger.Error("failed to load mission window", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load missions"})
		return
	}

	next, err := drawReplacement(active, req.MissionID)
	if err != nil {
		if errors.Is(err, missions.ErrNotActive) {
			c.JSON(http.StatusConflict, gin.H{"error": "mission is not in your active window"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.DayLog(userID, time.Now())
	if err != nil {
		logger.Error("failed to load daily log", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load daily log"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range next {
			if err := tx.Model(&models.MissionSlot{}).
				Where("user_id = ? AND slot = ?", userID, i).
				Update("mission_id", id).Error; err != nil {
				return err
			}
		}
		updates := map[string]any{"quests_completed": log.QuestsCompleted + 1}
		if op.Type == missions.TypeWater {
			updates["water_oz"] = tracker.AdjustWater(log.WaterOz, tracker.GlassOz)
		}
		if err := tx.Model(&models.DailyLog{}).Where("id = ?", log.ID).
			Updates(updates).Error; err != nil {
			return err
		}
		if op.Burn > 0 {
			return tx.Create(&models.EnergyEvent{
				DailyLogID: log.ID,
				Source:     models.SourceMicroburn,
				Delta:      op.Burn,
				Ref:        op.ID,
			}).Error
		}
		return nil
	})
	if err != nil {
		logger.Error("failed to complete mission", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete mission"})
		return
	}

	ops := make([]missions.SideOp, 0, len(next))
	for _, id := range next {
		if o, foundOp := missions.ByID(id); foundOp {
			ops = append(ops, o)
		}
	}
	c.JSON(http.StatusOK, gin.H{"missions": ops, "burn_credited": op.Burn})
}
