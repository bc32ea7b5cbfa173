package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arsh077/Khurak-new-application/database"
	"github.com/arsh077/Khurak-new-application/jobs"
	"github.com/arsh077/Khurak-new-application/llm"
	"github.com/arsh077/Khurak-new-application/logger"
	"github.com/arsh077/Khurak-new-application/middleware"
	"github.com/arsh077/Khurak-new-application/models"
	"github.com/arsh077/Khurak-new-application/services"
	"github.com/arsh077/Khurak-new-application/tracker"
)

// dayResponse is the daily dashboard payload: the raw log plus the
// rollups the client would otherwise recompute.
type dayResponse struct {
	Log               *models.DailyLog `json:"log"`
	CaloriesEaten     float64          `json:"calories_eaten"`
	CaloriesBurned    int              `json:"calories_burned"`
	CaloriesRemaining float64          `json:"calories_remaining"`
	EatenPercent      float64          `json:"eaten_percent"`
	Macros            tracker.Macros   `json:"macros"`
	WeeklyXP          int              `json:"weekly_xp"`
}

func dayPayload(c *gin.Context, userID uint) (*dayResponse, bool) {
	now := time.Now()
	log, err := services.DayLog(userID, now)
	if err != nil {
		logger.Error("failed to load daily log", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load daily log"})
		return nil, false
	}

	var profile models.Profile
	if err := database.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		logger.Error("failed to load profile", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return nil, false
	}

	weekly, err := services.WeeklyXP(userID, now)
	if err != nil {
		logger.Error("failed to sum weekly xp", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load daily log"})
		return nil, false
	}

	return &dayResponse{
		Log:               log,
		CaloriesEaten:     tracker.TotalCaloriesEaten(log.Foods),
		CaloriesBurned:    tracker.BurnedCalories(log.Events),
		CaloriesRemaining: tracker.RemainingCalories(profile.DailyCalorieTarget, log.Foods, log.Events),
		EatenPercent:      tracker.EatenPercentage(log.Foods, profile.DailyCalorieTarget),
		Macros:            tracker.MacroTotals(log.Foods),
		WeeklyXP:          weekly,
	}, true
}

// GetToday returns the current day's log with its rollups, creating the
// row on the first request after midnight UTC.
func GetToday(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	resp, ok := dayPayload(c, userID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resp)
}

type manualFoodRequest struct {
	Slot     models.MealSlot `json:"slot" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Calories float64         `json:"calories" binding:"required"`
	Protein  float64         `json:"protein"`
	Carbs    float64         `json:"carbs"`
	Fats     float64         `json:"fats"`
	Fiber    *float64        `json:"fiber"`
	Quantity string          `json:"quantity"`
}

// LogFoodManual appends a user-entered food item to a meal slot.
func LogFoodManual(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req manualFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidSlot(req.Slot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal slot"})
		return
	}

	log, err := services.DayLog(userID, time.Now())
	if err != nil {
		logger.Error("failed to load daily log", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load daily log"})
		return
	}

	entry := models.FoodEntry{
		DailyLogID: log.ID,
		Slot:       req.Slot,
		Name:       req.Name,
		Calories:   req.Calories,
		Protein:    req.Protein,
		Carbs:      req.Carbs,
		Fats:       req.Fats,
		Fiber:      req.Fiber,
		Quantity:   req.Quantity,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		logger.Error("failed to save food entry", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save food entry"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

type textFoodRequest struct {
	Slot  models.MealSlot `json:"slot" binding:"required"`
	Query string          `json:"query" binding:"required"`
}

// LogFoodText analyses a free-text meal description and appends every
// recognised item.
func LogFoodText(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req textFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidSlot(req.Slot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal slot"})
		return
	}

	foods, err := llm.NewClient().AnalyzeFoodText(req.Query)
	if err != nil {
		logger.Error("food text analysis failed", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not analyse the description"})
		return
	}

	appendFoods(c, userID, req.Slot, foods)
}

type imageFoodRequest struct {
	Slot        models.MealSlot `json:"slot" binding:"required"`
	ImageBase64 string          `json:"image_base64" binding:"required"`
}

// LogFoodImage analyses a plate photo and appends every recognised item.
func LogFoodImage(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req imageFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidSlot(req.Slot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal slot"})
		return
	}

	foods, err := llm.NewClient().AnalyzeFoodImage(req.ImageBase64)
	if err != nil {
		logger.Error("food image analysis failed", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not analyse the photo"})
		return
	}

	appendFoods(c, userID, req.Slot, foods)
}

func appendFoods(c *gin.Context, userID uint, slot models.MealSlot, foods []llm.Food) {
	log, err := services.DayLog(userID, time.Now())
	if err != nil {
		logger.Error("failed to load daily log", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load daily log"})
		return
	}

	entries := make([]models.FoodEntry, 0, len(foods))
	for _, f := range foods {
		entries = append(entries, models.FoodEntry{
			DailyLogID:     log.ID,
			Slot:           slot,
			Name:           f.Name,
			Calories:       f.Calories,
			Protein:        f.Protein,
			Carbs:          f.Carbs,
			Fats:           f.Fats,
			Fiber:          f.Fiber,
			Micronutrients: f.Micronutrients,
			Quantity:       f.Quantity,
			Grams:          f.Grams,
		})
	}
	if err := database.DB.Create(&entries).Error; err != nil {
		logger.Error("failed to save food entries", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save food entries"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entries": entries})
}

type gramsFoodRequest struct {
	Slot  models.MealSlot `json:"slot" binding:"required"`
	Name  string          `json:"name" binding:"required"`
	Grams float64         `json:"grams" binding:"required,gt=0"`
}

// LogFoodGrams records the item immediately with macros pending and
// hands estimation to the background worker. The client learns the
// result over SSE.
func LogFoodGrams(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req gramsFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidSlot(req.Slot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal slot"})
		return
	}

	log, err := services.DayLog(userID, time.Now())
	if err != nil {
		logger.Error("failed to load daily log", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load daily log"})
		return
	}

	entry := models.FoodEntry{
		DailyLogID:    log.ID,
		Slot:          req.Slot,
		Name:          req.Name,
		Grams:         &req.Grams,
		Quantity:      "pending",
		MacrosPending: true,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		logger.Error("failed to save food entry", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save food entry"})
		return
	}

	jobs.GetWorker().Enqueue(jobs.MacroJob{
		FoodEntryID: entry.ID,
		UserID:      userID,
		Name:        req.Name,
		Grams:       req.Grams,
	})

	c.JSON(http.StatusAccepted, entry)
}

type waterRequest struct {
	Glasses int `json:"glasses" binding:"required"`
}

// AdjustWater moves water intake by whole glasses, floored at zero.
func AdjustWater(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req waterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.DayLog(userID, time.Now())
	if err != nil {
		logger.Error("failed to load daily log", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load daily log"})
		return
	}

	log.WaterOz = tracker.AdjustWater(log.WaterOz, req.Glasses*tracker.GlassOz)
	if err := database.DB.Model(&models.DailyLog{}).Where("id = ?", log.ID).
		Update("water_oz", log.WaterOz).Error; err != nil {
		logger.Error("failed to save water intake", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save water intake"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"water_oz": log.WaterOz, "glasses": log.WaterOz / tracker.GlassOz})
}
