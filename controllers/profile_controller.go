package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/arsh077/Khurak-new-application/database"
	"github.com/arsh077/Khurak-new-application/logger"
	"github.com/arsh077/Khurak-new-application/metabolic"
	"github.com/arsh077/Khurak-new-application/middleware"
	"github.com/arsh077/Khurak-new-application/models"
)

type onboardingRequest struct {
	Name              string                   `json:"name" binding:"required"`
	Age               int                      `json:"age" binding:"required"`
	Gender            models.Gender            `json:"gender" binding:"required"`
	HeightCm          float64                  `json:"height" binding:"required"`
	WeightKg          float64                  `json:"weight" binding:"required"`
	TargetWeightKg    float64                  `json:"target_weight"`
	ActivityLevel     models.ActivityLevel     `json:"activity_level" binding:"required"`
	Goal              models.Goal              `json:"goal" binding:"required"`
	IsVegetarian      bool                     `json:"is_vegetarian"`
	HormonalIssues    models.HormonalIssue     `json:"hormonal_issues"`
	WorkoutPreference models.WorkoutPreference `json:"workout_preference"`
}

func loadProfile(c *gin.Context) (*models.Profile, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return nil, false
	}
	var profile models.Profile
	if err := database.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return nil, false
		}
		logger.Error("failed to load profile", zap.Uint("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return nil, false
	}
	return &profile, true
}

// Onboard finalizes the profile with body metrics and derives the
// calorie and protein targets.
func Onboard(c *gin.Context) {
	profile, ok := loadProfile(c)
	if !ok {
		return
	}

	var req onboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.HormonalIssues == "" {
		req.HormonalIssues = models.HormonalNone
	}

	result, err := metabolic.Compute(metabolic.Input{
		WeightKg: req.WeightKg,
		HeightCm: req.HeightCm,
		AgeYears: req.Age,
		Gender:   req.Gender,
		Activity: req.ActivityLevel,
		Goal:     req.Goal,
		Hormonal: req.HormonalIssues,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile.Name = req.Name
	profile.Age = req.Age
	profile.Gender = req.Gender
	profile.HeightCm = req.HeightCm
	profile.WeightKg = req.WeightKg
	profile.TargetWeightKg = req.TargetWeightKg
	profile.ActivityLevel = req.ActivityLevel
	profile.Goal = req.Goal
	profile.IsVegetarian = req.IsVegetarian
	profile.HormonalIssues = req.HormonalIssues
	profile.WorkoutPreference = req.WorkoutPreference
	profile.BMR = result.BMR
	profile.DailyCalorieTarget = result.DailyCalorieTarget
	profile.ProteinTarget = result.ProteinTargetGrams

	if !profile.Onboarded {
		profile.StartDate = time.Now().UTC()
		profile.StartWeightKg = req.WeightKg
		profile.Onboarded = true
	}

	if err := database.DB.Save(profile).Error; err != nil {
		logger.Error("failed to save profile", zap.Uint("user", profile.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetProfile returns the profile with its derived targets and
// progression counters.
func GetProfile(c *gin.Context) {
	profile, ok := loadProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, profile)
}

type recalculateRequest struct {
	WeightKg      float64               `json:"weight"`
	ActivityLevel models.ActivityLevel  `json:"activity_level"`
	Goal          models.Goal           `json:"goal"`
	Hormonal      *models.HormonalIssue `json:"hormonal_issues"`
}

// Recalculate re-derives targets after a body-metric or goal change.
// Omitted fields keep their stored values.
func Recalculate(c *gin.Context) {
	profile, ok := loadProfile(c)
	if !ok {
		return
	}
	if !profile.Onboarded {
		c.JSON(http.StatusConflict, gin.H{"error": "complete onboarding first"})
		return
	}

	var req recalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.WeightKg > 0 {
		profile.WeightKg = req.WeightKg
	}
	if req.ActivityLevel != "" {
		profile.ActivityLevel = req.ActivityLevel
	}
	if req.Goal != "" {
		profile.Goal = req.Goal
	}
	if req.Hormonal != nil {
		profile.HormonalIssues = *req.Hormonal
	}

	result, err := metabolic.Compute(metabolic.Input{
		WeightKg: profile.WeightKg,
		HeightCm: profile.HeightCm,
		AgeYears: profile.Age,
		Gender:   profile.Gender,
		Activity: profile.ActivityLevel,
		Goal:     profile.Goal,
		Hormonal: profile.HormonalIssues,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile.BMR = result.BMR
	profile.DailyCalorieTarget = result.DailyCalorieTarget
	profile.ProteinTarget = result.ProteinTargetGrams

	if err := database.DB.Save(profile).Error; err != nil {
		logger.Error("failed to save profile", zap.Uint("user", profile.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

type calculatorRequest struct {
	WeightKg float64              `json:"weight" binding:"required"`
	HeightCm float64              `json:"height" binding:"required"`
	AgeYears int                  `json:"age" binding:"required"`
	Gender   models.Gender        `json:"gender" binding:"required"`
	Activity models.ActivityLevel `json:"activity_level" binding:"required"`
}

// Calculator is the public, no-account estimate used by the landing
// page. It deliberately uses the rougher Harris-Benedict formula so
// onboarding still has something better to offer.
func Calculator(c *gin.Context) {
	var req calculatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bmr, tdee, err := metabolic.QuickEstimate(req.WeightKg, req.HeightCm, req.AgeYears, req.Gender, req.Activity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bmr": bmr, "tdee": tdee})
}
