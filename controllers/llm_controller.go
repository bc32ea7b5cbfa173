package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arsh077/Khurak-new-application/llm"
	"github.com/arsh077/Khurak-new-application/logger"
	"github.com/arsh077/Khurak-new-application/models"
	"github.com/arsh077/Khurak-new-application/services"
	"github.com/arsh077/Khurak-new-application/tracker"
)

func profileContext(p *models.Profile) string {
	return fmt.Sprintf(
		"goal: %s, daily target: %d kcal, protein target: %dg, vegetarian: %t, health conditions: %s",
		p.Goal, p.DailyCalorieTarget, p.ProteinTarget, p.IsVegetarian, p.HormonalIssues)
}

type chatRequest struct {
	Messages []llm.Message `json:"messages" binding:"required,min=1"`
}

// NutritionistChat relays the conversation to the coach persona with the
// user's targets injected as context.
func NutritionistChat(c *gin.Context) {
	profile, ok := loadProfile(c)
	if !ok {
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := llm.NewClient().NutritionistReply(req.Messages, profileContext(profile))
	if err != nil {
		logger.Error("nutritionist chat failed", zap.Uint("user", profile.UserID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "the nutritionist is unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

type recipeRequest struct {
	Ingredients string `json:"ingredients" binding:"required"`
}

// GenerateRecipe turns a list of on-hand ingredients into one recipe
// that respects the user's health context.
func GenerateRecipe(c *gin.Context) {
	profile, ok := loadProfile(c)
	if !ok {
		return
	}

	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := llm.NewClient().GenerateRecipe(req.Ingredients, profileContext(profile))
	if err != nil {
		logger.Error("recipe generation failed", zap.Uint("user", profile.UserID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not generate a recipe"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

type suggestMealRequest struct {
	MealType string `json:"meal_type" binding:"required"`
}

// SuggestNextMeal proposes the next meal from today's remaining budget.
func SuggestNextMeal(c *gin.Context) {
	profile, ok := loadProfile(c)
	if !ok {
		return
	}

	var req suggestMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.DayLog(profile.UserID, time.Now())
	if err != nil {
		logger.Error("failed to load daily log", zap.Uint("user", profile.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load daily log"})
		return
	}
	remaining := int(tracker.RemainingCalories(profile.DailyCalorieTarget, log.Foods, log.Events))

	suggestion, err := llm.NewClient().SuggestNextMeal(remaining, req.MealType, profileContext(profile))
	if err != nil {
		logger.Error("meal suggestion failed", zap.Uint("user", profile.UserID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not suggest a meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"remaining_calories": remaining, "suggestion": suggestion})
}

type nearbyRequest struct {
	Lat float64 `json:"lat" binding:"required"`
	Lng float64 `json:"lng" binding:"required"`
}

// NearbyPlaces lists healthy food options around a location.
func NearbyPlaces(c *gin.Context) {
	profile, ok := loadProfile(c)
	if !ok {
		return
	}

	var req nearbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	places, err := llm.NewClient().FindHealthyPlaces(req.Lat, req.Lng)
	if err != nil {
		logger.Error("nearby places lookup failed", zap.Uint("user", profile.UserID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not find nearby places"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"places": places})
}
