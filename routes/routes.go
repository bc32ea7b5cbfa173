// Package routes assembles the gin engine and binds the HTTP surface.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arsh077/Khurak-new-application/config"
	"github.com/arsh077/Khurak-new-application/controllers"
	"github.com/arsh077/Khurak-new-application/middleware"
)

// Setup builds the router with all public and authenticated routes.
func Setup(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	secret := []byte(cfg.JWTSecretKey)
	auth := controllers.NewAuthController(secret)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public surface.
	router.POST("/auth/signup", auth.Signup)
	router.POST("/auth/login", auth.Login)
	router.POST("/auth/otp/request", controllers.RequestOTP)
	router.POST("/auth/otp/verify", controllers.VerifyOTP)
	router.POST("/calculator", controllers.Calculator)

	// Everything below requires a session.
	api := router.Group("/")
	api.Use(middleware.AuthenticateJWT(secret))
	{
		api.POST("/profile/onboarding", controllers.Onboard)
		api.GET("/profile", controllers.GetProfile)
		api.POST("/profile/recalculate", controllers.Recalculate)

		api.GET("/log/today", controllers.GetToday)
		api.POST("/log/food", controllers.LogFoodManual)
		api.POST("/log/food/text", controllers.LogFoodText)
		api.POST("/log/food/image", controllers.LogFoodImage)
		api.POST("/log/food/grams", controllers.LogFoodGrams)
		api.POST("/log/water", controllers.AdjustWater)

		api.GET("/exercises/catalog", controllers.GetExerciseCatalog)
		api.GET("/exercises", controllers.GetExercises)
		api.POST("/exercises", controllers.LogExercise)

		api.GET("/missions", controllers.GetMissions)
		api.POST("/missions/complete", controllers.CompleteMission)

		api.GET("/quests", controllers.GetQuestCatalog)
		api.GET("/quests/:id", controllers.GetQuestProgram)
		api.GET("/quests/:id/days/:day", controllers.GetQuestDay)
		api.POST("/quests/complete", controllers.CompleteQuestDay)

		api.POST("/ai/chat", controllers.NutritionistChat)
		api.POST("/ai/recipe", controllers.GenerateRecipe)
		api.POST("/ai/suggest-meal", controllers.SuggestNextMeal)
		api.POST("/ai/nearby", controllers.NearbyPlaces)

		api.GET("/payment/plans", controllers.GetPlans)
		api.POST("/payment/capture", controllers.CapturePayment)
		api.GET("/payment/refund-eligibility", controllers.RefundEligibility)

		api.GET("/sse/macros", MacroStream)
	}

	return router
}
