package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/arsh077/Khurak-new-application/config"
	"github.com/arsh077/Khurak-new-application/database"
	"github.com/arsh077/Khurak-new-application/jobs"
	"github.com/arsh077/Khurak-new-application/logger"
	"github.com/arsh077/Khurak-new-application/routes"
)

func main() {
	logger.Init()
	defer logger.Close()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment")
	}

	cfgPath := config.GetEnv("CONFIG_PATH", "config/development.yaml")
	cfg, err := config.Read(cfgPath)
	if err != nil {
		logger.Fatal("failed to read config", zap.String("path", cfgPath), zap.Error(err))
	}

	if err := database.Init(cfg); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer database.Close()

	// Start the background macro-estimation worker before serving.
	jobs.GetWorker()

	router := routes.Setup(cfg)
	port := config.GetEnv("PORT", "8080")
	logger.Info("server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
