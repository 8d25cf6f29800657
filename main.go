package main

import (
	"context"
	"os"

	"VisionCare360/config/cache"
	"VisionCare360/config/db"
	"VisionCare360/config/logger"
	"VisionCare360/controllers"
	"VisionCare360/jobs"
	"VisionCare360/migrations"
	"VisionCare360/routes"
	"VisionCare360/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	runServer = serve
	isTest    = false
)

func main() {
	run()
}

func run() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file loaded")
	}
	logger.Init(os.Getenv("ENV"))

	if isTest {
		return
	}
	runServer()
}

func serve() {
	if err := db.Connect(); err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	if err := cache.Connect(); err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		migrations.BackfillIsReadOnContacts()
		migrations.NormalizeReelViews()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := services.NewDashboardHub()
	if err := hub.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("dashboard hub failed to start")
	}
	controllers.Hub = hub

	scheduler := jobs.StartDailyScheduler(ctx, hub)
	defer scheduler.Stop()

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.Routes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3005"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
