package main

import (
	"log"

	"race-circuit-backend/internal/config"
	"race-circuit-backend/internal/database"
	"race-circuit-backend/internal/handlers"
	"race-circuit-backend/internal/logger"
	"race-circuit-backend/internal/middleware"
	"race-circuit-backend/internal/services"
	"race-circuit-backend/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db := database.Connect(cfg, zlog)
	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}

	hub := ws.NewHub(zlog)

	authService := services.NewAuthService(db, cfg.JWTSecret)
	circuitService := services.NewCircuitService(db)
	statsService := services.NewStatsService(db)
	raceService := services.NewRaceService(db, statsService)
	leaderboardService := services.NewLeaderboardService(db)
	friendService := services.NewFriendService(db)
	groupService := services.NewGroupService(db)

	engine := ws.NewEngine(hub, raceService, zlog)

	authHandler := handlers.NewAuthHandler(authService)
	circuitHandler := handlers.NewCircuitHandler(circuitService, authService)
	raceHandler := handlers.NewRaceHandler(raceService, leaderboardService, authService, hub)
	friendHandler := handlers.NewFriendHandler(friendService, authService)
	groupHandler := handlers.NewGroupHandler(groupService, authService)
	wsHandler := handlers.NewWSHandler(hub, engine, zlog)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	r.GET("/ws/:user_id", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.JWTAuth(authService), authHandler.Me)
		}

		circuits := api.Group("/circuits")
		circuits.Use(middleware.JWTAuth(authService))
		{
			circuits.POST("", circuitHandler.Create)
			circuits.GET("", circuitHandler.List)
			circuits.GET("/:id", circuitHandler.Get)
			circuits.DELETE("/:id", circuitHandler.Delete)
		}

		races := api.Group("/races")
		races.Use(middleware.JWTAuth(authService))
		{
			races.POST("", raceHandler.Create)
			races.GET("", raceHandler.List)
			races.GET("/:id", raceHandler.Get)
			races.POST("/:id/join", raceHandler.Join)
			races.POST("/:id/start", raceHandler.Start)
			races.GET("/:id/leaderboard", raceHandler.Leaderboard)
		}

		friends := api.Group("/friends")
		friends.Use(middleware.JWTAuth(authService))
		{
			friends.POST("/request", friendHandler.SendRequest)
			friends.GET("", friendHandler.List)
			friends.POST("/:id/accept", friendHandler.Accept)
		}

		groups := api.Group("/groups")
		groups.Use(middleware.JWTAuth(authService))
		{
			groups.POST("", groupHandler.Create)
			groups.GET("", groupHandler.List)
		}
	}

	zlog.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}
