// Package main is the entry point for the refdata service.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/poseidon-markets/refdata-service/internal/config"
	"github.com/poseidon-markets/refdata-service/internal/handlers"
	"github.com/poseidon-markets/refdata-service/internal/models"
	"github.com/poseidon-markets/refdata-service/internal/repository"
	"github.com/poseidon-markets/refdata-service/internal/routes"
	"github.com/poseidon-markets/refdata-service/internal/service"
	"github.com/poseidon-markets/refdata-service/pkg/database"
	"github.com/poseidon-markets/refdata-service/pkg/logger"
	"github.com/poseidon-markets/refdata-service/pkg/redis"
)

// @title Poseidon Refdata Service API
// @version 1.0
// @description Financial reference and trading record service
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zlog.Sync()

	// Initialize database
	db, err := database.Connect(database.PostgresConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  "disable",
		TimeZone: "UTC",
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.BidList{},
		&models.CurvePoint{},
		&models.Rating{},
		&models.RuleName{},
		&models.Trade{},
		&models.User{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis, optional
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize repositories
	bidListRepo := repository.NewBidListRepository(db)
	curvePointRepo := repository.NewCurvePointRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	ruleNameRepo := repository.NewRuleNameRepository(db)
	tradeRepo := repository.NewTradeRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTExpiry)
	if jwtService == nil {
		log.Fatal("JWT_SECRET must be at least 32 bytes")
	}
	authService := service.NewAuthService(userRepo, jwtService, redisClient)
	bidListService := service.NewBidListService(bidListRepo)
	curvePointService := service.NewCurvePointService(curvePointRepo)
	ratingService := service.NewRatingService(ratingRepo)
	ruleNameService := service.NewRuleNameService(ruleNameRepo)
	tradeService := service.NewTradeService(tradeRepo)
	userService := service.NewUserService(userRepo)

	// Seed the first administrator when configured and none exists
	if err := service.EnsureAdminUser(context.Background(), userRepo, userService, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to ensure admin user:", err)
	}

	// Initialize handlers
	h := routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService, zlog),
		BidList:    handlers.NewBidListHandler(bidListService, zlog),
		CurvePoint: handlers.NewCurvePointHandler(curvePointService, zlog),
		Rating:     handlers.NewRatingHandler(ratingService, zlog),
		RuleName:   handlers.NewRuleNameHandler(ruleNameService, zlog),
		Trade:      handlers.NewTradeHandler(tradeService, zlog),
		User:       handlers.NewUserHandler(userService, zlog),
		Health:     handlers.NewHealthHandler(),
	}

	// Setup router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Setup routes
	routes.Setup(router, h, jwtService, authService, cfg, zlog)

	// Start server
	log.Printf("Starting refdata service on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
