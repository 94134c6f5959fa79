package main

import (
	"github.com/aszxazs-a11y/aboutleesanbang/internal/app"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/cache"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/config"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/database"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/logger"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/s3"
)

// @title           Portfolio API
// @version         1.0
// @description     Personal portfolio site with works, comments, likes and an operator API.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	app.Run(cfg, log, db, s3Client, redisClient)
}
