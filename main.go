package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/amjudson/react-redmango-api/configs"
	"github.com/amjudson/react-redmango-api/middlewares"
	"github.com/amjudson/react-redmango-api/pkg/storage"
	"github.com/amjudson/react-redmango-api/routes"
	"github.com/amjudson/react-redmango-api/services"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	// roles are provisioned once here, never in the request path
	if err := configs.SeedRoles(); err != nil {
		log.Fatal().Err(err).Msg("seed roles failed")
	}
	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatal().Err(err).Msg("seed admin failed")
	}

	// Blob storage for menu item images
	blobs, err := storage.NewS3Store(context.Background(), storage.Options{
		Bucket:   cfg.S3Bucket,
		Region:   cfg.S3Region,
		Key:      cfg.S3Key,
		Secret:   cfg.S3Secret,
		Endpoint: cfg.S3Endpoint,
		BaseURL:  cfg.S3URL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("blob storage init failed")
	}

	gateway := services.NewStripeGateway(cfg.StripeSecretKey)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, blobs, gateway)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
