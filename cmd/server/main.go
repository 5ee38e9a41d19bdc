package main

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"contact-service/internal/config"
	"contact-service/internal/db"
	"contact-service/internal/delivery/handler"
	"contact-service/internal/delivery/middleware"
	"contact-service/internal/infrastructure"
	"contact-service/internal/repository"
	"contact-service/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	log.Info("Connected to MongoDB")

	repo := repository.NewUserRepo(client.Database(cfg.MongoDB))
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret)
	splunkService := infrastructure.NewSplunkService(cfg.SplunkURL, cfg.SplunkToken)
	uc := usecase.NewUserUsecase(repo, jwtService)
	h := handler.NewHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger(splunkService))
	e.Static("/", cfg.StaticDir)

	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)

	auth := middleware.Auth(jwtService)
	e.POST("/addcontact", h.AddContact, auth)
	e.GET("/contacts", h.ListContacts, auth)

	log.Infof("Server running on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
