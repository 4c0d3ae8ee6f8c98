package main

import (
	"net/http"

	_ "nutrio/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"nutrio/internal/config"
	"nutrio/internal/db"
	"nutrio/internal/handler"
	"nutrio/internal/model"
	"nutrio/internal/repository"
	"nutrio/internal/router"
	"nutrio/internal/service"
	"nutrio/internal/session"
)

// @title Nutrio User Account API
// @version 1.0
// @description Minimal user-account service: signup, login, and profile maintenance with cookie sessions.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	redisClient := session.NewRedisClient(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookies, session.NewRedisStore(redisClient))

	userRepo := repository.NewUserRepository(gormDB)

	authService := service.NewAuthService(userRepo, log)
	profileService := service.NewProfileService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService, sessions)
	profileHandler := handler.NewProfileHandler(profileService, sessions)

	router.Register(e, cfg, authHandler, profileHandler)

	addr := ":" + cfg.ServerPort
	log.Infof("listening on %s", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
