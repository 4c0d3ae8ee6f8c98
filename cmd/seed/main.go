package main

import (
	"context"
	"errors"
	"flag"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nutrio/internal/config"
	"nutrio/internal/db"
	"nutrio/internal/model"
	"nutrio/internal/repository"
)

// Seeds a demo account so a fresh deployment has a user to log in with.
func main() {
	name := flag.String("name", "demo", "name of the seeded user")
	email := flag.String("email", "demo@nutrio.local", "email of the seeded user")
	password := flag.String("password", "password123", "password of the seeded user")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	existing, err := userRepo.FindByEmail(ctx, *email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("lookup seed user: %v", err)
	}
	if existing != nil {
		log.WithField("email", *email).Info("seed user already present, nothing to do")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	user := &model.User{
		Name:         *name,
		Email:        *email,
		PasswordHash: string(hashed),
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("create seed user: %v", err)
	}

	log.WithField("email", *email).Info("seed user created")
}
