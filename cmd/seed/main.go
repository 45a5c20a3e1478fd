package main

import (
	"context"
	"errors"
	"log"

	"wolfstreet/internal/auth"
	"wolfstreet/internal/config"
	"wolfstreet/internal/db"
	apperrors "wolfstreet/internal/errors"
	"wolfstreet/internal/model"
	"wolfstreet/internal/repository"
)

// seedUser is a demo account plus its starter watchlist.
type seedUser struct {
	Name     string
	Email    string
	Password string
	Plan     model.Plan
	Symbols  []string
}

var seedUsers = []seedUser{
	{
		Name:     "Ada Wolfe",
		Email:    "ada@example.com",
		Password: "wolf123",
		Plan:     model.PlanFree,
		Symbols:  []string{"AAPL", "BTC"},
	},
	{
		Name:     "Jordan Belford",
		Email:    "jordan@example.com",
		Password: "stratton",
		Plan:     model.PlanPro,
		Symbols:  []string{"TSLA", "MSFT", "ETH"},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Session{}, &model.WatchlistItem{}, &model.ChatMessage{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	users := repository.NewUserRepository(gormDB)
	watchlist := repository.NewWatchlistRepository(gormDB)

	ctx := context.Background()
	created, skipped := 0, 0
	for _, su := range seedUsers {
		user := &model.User{
			Name:         su.Name,
			Email:        su.Email,
			PasswordHash: auth.HashPassword(su.Password),
			Plan:         su.Plan,
		}
		if err := users.Create(ctx, user); err != nil {
			if errors.Is(err, apperrors.ErrEmailAlreadyRegistered) {
				log.Printf("Skipping %s: already registered", su.Email)
				skipped++
				continue
			}
			log.Fatalf("Failed to create user %s: %v", su.Email, err)
		}
		for _, sym := range su.Symbols {
			item := &model.WatchlistItem{UserID: user.ID, Symbol: sym}
			if err := watchlist.Create(ctx, item); err != nil {
				log.Fatalf("Failed to create watchlist item %s for %s: %v", sym, su.Email, err)
			}
		}
		created++
	}

	log.Printf("Seed complete: %d users created, %d skipped", created, skipped)
}
