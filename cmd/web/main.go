package main

import (
	"context"
	"log"
	"time"

	"Masterchef-Web/cmd/config"
	migration "Masterchef-Web/cmd/database/migrate"
	"Masterchef-Web/internal/utils"
	"Masterchef-Web/pkg/session"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("app setup failed: %v", err)
	}

	// expired sessions are swept in the background
	sessionRepository := session.NewSessionRepository(db)
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := sessionRepository.DeleteExpired(context.Background(), time.Now()); err != nil {
				log.Printf("session cleanup failed: %v", err)
			}
		}
	}()

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "3000"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
