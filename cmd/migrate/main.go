package main

import (
	"log"

	"github.com/abdul-nishar/Entertainment-API/config"
	"github.com/abdul-nishar/Entertainment-API/models"
)

func main() {
	db := config.ConnectDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.Entertainment{},
		&models.Review{},
		&models.WatchlistItem{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("✅ Migration completed")
}
