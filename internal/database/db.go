package database

import (
	"log"

	"github.com/sahilkr24/jobtrackr/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: creates the table in Postgres automatically
	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.JobApplication{}); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
