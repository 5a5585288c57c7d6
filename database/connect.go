package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"finbuddy-go-be/config"
	"finbuddy-go-be/models"
)

// DB instance
var DB *gorm.DB

// ConnectDB connects to the database
func ConnectDB(cfg config.Config) {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}
	if !strings.Contains(dsn, "sslmode") {
		dsn += "?sslmode=require" // Fixes Supabase connection refusal
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}

	log.Println("Connected to database successfully")

	// Auto Migrate
	log.Println("Running migrations...")
	err = DB.AutoMigrate(
		&models.Profile{},
		&models.Income{},
		&models.Expense{},
		&models.Goal{},
		&models.SplitExpense{},
		&models.SplitParticipant{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database. \n", err)
	}
	log.Println("Database migrated successfully")
}
