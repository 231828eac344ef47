package config

import (
	"fmt"
	"os"

	"github.com/Dacosmicgiant/calorie-tracker/logger"
	"github.com/Dacosmicgiant/calorie-tracker/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(log *logger.Logger) *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, reading configuration from environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database", "err", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Food{},
		&models.CalorieEntry{},
	); err != nil {
		log.Fatal("automigrate failed", "err", err)
	}

	return db
}
