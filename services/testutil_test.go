package services

import (
	"testing"
	"time"

	"github.com/Dacosmicgiant/calorie-tracker/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Food{},
		&models.CalorieEntry{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, goal int) uint {
	t.Helper()
	user := models.User{Username: username, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	profile := models.UserProfile{UserID: user.ID, DailyCalorieGoal: goal}
	require.NoError(t, db.Create(&profile).Error)
	return user.ID
}

func seedFood(t *testing.T, db *gorm.DB, name, serving string, calories int) models.Food {
	t.Helper()
	food := models.Food{Name: name, Serving: serving, CaloriesPerServing: calories}
	require.NoError(t, db.Create(&food).Error)
	return food
}

func seedEntry(t *testing.T, db *gorm.DB, userID, foodID uint, quantity float64, day time.Time) models.CalorieEntry {
	t.Helper()
	entry := models.CalorieEntry{UserID: userID, FoodID: foodID, Quantity: quantity, Date: dayStart(day)}
	require.NoError(t, db.Create(&entry).Error)
	return entry
}

// today at local midnight, shifted by offset days
func day(offset int) time.Time {
	return dayStart(time.Now()).AddDate(0, 0, offset)
}
