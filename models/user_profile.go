package models

import "gorm.io/gorm"

// UserProfile holds each user's daily calorie target. One row per user,
// created in the same transaction as the user itself.
type UserProfile struct {
	gorm.Model
	UserID           uint `gorm:"uniqueIndex;not null"`
	DailyCalorieGoal int  `gorm:"default:2000"`
}
