package models

import (
	"time"

	"gorm.io/gorm"
)

// CalorieEntry is one logged food consumption. Date is the calendar day
// the intake counts toward; CreatedAt doubles as the tie-break ordering.
type CalorieEntry struct {
	gorm.Model
	UserID   uint `gorm:"index;not null"`
	FoodID   uint `gorm:"index;not null"`
	Food     Food
	Quantity float64   `gorm:"not null"`       // servings, fractional allowed
	Date     time.Time `gorm:"index;not null"` // truncate to local midnight
}

// TotalCalories truncates, never rounds: 95 cal at 1.5 servings is 142.
func (e *CalorieEntry) TotalCalories() int {
	return int(float64(e.Food.CaloriesPerServing) * e.Quantity)
}
