package models

import "gorm.io/gorm"

// A catalog food and its per-serving calorie count
type Food struct {
	gorm.Model
	Name               string `gorm:"index;not null"`
	Serving            string // free text, e.g. "1 medium (180g)"
	CaloriesPerServing int    `gorm:"not null"`
}
