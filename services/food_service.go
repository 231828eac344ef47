package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/Dacosmicgiant/calorie-tracker/models"

	"gorm.io/gorm"
)

const defaultSearchLimit = 10

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// Search matches case-insensitive substrings of the food name. Queries
// shorter than two characters return nothing so a stray keystroke can't
// dump the whole catalog.
func (s *FoodService) Search(query string, limit int) ([]models.Food, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < 2 {
		return []models.Food{}, nil
	}

	var foods []models.Food
	err := s.db.
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Order("name ASC").
		Limit(limit).
		Find(&foods).Error
	return foods, err
}

func (s *FoodService) Create(name, serving string, caloriesPerServing int) (*models.Food, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if caloriesPerServing <= 0 {
		return nil, &ValidationError{Field: "calories_per_serving", Message: "must be greater than zero"}
	}

	food := models.Food{Name: name, Serving: strings.TrimSpace(serving), CaloriesPerServing: caloriesPerServing}
	if err := s.db.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) List() ([]models.Food, error) {
	var foods []models.Food
	err := s.db.Order("name ASC").Find(&foods).Error
	return foods, err
}

// Delete removes the food and every entry referencing it in one
// transaction. Entries must never point at a missing catalog row.
func (s *FoodService) Delete(foodID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var food models.Food
		if err := tx.First(&food, foodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("food_id = ?", foodID).Delete(&models.CalorieEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&food).Error
	})
}
