package services

import (
	"errors"

	"github.com/Dacosmicgiant/calorie-tracker/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetProfile(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateGoal enforces the goal bounds here at the boundary; storage
// accepts whatever it is handed.
func (s *UserService) UpdateGoal(userID uint, goal int) (*models.UserProfile, error) {
	if goal < 1000 || goal > 5000 {
		return nil, &ValidationError{Field: "daily_calorie_goal", Message: "must be between 1000 and 5000"}
	}

	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	profile.DailyCalorieGoal = goal
	if err := s.db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
