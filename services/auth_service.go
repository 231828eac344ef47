package services

import (
	"errors"
	"strings"

	"github.com/Dacosmicgiant/calorie-tracker/models"
	"github.com/Dacosmicgiant/calorie-tracker/utils"

	"gorm.io/gorm"
)

const defaultCalorieGoal = 2000

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates the user and their profile in one transaction, so
// profile-dependent reads never race a missing row.
func (s *AuthService) Register(username, password, email string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &ValidationError{Field: "username", Message: "must not be empty"}
	}
	if len(password) < 8 {
		return nil, &ValidationError{Field: "password", Message: "must be at least 8 characters"}
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Username: username, Password: hashed, Email: email}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &ValidationError{Field: "username", Message: "already taken"}
		}

		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.UserProfile{UserID: user.ID, DailyCalorieGoal: defaultCalorieGoal}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks the credentials and issues a signed token. Wrong
// username and wrong password are indistinguishable to the caller.
func (s *AuthService) Authenticate(username, password string) (string, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.ID, user.Username)
}
