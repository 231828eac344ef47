package services

import (
	"errors"
	"time"

	"github.com/Dacosmicgiant/calorie-tracker/models"

	"gorm.io/gorm"
)

const historyPageSize = 15

type EntryService struct {
	db *gorm.DB
}

func NewEntryService(db *gorm.DB) *EntryService {
	return &EntryService{db: db}
}

// validate resolves the food reference and checks the quantity. Both
// failures surface as field-level validation errors, not 404s: from the
// caller's view a bad food id is bad input, not a missing entry.
func (s *EntryService) validate(foodID uint, quantity float64) (*models.Food, error) {
	if quantity <= 0 {
		return nil, &ValidationError{Field: "quantity", Message: "must be greater than zero"}
	}

	var food models.Food
	if err := s.db.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ValidationError{Field: "food_id", Message: "unknown food"}
		}
		return nil, err
	}
	return &food, nil
}

func (s *EntryService) Create(userID, foodID uint, quantity float64, date time.Time) (*models.CalorieEntry, error) {
	food, err := s.validate(foodID, quantity)
	if err != nil {
		return nil, err
	}

	entry := models.CalorieEntry{
		UserID:   userID,
		FoodID:   food.ID,
		Quantity: quantity,
		Date:     dayStart(date),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}

	entry.Food = *food
	return &entry, nil
}

func (s *EntryService) Get(entryID, userID uint) (*models.CalorieEntry, error) {
	var entry models.CalorieEntry
	err := s.db.
		Preload("Food").
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *EntryService) Update(entryID, userID, foodID uint, quantity float64, date time.Time) (*models.CalorieEntry, error) {
	// ownership check first; a foreign entry is "not found", never a
	// validation message that would confirm its existence
	entry, err := s.Get(entryID, userID)
	if err != nil {
		return nil, err
	}

	food, err := s.validate(foodID, quantity)
	if err != nil {
		return nil, err
	}

	entry.Food = models.Food{} // keep Save from writing the stale association
	entry.FoodID = food.ID
	entry.Quantity = quantity
	entry.Date = dayStart(date)
	if err := s.db.Omit("Food").Save(entry).Error; err != nil {
		return nil, err
	}

	entry.Food = *food
	return entry, nil
}

func (s *EntryService) Delete(entryID, userID uint) error {
	res := s.db.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.CalorieEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByDate returns one day's entries, newest first.
func (s *EntryService) ListByDate(userID uint, day time.Time) ([]models.CalorieEntry, error) {
	var entries []models.CalorieEntry
	err := s.db.
		Preload("Food").
		Where("user_id = ? AND date = ?", userID, dayStart(day)).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

// History pages the full log, newest day first with the creation
// timestamp as tie-break.
func (s *EntryService) History(userID uint, page int) ([]models.CalorieEntry, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := s.db.
		Model(&models.CalorieEntry{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.CalorieEntry
	err := s.db.
		Preload("Food").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(historyPageSize).
		Offset((page - 1) * historyPageSize).
		Find(&entries).Error
	return entries, total, err
}
