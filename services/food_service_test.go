package services

import (
	"testing"

	"github.com/Dacosmicgiant/calorie-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchSubstringCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	seedFood(t, db, "Apple", "1 medium (180g)", 95)
	seedFood(t, db, "Grape", "1 cup", 62)
	seedFood(t, db, "Orange", "1 medium", 47)
	svc := NewFoodService(db)

	foods, err := svc.Search("ap", 10)
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "Apple", foods[0].Name)
	assert.Equal(t, "Grape", foods[1].Name)

	upper, err := svc.Search("AP", 10)
	require.NoError(t, err)
	assert.Len(t, upper, 2)
}

func TestSearchShortQueryReturnsNothing(t *testing.T) {
	db := newTestDB(t)
	seedFood(t, db, "Apple", "1 medium (180g)", 95)
	svc := NewFoodService(db)

	for _, q := range []string{"", "a", " a "} {
		foods, err := svc.Search(q, 10)
		require.NoError(t, err)
		assert.Empty(t, foods)
	}
}

func TestSearchRespectsLimit(t *testing.T) {
	db := newTestDB(t)
	seedFood(t, db, "Apple Pie", "1 slice", 411)
	seedFood(t, db, "Apple", "1 medium (180g)", 95)
	seedFood(t, db, "Apple Juice", "1 cup", 114)
	svc := NewFoodService(db)

	foods, err := svc.Search("apple", 2)
	require.NoError(t, err)
	assert.Len(t, foods, 2)
}

func TestCreateFoodValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodService(db)

	_, err := svc.Create("  ", "1 cup", 100)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	_, err = svc.Create("Water", "1 cup", 0)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "calories_per_serving", verr.Field)
}

func TestDeleteFoodCascadesToEntries(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice", 2000)
	apple := seedFood(t, db, "Apple", "1 medium (180g)", 95)
	banana := seedFood(t, db, "Banana", "1 medium", 105)
	svc := NewFoodService(db)

	seedEntry(t, db, userID, apple.ID, 1, day(0))
	seedEntry(t, db, userID, apple.ID, 2, day(-1))
	keep := seedEntry(t, db, userID, banana.ID, 1, day(0))

	require.NoError(t, svc.Delete(apple.ID))

	var count int64
	require.NoError(t, db.Model(&models.CalorieEntry{}).Where("food_id = ?", apple.ID).Count(&count).Error)
	assert.Zero(t, count, "no dangling entries may remain")

	var remaining models.CalorieEntry
	assert.NoError(t, db.First(&remaining, keep.ID).Error, "entries for other foods survive")
}

func TestDeleteMissingFood(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodService(db)

	assert.ErrorIs(t, svc.Delete(42), ErrNotFound)
}
