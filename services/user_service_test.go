package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateGoalBounds(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice", 2000)
	svc := NewUserService(db)

	for _, goal := range []int{999, 5001, 0, -100} {
		_, err := svc.UpdateGoal(userID, goal)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "goal %d must be rejected", goal)
		assert.Equal(t, "daily_calorie_goal", verr.Field)
	}

	for _, goal := range []int{1000, 5000, 2200} {
		profile, err := svc.UpdateGoal(userID, goal)
		require.NoError(t, err)
		assert.Equal(t, goal, profile.DailyCalorieGoal)
	}
}

func TestGetProfileMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.GetProfile(404)
	assert.ErrorIs(t, err, ErrNotFound)
}
