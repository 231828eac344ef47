package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyTotalTruncatesPerEntry(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice", 2000)
	cracker := seedFood(t, db, "Rice Cracker", "1 piece", 100)
	svc := NewReportService(db)

	// three entries of 33.33 cal each truncate individually to 33
	for i := 0; i < 3; i++ {
		seedEntry(t, db, userID, cracker.ID, 0.3333, day(0))
	}

	total, err := svc.DailyTotal(userID, day(0))
	require.NoError(t, err)
	assert.Equal(t, 99, total, "per-entry truncation, not 100 from a pooled float")
}

func TestDailyTotalEmptyDay(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice", 2000)
	svc := NewReportService(db)

	total, err := svc.DailyTotal(userID, day(0))
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestDailyTotalIgnoresOtherUsersAndDays(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice", 2000)
	bob := seedUser(t, db, "bob", 2000)
	apple := seedFood(t, db, "Apple", "1 medium (180g)", 95)
	svc := NewReportService(db)

	seedEntry(t, db, alice, apple.ID, 1.5, day(0)) // 142
	seedEntry(t, db, alice, apple.ID, 1, day(-1))
	seedEntry(t, db, bob, apple.ID, 1, day(0))

	total, err := svc.DailyTotal(alice, day(0))
	require.NoError(t, err)
	assert.Equal(t, 142, total)
}

func TestWeeklyTotalInclusiveWindow(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice", 2000)
	food := seedFood(t, db, "Bread", "1 slice", 100)
	svc := NewReportService(db)

	weekStart := day(-30)
	seedEntry(t, db, userID, food.ID, 1, weekStart)                 // first day counts
	seedEntry(t, db, userID, food.ID, 1, weekStart.AddDate(0, 0, 6)) // last day counts
	seedEntry(t, db, userID, food.ID, 1, weekStart.AddDate(0, 0, -1))
	seedEntry(t, db, userID, food.ID, 1, weekStart.AddDate(0, 0, 7))

	total, err := svc.WeeklyTotal(userID, weekStart)
	require.NoError(t, err)
	assert.Equal(t, 200, total)
}

func TestMonthlyTotalCalendarMonth(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice", 2000)
	food := seedFood(t, db, "Bread", "1 slice", 100)
	svc := NewReportService(db)

	feb := func(d int) time.Time { return time.Date(2023, time.February, d, 0, 0, 0, 0, time.Local) }
	seedEntry(t, db, userID, food.ID, 1, feb(1))
	seedEntry(t, db, userID, food.ID, 1, feb(28))
	seedEntry(t, db, userID, food.ID, 1, time.Date(2023, time.January, 31, 0, 0, 0, 0, time.Local))
	seedEntry(t, db, userID, food.ID, 1, time.Date(2023, time.March, 1, 0, 0, 0, 0, time.Local))

	total, err := svc.MonthlyTotal(userID, 2023, time.February)
	require.NoError(t, err)
	assert.Equal(t, 200, total)
}

func TestStreakStopsAtFirstMiss(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice", 2000)
	food := seedFood(t, db, "Meal", "1 plate", 100)
	svc := NewReportService(db)

	// goal 2000 -> band [1600, 2400]
	seedEntry(t, db, userID, food.ID, 20, day(0))  // 2000 in band
	seedEntry(t, db, userID, food.ID, 17, day(-1)) // 1700 in band
	seedEntry(t, db, userID, food.ID, 16, day(-2)) // 1600 on the low edge, counts
	seedEntry(t, db, userID, food.ID, 25, day(-3)) // 2500 over, stops the walk
	seedEntry(t, db, userID, food.ID, 20, day(-4)) // unreachable past the miss

	streak, err := svc.Streak(userID)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestStreakZeroWhenTodayMisses(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice", 2000)
	food := seedFood(t, db, "Meal", "1 plate", 100)
	svc := NewReportService(db)

	seedEntry(t, db, userID, food.ID, 20, day(-1)) // yesterday fine, today empty

	streak, err := svc.Streak(userID)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestStreakBandInclusiveAtUpperEdge(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice", 2000)
	food := seedFood(t, db, "Meal", "1 plate", 100)
	svc := NewReportService(db)

	seedEntry(t, db, userID, food.ID, 24, day(0)) // 2400 == goal*1.2

	streak, err := svc.Streak(userID)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestStreakMissingProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	_, err := svc.Streak(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStartOfWeekIsMonday(t *testing.T) {
	// 2023-06-14 was a Wednesday
	wed := time.Date(2023, time.June, 14, 15, 30, 0, 0, time.Local)
	monday := StartOfWeek(wed)
	assert.Equal(t, time.Monday, monday.Weekday())
	assert.Equal(t, 12, monday.Day())

	// a Monday maps to itself, a Sunday to the previous Monday
	assert.Equal(t, monday, StartOfWeek(monday))
	sun := time.Date(2023, time.June, 18, 8, 0, 0, 0, time.Local)
	assert.Equal(t, monday, StartOfWeek(sun))
}

func TestWeeklyReport(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice", 2000)
	food := seedFood(t, db, "Meal", "1 plate", 700)
	svc := NewReportService(db)

	weekStart := StartOfWeek(day(-30))
	seedEntry(t, db, userID, food.ID, 1, weekStart)
	seedEntry(t, db, userID, food.ID, 2, weekStart.AddDate(0, 0, 3))

	report, err := svc.WeeklyReport(userID, weekStart)
	require.NoError(t, err)

	require.Len(t, report.Days, 7)
	assert.Equal(t, "Monday", report.Days[0].DayName)
	assert.Equal(t, 700, report.Days[0].TotalCalories)
	assert.Equal(t, 1400, report.Days[3].TotalCalories)
	assert.Equal(t, 2100, report.TotalCalories)
	assert.InDelta(t, 300.0, report.AvgDailyCalories, 0.001)
	assert.InDelta(t, -1700.0, report.GoalDifference, 0.001)
	assert.Equal(t, 2000, report.DailyGoal)
}

func TestDashboard(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice", 2000)
	food := seedFood(t, db, "Meal", "1 plate", 1500)
	svc := NewReportService(db)

	seedEntry(t, db, userID, food.ID, 2, day(0)) // 3000, over goal
	seedEntry(t, db, userID, food.ID, 1, day(-2))

	dash, err := svc.Dashboard(userID)
	require.NoError(t, err)

	assert.Equal(t, 3000, dash.TodayCalories)
	assert.Equal(t, -1000, dash.RemainingCalories)
	assert.Equal(t, 100.0, dash.ProgressPercent, "progress is capped at 100")
	require.Len(t, dash.Week, 7)
	assert.Equal(t, 1500, dash.Week[4].Calories) // two days ago
	assert.Equal(t, 3000, dash.Week[6].Calories) // today is last
	require.Len(t, dash.Entries, 1)
}
