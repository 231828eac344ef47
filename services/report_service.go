package services

import (
	"errors"
	"time"

	"github.com/Dacosmicgiant/calorie-tracker/models"

	"gorm.io/gorm"
)

// maxStreakDays bounds the backward walk so pathological data can't spin
// the request forever.
const maxStreakDays = 365

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

func dayStart(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// StartOfWeek returns the Monday of t's week at local midnight.
func StartOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return dayStart(t).AddDate(0, 0, -(wd - 1))
}

// TotalCalories sums per-entry truncated totals. Each entry truncates on
// its own before the sum: three 33.33 cal entries make 99, not 100.
func TotalCalories(entries []models.CalorieEntry) int {
	total := 0
	for i := range entries {
		total += entries[i].TotalCalories()
	}
	return total
}

func (s *ReportService) entriesBetween(userID uint, from, to time.Time) ([]models.CalorieEntry, error) {
	var entries []models.CalorieEntry
	err := s.db.
		Preload("Food").
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC, created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (s *ReportService) profileFor(userID uint) (*models.UserProfile, error) {
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

// DailyTotal sums the calories logged on one calendar day; zero when the
// day has no entries.
func (s *ReportService) DailyTotal(userID uint, day time.Time) (int, error) {
	start := dayStart(day)
	entries, err := s.entriesBetween(userID, start, start.AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}
	return TotalCalories(entries), nil
}

// WeeklyTotal covers the inclusive seven-day window starting at weekStart.
func (s *ReportService) WeeklyTotal(userID uint, weekStart time.Time) (int, error) {
	start := dayStart(weekStart)
	entries, err := s.entriesBetween(userID, start, start.AddDate(0, 0, 7))
	if err != nil {
		return 0, err
	}
	return TotalCalories(entries), nil
}

func (s *ReportService) MonthlyTotal(userID uint, year int, month time.Month) (int, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	entries, err := s.entriesBetween(userID, start, start.AddDate(0, 1, 0))
	if err != nil {
		return 0, err
	}
	return TotalCalories(entries), nil
}

// Streak counts consecutive days, walking back from today, whose total
// lands within 80-120% of the user's goal (inclusive at both edges). The
// first miss ends the walk; there is no skip-a-day leniency.
func (s *ReportService) Streak(userID uint) (int, error) {
	profile, err := s.profileFor(userID)
	if err != nil {
		return 0, err
	}

	goal := float64(profile.DailyCalorieGoal)
	low, high := goal*0.8, goal*1.2

	streak := 0
	day := dayStart(time.Now())
	for streak < maxStreakDays {
		total, err := s.DailyTotal(userID, day)
		if err != nil {
			return 0, err
		}
		if float64(total) < low || float64(total) > high {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}

type DayCalories struct {
	Date     string `json:"date"` // MM/DD for chart labels
	Calories int    `json:"calories"`
}

type Dashboard struct {
	Date              string                `json:"date"`
	Goal              int                   `json:"goal"`
	TodayCalories     int                   `json:"today_calories"`
	RemainingCalories int                   `json:"remaining_calories"`
	ProgressPercent   float64               `json:"progress_percent"`
	Entries           []models.CalorieEntry `json:"-"`
	Week              []DayCalories         `json:"week"`
}

// Dashboard gathers today's totals against the goal plus a seven-day
// series for the chart. Remaining may go negative once the goal is
// exceeded; the progress percent is capped at 100.
func (s *ReportService) Dashboard(userID uint) (*Dashboard, error) {
	profile, err := s.profileFor(userID)
	if err != nil {
		return nil, err
	}

	today := dayStart(time.Now())
	var entries []models.CalorieEntry
	if err := s.db.
		Preload("Food").
		Where("user_id = ? AND date = ?", userID, today).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	todayCalories := TotalCalories(entries)
	progress := 0.0
	if profile.DailyCalorieGoal > 0 {
		progress = float64(todayCalories) / float64(profile.DailyCalorieGoal) * 100
		if progress > 100 {
			progress = 100
		}
	}

	week := make([]DayCalories, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		total, err := s.DailyTotal(userID, day)
		if err != nil {
			return nil, err
		}
		week = append(week, DayCalories{Date: day.Format("01/02"), Calories: total})
	}

	return &Dashboard{
		Date:              today.Format("2006-01-02"),
		Goal:              profile.DailyCalorieGoal,
		TodayCalories:     todayCalories,
		RemainingCalories: profile.DailyCalorieGoal - todayCalories,
		ProgressPercent:   progress,
		Entries:           entries,
		Week:              week,
	}, nil
}

type WeekDay struct {
	Date          string                `json:"date"`
	DayName       string                `json:"day_name"`
	TotalCalories int                   `json:"total_calories"`
	Entries       []models.CalorieEntry `json:"-"`
}

type WeeklyReport struct {
	WeekStart        string    `json:"week_start"`
	WeekEnd          string    `json:"week_end"`
	Days             []WeekDay `json:"days"`
	TotalCalories    int       `json:"total_calories"`
	AvgDailyCalories float64   `json:"avg_daily_calories"`
	DailyGoal        int       `json:"daily_goal"`
	GoalDifference   float64   `json:"goal_difference"`
}

// WeeklyReport buckets the week's entries chronologically by day and
// derives the week total, the daily average and its distance from the
// goal.
func (s *ReportService) WeeklyReport(userID uint, weekStart time.Time) (*WeeklyReport, error) {
	profile, err := s.profileFor(userID)
	if err != nil {
		return nil, err
	}

	start := dayStart(weekStart)
	entries, err := s.entriesBetween(userID, start, start.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]models.CalorieEntry, 7)
	for _, e := range entries {
		key := e.Date.Format("2006-01-02")
		byDay[key] = append(byDay[key], e)
	}

	days := make([]WeekDay, 0, 7)
	weekTotal := 0
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		key := day.Format("2006-01-02")
		dayEntries := byDay[key]
		dayTotal := TotalCalories(dayEntries)
		weekTotal += dayTotal
		days = append(days, WeekDay{
			Date:          key,
			DayName:       day.Weekday().String(),
			TotalCalories: dayTotal,
			Entries:       dayEntries,
		})
	}

	avg := float64(weekTotal) / 7
	return &WeeklyReport{
		WeekStart:        start.Format("2006-01-02"),
		WeekEnd:          start.AddDate(0, 0, 6).Format("2006-01-02"),
		Days:             days,
		TotalCalories:    weekTotal,
		AvgDailyCalories: avg,
		DailyGoal:        profile.DailyCalorieGoal,
		GoalDifference:   avg - float64(profile.DailyCalorieGoal),
	}, nil
}
