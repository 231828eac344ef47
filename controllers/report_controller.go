package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Dacosmicgiant/calorie-tracker/logger"
	"github.com/Dacosmicgiant/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Svc *services.ReportService
	Log *logger.Logger
}

func NewReportController(svc *services.ReportService, log *logger.Logger) *ReportController {
	return &ReportController{Svc: svc, Log: log}
}

// GET /reports/dashboard
func (r *ReportController) Dashboard(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	dash, err := r.Svc.Dashboard(userID)
	if err != nil {
		respondServiceError(c, r.Log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":               dash.Date,
		"goal":               dash.Goal,
		"today_calories":     dash.TodayCalories,
		"remaining_calories": dash.RemainingCalories,
		"progress_percent":   dash.ProgressPercent,
		"entries":            toEntryResponses(dash.Entries),
		"week":               dash.Week,
	})
}

// GET /reports/daily?date=YYYY-MM-DD (defaults to today)
func (r *ReportController) Daily(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	day := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, ok := parseDay(v)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	total, err := r.Svc.DailyTotal(userID, day)
	if err != nil {
		respondServiceError(c, r.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": day.Format("2006-01-02"), "total_calories": total})
}

// GET /reports/weekly?week_start=YYYY-MM-DD (defaults to Monday of the
// current week)
func (r *ReportController) Weekly(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	weekStart := services.StartOfWeek(time.Now())
	if v := c.Query("week_start"); v != "" {
		parsed, ok := parseDay(v)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week_start"})
			return
		}
		weekStart = parsed
	}

	report, err := r.Svc.WeeklyReport(userID, weekStart)
	if err != nil {
		respondServiceError(c, r.Log, err)
		return
	}

	days := make([]gin.H, 0, len(report.Days))
	for _, d := range report.Days {
		days = append(days, gin.H{
			"date":           d.Date,
			"day_name":       d.DayName,
			"total_calories": d.TotalCalories,
			"entries":        toEntryResponses(d.Entries),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"week_start":         report.WeekStart,
		"week_end":           report.WeekEnd,
		"days":               days,
		"total_calories":     report.TotalCalories,
		"avg_daily_calories": report.AvgDailyCalories,
		"daily_goal":         report.DailyGoal,
		"goal_difference":    report.GoalDifference,
	})
}

// GET /reports/monthly?year=2025&month=8 (defaults to the current month)
func (r *ReportController) Monthly(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = n
	}
	if v := c.Query("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return
		}
		month = n
	}

	total, err := r.Svc.MonthlyTotal(userID, year, time.Month(month))
	if err != nil {
		respondServiceError(c, r.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "total_calories": total})
}

// GET /reports/streak
func (r *ReportController) Streak(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	streak, err := r.Svc.Streak(userID)
	if err != nil {
		respondServiceError(c, r.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"streak": streak})
}
