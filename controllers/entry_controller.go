package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Dacosmicgiant/calorie-tracker/logger"
	"github.com/Dacosmicgiant/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

type EntryController struct {
	Svc *services.EntryService
	Log *logger.Logger
}

func NewEntryController(svc *services.EntryService, log *logger.Logger) *EntryController {
	return &EntryController{Svc: svc, Log: log}
}

type EntryInput struct {
	FoodID   uint    `json:"food_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
	Date     string  `json:"date" binding:"required"` // YYYY-MM-DD
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	return t, err == nil
}

func entryIDFromParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return 0, false
	}
	return uint(id), true
}

func (e *EntryController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input EntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, ok := parseDay(input.Date)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD", "field": "date"})
		return
	}

	entry, err := e.Svc.Create(userID, input.FoodID, input.Quantity, date)
	if err != nil {
		respondServiceError(c, e.Log, err)
		return
	}
	c.JSON(http.StatusCreated, toEntryResponse(*entry))
}

func (e *EntryController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	entryID, ok := entryIDFromParam(c)
	if !ok {
		return
	}

	entry, err := e.Svc.Get(entryID, userID)
	if err != nil {
		respondServiceError(c, e.Log, err)
		return
	}
	c.JSON(http.StatusOK, toEntryResponse(*entry))
}

func (e *EntryController) Update(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	entryID, ok := entryIDFromParam(c)
	if !ok {
		return
	}

	var input EntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, ok := parseDay(input.Date)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD", "field": "date"})
		return
	}

	entry, err := e.Svc.Update(entryID, userID, input.FoodID, input.Quantity, date)
	if err != nil {
		respondServiceError(c, e.Log, err)
		return
	}
	c.JSON(http.StatusOK, toEntryResponse(*entry))
}

func (e *EntryController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	entryID, ok := entryIDFromParam(c)
	if !ok {
		return
	}

	if err := e.Svc.Delete(entryID, userID); err != nil {
		respondServiceError(c, e.Log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// History lists the full log page by page, with per-day totals for the
// entries on the current page.
func (e *EntryController) History(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	page := 1
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}

	entries, total, err := e.Svc.History(userID, page)
	if err != nil {
		respondServiceError(c, e.Log, err)
		return
	}

	dailyTotals := map[string]int{}
	for i := range entries {
		key := entries[i].Date.Format("2006-01-02")
		dailyTotals[key] += entries[i].TotalCalories()
	}

	c.JSON(http.StatusOK, gin.H{
		"entries":      toEntryResponses(entries),
		"page":         page,
		"total":        total,
		"daily_totals": dailyTotals,
	})
}
