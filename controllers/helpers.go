package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Dacosmicgiant/calorie-tracker/logger"
	"github.com/Dacosmicgiant/calorie-tracker/models"
	"github.com/Dacosmicgiant/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}

// respondServiceError maps service error kinds onto HTTP responses.
// Anything unexpected is logged and hidden behind a generic message.
func respondServiceError(c *gin.Context, log *logger.Logger, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		log.Error("request failed", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
	}
}

type foodResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Serving  string `json:"serving"`
	Calories int    `json:"calories"`
}

func toFoodResponse(f models.Food) foodResponse {
	return foodResponse{
		ID:       f.ID,
		Name:     f.Name,
		Serving:  f.Serving,
		Calories: f.CaloriesPerServing,
	}
}

type entryResponse struct {
	ID            uint         `json:"id"`
	Food          foodResponse `json:"food"`
	Quantity      float64      `json:"quantity"`
	Date          string       `json:"date"`
	TotalCalories int          `json:"total_calories"`
	TimeAdded     time.Time    `json:"time_added"`
}

func toEntryResponse(e models.CalorieEntry) entryResponse {
	return entryResponse{
		ID:            e.ID,
		Food:          toFoodResponse(e.Food),
		Quantity:      e.Quantity,
		Date:          e.Date.Format("2006-01-02"),
		TotalCalories: e.TotalCalories(),
		TimeAdded:     e.CreatedAt,
	}
}

func toEntryResponses(entries []models.CalorieEntry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}
