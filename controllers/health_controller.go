package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Dacosmicgiant/calorie-tracker/utils"

	"github.com/gin-gonic/gin"
)

// HealthController serves the calculator endpoints; they are pure
// computation, no storage behind them.
type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// GET /health/bmi?weight_kg=80&height_cm=180
func (h *HealthController) BMI(c *gin.Context) {
	weight, err := strconv.ParseFloat(c.Query("weight_kg"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weight_kg"})
		return
	}
	height, err := strconv.ParseFloat(c.Query("height_cm"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid height_cm"})
		return
	}

	bmi, ok := utils.CalculateBMI(weight, height)
	if !ok {
		// undefined, not an error
		c.JSON(http.StatusOK, gin.H{"bmi": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bmi": bmi, "category": utils.BMICategory(bmi)})
}

type RecommendationInput struct {
	Age           int     `json:"age" binding:"required,gt=0"`
	Gender        string  `json:"gender" binding:"required"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
	WeightKg      float64 `json:"weight_kg" binding:"required,gt=0"`
	HeightCm      float64 `json:"height_cm" binding:"required,gt=0"`
}

// POST /health/recommendation
func (h *HealthController) Recommendation(c *gin.Context) {
	var input RecommendationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g := strings.ToLower(input.Gender)
	if g != "male" && g != "female" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "must be male or female", "field": "gender"})
		return
	}

	calories := utils.RecommendedDailyCalories(input.Age, g, input.ActivityLevel, input.WeightKg, input.HeightCm)
	c.JSON(http.StatusOK, gin.H{"recommended_daily_calories": calories})
}
