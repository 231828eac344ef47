package controllers

import (
	"net/http"

	"github.com/Dacosmicgiant/calorie-tracker/logger"
	"github.com/Dacosmicgiant/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Svc *services.UserService
	Log *logger.Logger
}

func NewProfileController(svc *services.UserService, log *logger.Logger) *ProfileController {
	return &ProfileController{Svc: svc, Log: log}
}

func (p *ProfileController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := p.Svc.GetProfile(userID)
	if err != nil {
		respondServiceError(c, p.Log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"daily_calorie_goal": profile.DailyCalorieGoal,
		"created_at":         profile.CreatedAt,
	})
}

type ProfileInput struct {
	DailyCalorieGoal int `json:"daily_calorie_goal" binding:"required"`
}

func (p *ProfileController) Update(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := p.Svc.UpdateGoal(userID, input.DailyCalorieGoal)
	if err != nil {
		respondServiceError(c, p.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily_calorie_goal": profile.DailyCalorieGoal})
}
