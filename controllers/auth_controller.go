package controllers

import (
	"errors"
	"net/http"

	"github.com/Dacosmicgiant/calorie-tracker/logger"
	"github.com/Dacosmicgiant/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc *services.AuthService
	Log *logger.Logger
}

func NewAuthController(svc *services.AuthService, log *logger.Logger) *AuthController {
	return &AuthController{Svc: svc, Log: log}
}

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
}

func (a *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := a.Svc.Register(input.Username, input.Password, input.Email)
	if err != nil {
		respondServiceError(c, a.Log, err)
		return
	}

	a.Log.Info("user registered", "userID", user.ID, "username", user.Username)
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "username": user.Username})
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := a.Svc.Authenticate(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		respondServiceError(c, a.Log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
