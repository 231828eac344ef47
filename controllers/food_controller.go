package controllers

import (
	"net/http"
	"strconv"

	"github.com/Dacosmicgiant/calorie-tracker/logger"
	"github.com/Dacosmicgiant/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Svc *services.FoodService
	Log *logger.Logger
}

func NewFoodController(svc *services.FoodService, log *logger.Logger) *FoodController {
	return &FoodController{Svc: svc, Log: log}
}

// GET /food/search?q=apple
func (f *FoodController) Search(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	foods, err := f.Svc.Search(c.Query("q"), limit)
	if err != nil {
		respondServiceError(c, f.Log, err)
		return
	}

	results := make([]foodResponse, 0, len(foods))
	for _, food := range foods {
		results = append(results, toFoodResponse(food))
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

type FoodInput struct {
	Name               string `json:"name" binding:"required"`
	Serving            string `json:"serving"`
	CaloriesPerServing int    `json:"calories_per_serving" binding:"required"`
}

func (f *FoodController) Create(c *gin.Context) {
	var input FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := f.Svc.Create(input.Name, input.Serving, input.CaloriesPerServing)
	if err != nil {
		respondServiceError(c, f.Log, err)
		return
	}
	c.JSON(http.StatusCreated, toFoodResponse(*food))
}

func (f *FoodController) List(c *gin.Context) {
	foods, err := f.Svc.List()
	if err != nil {
		respondServiceError(c, f.Log, err)
		return
	}

	out := make([]foodResponse, 0, len(foods))
	for _, food := range foods {
		out = append(out, toFoodResponse(food))
	}
	c.JSON(http.StatusOK, out)
}

// Delete cascades to every entry referencing the food.
func (f *FoodController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	if err := f.Svc.Delete(uint(id)); err != nil {
		respondServiceError(c, f.Log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
