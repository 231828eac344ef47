package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dacosmicgiant/calorie-tracker/logger"
	"github.com/Dacosmicgiant/calorie-tracker/models"
	"github.com/Dacosmicgiant/calorie-tracker/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newSearchRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Food{}, &models.CalorieEntry{}))

	log, err := logger.New("dev")
	require.NoError(t, err)

	ctl := NewFoodController(services.NewFoodService(db), log)
	r := gin.New()
	r.GET("/food/search", ctl.Search)
	return r, db
}

func TestFoodSearchJSONContract(t *testing.T) {
	r, db := newSearchRouter(t)
	require.NoError(t, db.Create(&models.Food{Name: "Apple", Serving: "1 medium (180g)", CaloriesPerServing: 95}).Error)
	require.NoError(t, db.Create(&models.Food{Name: "Orange", Serving: "1 medium", CaloriesPerServing: 47}).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/food/search?q=ap", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Results []struct {
			ID       uint   `json:"id"`
			Name     string `json:"name"`
			Serving  string `json:"serving"`
			Calories int    `json:"calories"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Results, 1)
	assert.Equal(t, "Apple", body.Results[0].Name)
	assert.Equal(t, "1 medium (180g)", body.Results[0].Serving)
	assert.Equal(t, 95, body.Results[0].Calories)
	assert.NotZero(t, body.Results[0].ID)
}

func TestFoodSearchShortQueryEmptyResults(t *testing.T) {
	r, db := newSearchRouter(t)
	require.NoError(t, db.Create(&models.Food{Name: "Apple", Serving: "1 medium", CaloriesPerServing: 95}).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/food/search?q=a", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results":[]}`, w.Body.String())
}
