package reviewController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"steakz/config"
	"steakz/database"
	"steakz/middleware"
	"steakz/models"
	reviewRoutes "steakz/routers/reviewRoutes"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Comment{}))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	reviewRoutes.SetupReviewRoutes(app)
	return app, db
}

func adminToken(t *testing.T, db *gorm.DB) string {
	t.Helper()

	admin := models.User{Username: "root", Password: "not-used-here", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)

	token, err := middleware.GenerateJWT(admin.ID, models.RoleAdmin)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestSubmitAndModerate(t *testing.T) {
	app, db := setupApp(t)
	token := adminToken(t, db)

	// Anyone may submit; the review starts hidden.
	resp, env := doJSON(t, app, http.MethodPost, "/api/reviews", "", fiber.Map{
		"content":  "Best ribeye in town.",
		"userName": "Ann",
		"stars":    5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var submitted models.Comment
	require.NoError(t, json.Unmarshal(env.Data, &submitted))
	assert.False(t, submitted.Approved)

	// The public listing stays empty until approval.
	resp, env = doJSON(t, app, http.MethodGet, "/api/reviews", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var public []models.Comment
	require.NoError(t, json.Unmarshal(env.Data, &public))
	assert.Empty(t, public)

	// The moderation queue sees it.
	resp, env = doJSON(t, app, http.MethodGet, "/api/reviews/pending", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var pending []models.Comment
	require.NoError(t, json.Unmarshal(env.Data, &pending))
	require.Len(t, pending, 1)

	resp, _ = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/reviews/%d/approve", submitted.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = doJSON(t, app, http.MethodGet, "/api/reviews", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &public))
	require.Len(t, public, 1)
	assert.Equal(t, "Best ribeye in town.", public[0].Content)
}

func TestSubmitValidation(t *testing.T) {
	app, db := setupApp(t)

	tests := []struct {
		name string
		body fiber.Map
	}{
		{"missing content", fiber.Map{"userName": "Ann", "stars": 3}},
		{"missing name", fiber.Map{"content": "Fine.", "stars": 3}},
		{"stars too low", fiber.Map{"content": "Bad.", "userName": "Ann", "stars": 0}},
		{"stars too high", fiber.Map{"content": "Great.", "userName": "Ann", "stars": 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doJSON(t, app, http.MethodPost, "/api/reviews", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	var count int64
	db.Model(&models.Comment{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestModerationRequiresAdmin(t *testing.T) {
	app, db := setupApp(t)

	manager := models.User{Username: "shift-manager", Password: "not-used-here", Role: models.RoleManager}
	require.NoError(t, db.Create(&manager).Error)
	managerToken, err := middleware.GenerateJWT(manager.ID, models.RoleManager)
	require.NoError(t, err)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/reviews/pending", managerToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/reviews/pending", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDeleteReview(t *testing.T) {
	app, db := setupApp(t)
	token := adminToken(t, db)

	review := models.Comment{Content: "Spam.", UserName: "Bot", Stars: 1}
	require.NoError(t, db.Create(&review).Error)

	resp, _ := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", review.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&models.Comment{}).Count(&count)
	assert.EqualValues(t, 0, count)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", review.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
