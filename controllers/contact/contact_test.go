package contactController_test

import (
	"bytes"
	"encoding/json"
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
	"steakz/models"
	contactRoutes "steakz/routers/contactRoutes"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	// No SendGrid key: the forwarding email is skipped.
	config.AppConfig = &config.Config{}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.ContactMessage{}))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	contactRoutes.SetupContactRoutes(app)
	return app, db
}

func post(t *testing.T, app *fiber.App, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req, err := http.NewRequest(http.MethodPost, "/api/contact", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestSendMessage(t *testing.T) {
	app, db := setupApp(t)

	resp, env := post(t, app, fiber.Map{
		"name":    "Ann",
		"email":   "ann@example.com",
		"message": "Do you take large groups?",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Reference string `json:"reference"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Reference)

	var stored models.ContactMessage
	require.NoError(t, db.Where("reference = ?", data.Reference).First(&stored).Error)
	assert.Equal(t, "Ann", stored.Name)
	assert.Equal(t, "Do you take large groups?", stored.Message)
}

func TestSendMessageValidation(t *testing.T) {
	app, db := setupApp(t)

	tests := []struct {
		name string
		body fiber.Map
	}{
		{"missing message", fiber.Map{"name": "Ann", "email": "ann@example.com"}},
		{"missing name", fiber.Map{"email": "ann@example.com", "message": "Hi"}},
		{"bad email", fiber.Map{"name": "Ann", "email": "not-an-email", "message": "Hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := post(t, app, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	var count int64
	db.Model(&models.ContactMessage{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
