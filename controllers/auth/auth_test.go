package authController_test

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
	"steakz/middleware"
	"steakz/models"
	authRoutes "steakz/routers/authRoutes"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:           "test-secret",
		SaltRound:        4,
		ReservationSlots: []string{"13:00", "19:00"},
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Reservation{},
		&models.Order{},
		&models.Comment{},
		&models.ContactMessage{},
		&models.DailyReport{},
	))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app, db
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

func TestSignupAndDuplicateUsername(t *testing.T) {
	app, db := setupApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "alice", created.User.Username)
	assert.Equal(t, models.RoleUser, created.User.Role, "role defaults to USER")
	assert.NotEmpty(t, created.Token)

	// Second signup with the same username fails and leaves the first
	// record untouched.
	resp, _ = doJSON(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"username": "alice",
		"password": "other-password",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	db.Model(&models.User{}).Where("username = ?", "alice").Count(&count)
	assert.EqualValues(t, 1, count)

	var stored models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&stored).Error)
	assert.Equal(t, created.User.ID, stored.ID)
}

func TestSignupRejectsInvalidRole(t *testing.T) {
	app, db := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"username": "bob",
		"password": "secret123",
		"role":     "OWNER",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestSignupAcceptsExplicitRole(t *testing.T) {
	app, _ := setupApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"username": "carol",
		"password": "secret123",
		"role":     models.RoleManager,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, models.RoleManager, created.User.Role)
}

func TestLogin(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"username": "dave",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": "dave",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.NotEmpty(t, login.Token)

	resp, _ = doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": "dave",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": "nobody",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMe(t *testing.T) {
	app, db := setupApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"username": "erin",
		"password": "secret123",
	})

	var created struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	resp, env := doJSON(t, app, http.MethodGet, "/auth/me", created.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "erin", me.User.Username)

	// No token at all.
	resp, _ = doJSON(t, app, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Deleting the account invalidates the still-unexpired token.
	require.NoError(t, db.Unscoped().Delete(&models.User{}, created.User.ID).Error)
	resp, _ = doJSON(t, app, http.MethodGet, "/auth/me", created.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTokenRoundTrip(t *testing.T) {
	setupApp(t)

	token, err := middleware.GenerateJWT(42, models.RoleCashier)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// A token signed with a different secret is rejected.
	app := fiber.New()
	app.Get("/protected", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"userId": c.Locals("userId"),
			"role":   c.Locals("role"),
		})
	})

	resp, env := doJSON(t, app, http.MethodGet, "/protected", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var claims struct {
		UserID uint   `json:"userId"`
		Role   string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &claims))
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, models.RoleCashier, claims.Role)

	config.AppConfig.JWTKey = "rotated-secret"
	resp, _ = doJSON(t, app, http.MethodGet, "/protected", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
