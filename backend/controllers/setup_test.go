package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quizapp/backend/config"
	"quizapp/backend/routes"
	"quizapp/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecret: "testsecret",
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, utils.Migrate(db))

	app := fiber.New()
	routes.SetupRoutes(app, db, cfg)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, app *fiber.App, username, role string) string {
	t.Helper()

	resp, result := doRequest(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
		"role":     role,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := result["data"].(map[string]interface{})
	return data["token"].(string)
}

func sampleQuizInput() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Capital Cities",
		"description": "A quiz about capitals",
		"category":    "Geography",
		"difficulty":  "easy",
		"timeLimit":   10,
		"questions": []map[string]interface{}{
			{
				"questionText":  "Capital of France?",
				"options":       []string{"Paris", "Lyon", "Nice"},
				"correctAnswer": 0,
			},
			{
				"questionText":  "Capital of Japan?",
				"options":       []string{"Osaka", "Tokyo"},
				"correctAnswer": 1,
			},
			{
				"questionText":  "Capital of Australia?",
				"options":       []string{"Sydney", "Melbourne", "Canberra", "Perth"},
				"correctAnswer": 2,
			},
		},
	}
}

// createQuiz persists the sample quiz as the given admin and returns its ID.
func createQuiz(t *testing.T, app *fiber.App, adminToken string) float64 {
	t.Helper()

	resp, result := doRequest(t, app, "POST", "/api/quizzes", adminToken, sampleQuizInput())
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := result["data"].(map[string]interface{})
	return data["id"].(float64)
}
