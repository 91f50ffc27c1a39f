package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	app := newTestApp(t, newTestConfig())

	resp, result := doRequest(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := result["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "user", user["role"])
	assert.NotContains(t, user, "password_hash")

	resp, result = doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, result["data"].(map[string]interface{})["token"])
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	app := newTestApp(t, newTestConfig())

	resp, _ := doRequest(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": "bob",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	app := newTestApp(t, newTestConfig())
	registerUser(t, app, "carol", "user")

	resp, _ := doRequest(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": "carol2",
		"email":    "carol@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := newTestApp(t, newTestConfig())
	registerUser(t, app, "dave", "user")

	resp, result := doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "dave@example.com",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, result["success"])
}

func TestGetMeRequiresToken(t *testing.T) {
	app := newTestApp(t, newTestConfig())

	resp, _ := doRequest(t, app, "GET", "/api/auth/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token := registerUser(t, app, "erin", "user")
	resp, result := doRequest(t, app, "GET", "/api/auth/me", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "erin", result["data"].(map[string]interface{})["username"])
}

func TestUserManagementIsAdminOnly(t *testing.T) {
	app := newTestApp(t, newTestConfig())
	userToken := registerUser(t, app, "frank", "user")
	adminToken := registerUser(t, app, "grace", "admin")

	resp, _ := doRequest(t, app, "GET", "/api/auth/users", userToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, result := doRequest(t, app, "GET", "/api/auth/users", adminToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), result["count"].(float64))
}

func TestAdminCanUpdateAndDeleteUser(t *testing.T) {
	app := newTestApp(t, newTestConfig())
	registerUser(t, app, "henry", "user")
	adminToken := registerUser(t, app, "iris", "admin")

	resp, result := doRequest(t, app, "PUT", "/api/auth/users/1", adminToken, map[string]string{
		"role": "admin",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin", result["data"].(map[string]interface{})["role"])

	resp, _ = doRequest(t, app, "DELETE", "/api/auth/users/1", adminToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, "DELETE", "/api/auth/users/1", adminToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
