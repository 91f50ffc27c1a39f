package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSubmitQuizScoresAndPersists(t *testing.T) {
	app := newTestApp(t, newTestConfig())
	adminToken := registerUser(t, app, "quizmaster", "admin")
	userToken := registerUser(t, app, "player", "user")
	createQuiz(t, app, adminToken) // correct answers: 0, 1, 2

	resp, result := doRequest(t, app, "POST", "/api/quizzes/1/submit", userToken, map[string]interface{}{
		"answers": []int{0, 1, 0},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := result["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["score"])
	assert.Equal(t, float64(3), data["totalQuestions"])
	assert.InDelta(t, 66.67, data["percentage"].(float64), 0.01)

	submission := data["submission"].(map[string]interface{})
	assert.Equal(t, float64(1), submission["quizId"])
	assert.Equal(t, []interface{}{float64(0), float64(1), float64(0)}, submission["answers"])
	assert.NotEmpty(t, submission["submittedAt"])
}

func TestSubmitQuizFullyUnansweredScoresZeroAndPersists(t *testing.T) {
	app := newTestApp(t, newTestConfig())
	adminToken := registerUser(t, app, "quizmaster2", "admin")
	userToken := registerUser(t, app, "player2", "user")
	createQuiz(t, app, adminToken)

	resp, result := doRequest(t, app, "POST", "/api/quizzes/1/submit", userToken, map[string]interface{}{
		"answers": []int{-1, -1, -1},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := result["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["score"])

	// The submission is on record despite nothing being answered.
	_, listResult := doRequest(t, app, "GET", "/api/quizzes/submissions", userToken, nil)
	assert.Equal(t, float64(1), listResult["count"].(float64))
}

func TestSubmitQuizRequiresAnswersArray(t *testing.T) {
	app := newTestApp(t, newTestConfig())
	adminToken := registerUser(t, app, "quizmaster3", "admin")
	userToken := registerUser(t, app, "player3", "user")
	createQuiz(t, app, adminToken)

	// Missing answers field.
	resp, _ := doRequest(t, app, "POST", "/api/quizzes/1/submit", userToken, map[string]interface{}{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Not an array.
	resp, _ = doRequest(t, app, "POST", "/api/quizzes/1/submit", userToken, map[string]interface{}{
		"answers": "0,1,2",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Nothing was persisted.
	_, listResult := doRequest(t, app, "GET", "/api/quizzes/submissions", userToken, nil)
	assert.Equal(t, float64(0), listResult["count"].(float64))
}

func TestSubmitQuizNotFound(t *testing.T) {
	app := newTestApp(t, newTestConfig())
	userToken := registerUser(t, app, "player4", "user")

	resp, _ := doRequest(t, app, "POST", "/api/quizzes/999/submit", userToken, map[string]interface{}{
		"answers": []int{0},
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSubmitQuizNormalizesShortSequence(t *testing.T) {
	app := newTestApp(t, newTestConfig())
	adminToken := registerUser(t, app, "quizmaster4", "admin")
	userToken := registerUser(t, app, "player5", "user")
	createQuiz(t, app, adminToken)

	resp, result := doRequest(t, app, "POST", "/api/quizzes/1/submit", userToken, map[string]interface{}{
		"answers": []int{0},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := result["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["score"])

	// Stored answers are padded to the question count with -1.
	submission := data["submission"].(map[string]interface{})
	assert.Equal(t, []interface{}{float64(0), float64(-1), float64(-1)}, submission["answers"])
}

func TestGetUserSubmissionsNewestFirstAndOwnOnly(t *testing.T) {
	app := newTestApp(t, newTestConfig())
	adminToken := registerUser(t, app, "quizmaster5", "admin")
	aliceToken := registerUser(t, app, "alice5", "user")
	bobToken := registerUser(t, app, "bob5", "user")
	createQuiz(t, app, adminToken)

	doRequest(t, app, "POST", "/api/quizzes/1/submit", aliceToken, map[string]interface{}{"answers": []int{0, 1, 2}})
	doRequest(t, app, "POST", "/api/quizzes/1/submit", aliceToken, map[string]interface{}{"answers": []int{0, 0, 0}})
	doRequest(t, app, "POST", "/api/quizzes/1/submit", bobToken, map[string]interface{}{"answers": []int{0, 1, 0}})

	_, result := doRequest(t, app, "GET", "/api/quizzes/submissions", aliceToken, nil)
	assert.Equal(t, float64(2), result["count"].(float64))

	submissions := result["data"].([]interface{})
	first := submissions[0].(map[string]interface{})
	second := submissions[1].(map[string]interface{})
	// Newest first: the 1/3 attempt came after the perfect one.
	assert.Equal(t, float64(1), first["score"])
	assert.Equal(t, float64(3), second["score"])

	// Quiz metadata is attached.
	assert.Equal(t, "Capital Cities", first["quiz"].(map[string]interface{})["title"])
}
