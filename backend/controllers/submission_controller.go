package controllers

import (
	"errors"
	"strconv"

	"quizapp/backend/config"
	"quizapp/backend/middleware"
	"quizapp/backend/models"
	"quizapp/backend/services"
	"quizapp/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SubmissionController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Scoring *services.ScoringService
}

func NewSubmissionController(db *gorm.DB, cfg *config.Config) *SubmissionController {
	return &SubmissionController{
		DB:      db,
		Cfg:     cfg,
		Scoring: services.NewScoringService(db),
	}
}

type SubmitInput struct {
	// Pointer so a missing answers field is distinguishable from an empty one.
	Answers *[]int `json:"answers"`
}

func serializeSubmission(s *models.Submission) fiber.Map {
	return fiber.Map{
		"id":             s.ID,
		"userId":         s.UserID,
		"quizId":         s.QuizID,
		"answers":        s.AnswerList(),
		"score":          s.Score,
		"totalQuestions": s.TotalQuestions,
		"submittedAt":    s.SubmittedAt,
	}
}

// SubmitQuiz grades the caller's answers against the quiz and persists the
// submission. A submission is recorded even when nothing was answered.
func (sc *SubmissionController) SubmitQuiz(c *fiber.Ctx) error {
	quizID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid quiz ID")
	}

	var quiz models.Quiz
	if err := preloadQuestions(sc.DB).First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Quiz not found")
		}
		return utils.InternalServerError(c, err.Error())
	}

	var input SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Please provide answers")
	}
	if input.Answers == nil {
		return utils.BadRequest(c, "Please provide answers")
	}

	user := middleware.CurrentUser(c)
	result, submission, err := sc.Scoring.Submit(user.ID, &quiz, *input.Answers)
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"score":          result.Score,
		"totalQuestions": result.TotalQuestions,
		"percentage":     result.Percentage,
		"submission":     serializeSubmission(submission),
	})
}

// GetUserSubmissions lists the caller's own submissions, newest first, with
// quiz title and description attached.
func (sc *SubmissionController) GetUserSubmissions(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var submissions []models.Submission
	if err := sc.DB.Where("user_id = ?", user.ID).
		Order("submitted_at DESC").
		Find(&submissions).Error; err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	result := make([]fiber.Map, 0, len(submissions))
	for i := range submissions {
		item := serializeSubmission(&submissions[i])

		// A deleted quiz leaves the submission orphaned; report it without
		// quiz metadata rather than failing the whole list.
		var quiz models.Quiz
		if err := sc.DB.First(&quiz, submissions[i].QuizID).Error; err == nil {
			item["quiz"] = fiber.Map{
				"id":          quiz.ID,
				"title":       quiz.Title,
				"description": quiz.Description,
			}
		}

		result = append(result, item)
	}

	return utils.SuccessWithCount(c, fiber.StatusOK, result, len(result))
}
