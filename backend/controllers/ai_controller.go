package controllers

import (
	"errors"

	"quizapp/backend/config"
	"quizapp/backend/models"
	"quizapp/backend/services"
	"quizapp/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	minGeneratedQuestions = 1
	maxGeneratedQuestions = 20
)

type AIController struct {
	Cfg       *config.Config
	Generator *services.AIGenerateService
}

func NewAIController(cfg *config.Config) *AIController {
	return &AIController{
		Cfg:       cfg,
		Generator: services.NewAIGenerateService(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel),
	}
}

type GenerateInput struct {
	Topic             string `json:"topic"`
	Category          string `json:"category"`
	Difficulty        string `json:"difficulty"`
	NumberOfQuestions int    `json:"numberOfQuestions"`
}

// GenerateQuiz produces an unsaved quiz draft from the model. The draft is
// returned for review; nothing is persisted here.
func (aic *AIController) GenerateQuiz(c *fiber.Ctx) error {
	var input GenerateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Topic == "" {
		return utils.BadRequest(c, "Please provide a topic")
	}
	if !models.ValidCategory(input.Category) {
		return utils.BadRequest(c, "Invalid category")
	}
	if !models.ValidDifficulty(input.Difficulty) {
		return utils.BadRequest(c, "Invalid difficulty")
	}
	if input.NumberOfQuestions < minGeneratedQuestions || input.NumberOfQuestions > maxGeneratedQuestions {
		return utils.BadRequest(c, "Number of questions must be between 1 and 20")
	}

	draft, err := aic.Generator.Generate(input.Topic, input.Category, input.Difficulty, input.NumberOfQuestions)
	if err != nil {
		if errors.Is(err, services.ErrAINotConfigured) {
			return utils.Fail(c, fiber.StatusServiceUnavailable, err.Error())
		}
		return utils.InternalServerError(c, "Quiz generation failed: "+err.Error())
	}

	return utils.Success(c, fiber.StatusOK, draft)
}

// GetAIStatus reports whether generation is available without making any
// network call, so clients can disable the feature up front.
func (aic *AIController) GetAIStatus(c *fiber.Ctx) error {
	if !aic.Generator.Enabled() {
		return utils.Success(c, fiber.StatusOK, fiber.Map{
			"enabled": false,
			"message": "AI generation is not configured; set GROQ_API_KEY to enable it",
		})
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"enabled": true,
	})
}
