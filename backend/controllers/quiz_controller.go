package controllers

import (
	"errors"
	"net/url"
	"strconv"

	"quizapp/backend/config"
	"quizapp/backend/middleware"
	"quizapp/backend/models"
	"quizapp/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type QuizController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewQuizController(db *gorm.DB, cfg *config.Config) *QuizController {
	return &QuizController{DB: db, Cfg: cfg}
}

type QuestionInput struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
}

type QuizInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Difficulty  string          `json:"difficulty"`
	TimeLimit   int             `json:"timeLimit"`
	Questions   []QuestionInput `json:"questions"`
}

func preloadQuestions(db *gorm.DB) *gorm.DB {
	return db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence_order")
	})
}

// serializeQuestion renders a question for the API. The correct-answer index
// is stripped unless includeAnswer is set.
func serializeQuestion(q *models.Question, includeAnswer bool) fiber.Map {
	item := fiber.Map{
		"id":           q.ID,
		"questionText": q.Text,
		"options":      q.OptionList(),
	}
	if includeAnswer {
		item["correctAnswer"] = q.CorrectAnswer
	}
	return item
}

func (qc *QuizController) serializeQuiz(quiz *models.Quiz, includeAnswers bool) fiber.Map {
	questions := make([]fiber.Map, 0, len(quiz.Questions))
	for i := range quiz.Questions {
		questions = append(questions, serializeQuestion(&quiz.Questions[i], includeAnswers))
	}

	createdBy := fiber.Map{"id": quiz.CreatedBy}
	var creator models.User
	if err := qc.DB.First(&creator, quiz.CreatedBy).Error; err == nil {
		createdBy["username"] = creator.Username
	}

	return fiber.Map{
		"id":          quiz.ID,
		"title":       quiz.Title,
		"description": quiz.Description,
		"category":    quiz.Category,
		"difficulty":  quiz.Difficulty,
		"timeLimit":   quiz.TimeLimit,
		"createdBy":   createdBy,
		"createdAt":   quiz.CreatedAt,
		"updatedAt":   quiz.UpdatedAt,
		"questions":   questions,
	}
}

// GetAllQuizzes lists every quiz. Correct answers are stripped for every
// caller on this browse surface, admins included.
func (qc *QuizController) GetAllQuizzes(c *fiber.Ctx) error {
	var quizzes []models.Quiz
	if err := preloadQuestions(qc.DB).Find(&quizzes).Error; err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	result := make([]fiber.Map, 0, len(quizzes))
	for i := range quizzes {
		result = append(result, qc.serializeQuiz(&quizzes[i], false))
	}

	return utils.SuccessWithCount(c, fiber.StatusOK, result, len(result))
}

// GetQuiz returns a single quiz. Correct answers are visible only to admins;
// visibility is role-gated, not ownership-gated, so any admin sees any quiz's
// answers.
func (qc *QuizController) GetQuiz(c *fiber.Ctx) error {
	quizID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid quiz ID")
	}

	var quiz models.Quiz
	if err := preloadQuestions(qc.DB).First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Quiz not found")
		}
		return utils.InternalServerError(c, err.Error())
	}

	user := middleware.CurrentUser(c)
	includeAnswers := user != nil && user.IsAdmin()

	return utils.Success(c, fiber.StatusOK, qc.serializeQuiz(&quiz, includeAnswers))
}

func buildQuestions(inputs []QuestionInput) ([]models.Question, error) {
	questions := make([]models.Question, 0, len(inputs))
	for i, in := range inputs {
		if in.CorrectAnswer == nil {
			return nil, errors.New("correct answer index is required for every question")
		}
		question := models.Question{
			Text:          in.QuestionText,
			CorrectAnswer: *in.CorrectAnswer,
			SequenceOrder: i,
		}
		if err := question.SetOptions(in.Options); err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, nil
}

// CreateQuiz persists a new quiz. Admin only.
func (qc *QuizController) CreateQuiz(c *fiber.Ctx) error {
	var input QuizInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Title == "" || input.Description == "" || len(input.Questions) == 0 {
		return utils.BadRequest(c, "Please provide all required fields")
	}

	quiz := models.Quiz{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Difficulty:  input.Difficulty,
		TimeLimit:   input.TimeLimit,
		CreatedBy:   middleware.CurrentUser(c).ID,
	}
	if quiz.Category == "" {
		quiz.Category = models.DefaultCategory
	}
	if quiz.Difficulty == "" {
		quiz.Difficulty = models.DifficultyMedium
	}
	if quiz.TimeLimit == 0 {
		quiz.TimeLimit = models.DefaultTimeLimit
	}

	questions, err := buildQuestions(input.Questions)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	quiz.Questions = questions

	if err := quiz.Validate(); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	if err := qc.DB.Create(&quiz).Error; err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	return utils.Success(c, fiber.StatusCreated, qc.serializeQuiz(&quiz, true))
}

// UpdateQuiz replaces any subset of fields wholesale; no field-level diffing.
// Providing questions replaces the entire question set. Invariants are
// re-validated on every write.
func (qc *QuizController) UpdateQuiz(c *fiber.Ctx) error {
	quizID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid quiz ID")
	}

	var quiz models.Quiz
	if err := preloadQuestions(qc.DB).First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Quiz not found")
		}
		return utils.InternalServerError(c, err.Error())
	}

	var input QuizInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Title != "" {
		quiz.Title = input.Title
	}
	if input.Description != "" {
		quiz.Description = input.Description
	}
	if input.Category != "" {
		quiz.Category = input.Category
	}
	if input.Difficulty != "" {
		quiz.Difficulty = input.Difficulty
	}
	if input.TimeLimit != 0 {
		quiz.TimeLimit = input.TimeLimit
	}

	replaceQuestions := input.Questions != nil
	if replaceQuestions {
		questions, err := buildQuestions(input.Questions)
		if err != nil {
			return utils.BadRequest(c, err.Error())
		}
		for i := range questions {
			questions[i].QuizID = quiz.ID
		}
		quiz.Questions = questions
	}

	if err := quiz.Validate(); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	err = qc.DB.Transaction(func(tx *gorm.DB) error {
		if replaceQuestions {
			if err := tx.Unscoped().Where("quiz_id = ?", quiz.ID).Delete(&models.Question{}).Error; err != nil {
				return err
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&quiz).Error
	})
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	return utils.Success(c, fiber.StatusOK, qc.serializeQuiz(&quiz, true))
}

// DeleteQuiz removes a quiz and its questions. Admin only.
func (qc *QuizController) DeleteQuiz(c *fiber.Ctx) error {
	quizID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid quiz ID")
	}

	var quiz models.Quiz
	if err := qc.DB.First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Quiz not found")
		}
		return utils.InternalServerError(c, err.Error())
	}

	err = qc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("quiz_id = ?", quiz.ID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&quiz).Error
	})
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	return utils.Message(c, fiber.StatusOK, "Quiz deleted successfully")
}

// GetCategories returns the fixed category list with per-category quiz
// counts, computed with a single grouped query. Categories with no quizzes
// report zero.
func (qc *QuizController) GetCategories(c *fiber.Ctx) error {
	var rows []struct {
		Category string
		Count    int
	}
	if err := qc.DB.Model(&models.Quiz{}).
		Select("category, count(*) as count").
		Group("category").
		Scan(&rows).Error; err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}

	result := make([]fiber.Map, 0, len(models.Categories))
	for _, name := range models.Categories {
		result = append(result, fiber.Map{
			"name":  name,
			"count": counts[name],
		})
	}

	return utils.Success(c, fiber.StatusOK, result)
}

// GetQuizzesByCategory lists quizzes in one category, newest first, answers
// stripped.
func (qc *QuizController) GetQuizzesByCategory(c *fiber.Ctx) error {
	category, err := url.PathUnescape(c.Params("category"))
	if err != nil {
		return utils.BadRequest(c, "Invalid category")
	}

	var quizzes []models.Quiz
	if err := preloadQuestions(qc.DB).
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	result := make([]fiber.Map, 0, len(quizzes))
	for i := range quizzes {
		result = append(result, qc.serializeQuiz(&quizzes[i], false))
	}

	return utils.SuccessWithCount(c, fiber.StatusOK, result, len(result))
}
