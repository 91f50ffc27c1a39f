package services

import (
	"time"

	"quizapp/backend/models"

	"gorm.io/gorm"
)

// ScoreResult is what a graded attempt reports back to the caller.
type ScoreResult struct {
	Score          int     `json:"score"`
	TotalQuestions int     `json:"totalQuestions"`
	Percentage     float64 `json:"percentage"`
}

type ScoringService struct {
	DB *gorm.DB
}

func NewScoringService(db *gorm.DB) *ScoringService {
	return &ScoringService{DB: db}
}

// NormalizeAnswers fits the submitted answer sequence to the question count:
// extra answers are dropped, missing slots become models.Unanswered. A
// mismatched length is never an error.
func NormalizeAnswers(answers []int, questionCount int) []int {
	normalized := make([]int, questionCount)
	for i := range normalized {
		if i < len(answers) {
			normalized[i] = answers[i]
		} else {
			normalized[i] = models.Unanswered
		}
	}
	return normalized
}

// Score grades an answer sequence against the quiz's stored correct indices.
// Comparison is index-based only: an out-of-range answer value never equals a
// valid correct index and silently scores as wrong.
func Score(quiz *models.Quiz, answers []int) ScoreResult {
	total := len(quiz.Questions)
	normalized := NormalizeAnswers(answers, total)

	score := 0
	for i, question := range quiz.Questions {
		if normalized[i] == question.CorrectAnswer {
			score++
		}
	}

	percentage := 0.0
	if total > 0 {
		percentage = float64(score) / float64(total) * 100
	}

	return ScoreResult{
		Score:          score,
		TotalQuestions: total,
		Percentage:     percentage,
	}
}

// Submit grades the attempt and persists the submission record. A submission
// is written on every call, including fully unanswered attempts.
func (s *ScoringService) Submit(userID uint, quiz *models.Quiz, answers []int) (ScoreResult, *models.Submission, error) {
	result := Score(quiz, answers)

	submission := models.Submission{
		UserID:         userID,
		QuizID:         quiz.ID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		SubmittedAt:    time.Now(),
	}
	if err := submission.SetAnswers(NormalizeAnswers(answers, result.TotalQuestions)); err != nil {
		return result, nil, err
	}

	if err := s.DB.Create(&submission).Error; err != nil {
		return result, nil, err
	}

	return result, &submission, nil
}
