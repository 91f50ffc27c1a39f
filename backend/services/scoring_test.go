package services

import (
	"testing"

	"quizapp/backend/models"

	"github.com/stretchr/testify/assert"
)

func buildQuiz(t *testing.T, correctAnswers []int) *models.Quiz {
	t.Helper()

	quiz := &models.Quiz{
		Title:       "Sample",
		Description: "Sample quiz",
		Category:    models.DefaultCategory,
		Difficulty:  models.DifficultyMedium,
		TimeLimit:   models.DefaultTimeLimit,
	}
	for i, correct := range correctAnswers {
		question := models.Question{
			Text:          "Question",
			CorrectAnswer: correct,
			SequenceOrder: i,
		}
		assert.NoError(t, question.SetOptions([]string{"a", "b", "c", "d"}))
		quiz.Questions = append(quiz.Questions, question)
	}
	return quiz
}

func TestScoreCountsMatchingIndices(t *testing.T) {
	quiz := buildQuiz(t, []int{0, 1, 2})

	result := Score(quiz, []int{0, 1, 0})

	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.InDelta(t, 66.67, result.Percentage, 0.01)
}

func TestScorePerfectAndZero(t *testing.T) {
	quiz := buildQuiz(t, []int{1, 3, 0, 2})

	perfect := Score(quiz, []int{1, 3, 0, 2})
	assert.Equal(t, 4, perfect.Score)
	assert.Equal(t, 100.0, perfect.Percentage)

	zero := Score(quiz, []int{0, 0, 1, 1})
	assert.Equal(t, 0, zero.Score)
	assert.Equal(t, 0.0, zero.Percentage)
}

func TestScoreFullyUnansweredIsZero(t *testing.T) {
	quiz := buildQuiz(t, []int{0, 1, 2})

	result := Score(quiz, []int{models.Unanswered, models.Unanswered, models.Unanswered})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 3, result.TotalQuestions)
}

func TestScoreOutOfRangeAnswersScoreWrong(t *testing.T) {
	quiz := buildQuiz(t, []int{0, 1})

	result := Score(quiz, []int{99, -7})

	assert.Equal(t, 0, result.Score)
}

func TestScoreBounds(t *testing.T) {
	quiz := buildQuiz(t, []int{0, 1, 2, 3, 0})

	for _, answers := range [][]int{
		{0, 1, 2, 3, 0},
		{3, 2, 1, 0, 3},
		{0, 0, 0, 0, 0},
		{-1, 1, -1, 3, -1},
	} {
		result := Score(quiz, answers)
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, len(quiz.Questions))
	}
}

func TestNormalizeAnswersShortSequencePadsUnanswered(t *testing.T) {
	normalized := NormalizeAnswers([]int{2}, 3)

	assert.Equal(t, []int{2, models.Unanswered, models.Unanswered}, normalized)
}

func TestNormalizeAnswersLongSequenceTruncates(t *testing.T) {
	normalized := NormalizeAnswers([]int{0, 1, 2, 3, 4}, 2)

	assert.Equal(t, []int{0, 1}, normalized)
}

func TestScoreShortAnswerSequenceScoresRemainder(t *testing.T) {
	quiz := buildQuiz(t, []int{0, 1, 2})

	result := Score(quiz, []int{0})

	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 3, result.TotalQuestions)
}
