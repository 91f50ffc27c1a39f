package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validQuiz(t *testing.T) Quiz {
	t.Helper()

	question := Question{Text: "What is 2+2?", CorrectAnswer: 1}
	assert.NoError(t, question.SetOptions([]string{"3", "4", "5"}))

	return Quiz{
		Title:       "Arithmetic",
		Description: "Basic arithmetic",
		Category:    "Mathematics",
		Difficulty:  DifficultyEasy,
		TimeLimit:   DefaultTimeLimit,
		Questions:   []Question{question},
	}
}

func TestValidateAcceptsValidQuiz(t *testing.T) {
	quiz := validQuiz(t)
	assert.NoError(t, quiz.Validate())
}

func TestValidateRejectsEmptyQuestions(t *testing.T) {
	quiz := validQuiz(t)
	quiz.Questions = nil
	assert.ErrorContains(t, quiz.Validate(), "at least one question")
}

func TestValidateRejectsOptionCountOutOfBounds(t *testing.T) {
	quiz := validQuiz(t)
	assert.NoError(t, quiz.Questions[0].SetOptions([]string{"only one"}))
	assert.ErrorContains(t, quiz.Validate(), "between 2 and 6 options")

	assert.NoError(t, quiz.Questions[0].SetOptions([]string{"a", "b", "c", "d", "e", "f", "g"}))
	assert.ErrorContains(t, quiz.Validate(), "between 2 and 6 options")
}

func TestValidateRejectsCorrectAnswerOutOfBounds(t *testing.T) {
	quiz := validQuiz(t)
	quiz.Questions[0].CorrectAnswer = 3
	assert.ErrorContains(t, quiz.Validate(), "out of option bounds")

	quiz.Questions[0].CorrectAnswer = -1
	assert.ErrorContains(t, quiz.Validate(), "out of option bounds")
}

func TestValidateRejectsUnknownCategoryAndDifficulty(t *testing.T) {
	quiz := validQuiz(t)
	quiz.Category = "Cooking"
	assert.ErrorContains(t, quiz.Validate(), "invalid category")

	quiz = validQuiz(t)
	quiz.Difficulty = "impossible"
	assert.ErrorContains(t, quiz.Validate(), "invalid difficulty")
}

func TestCategoriesListIsClosed(t *testing.T) {
	assert.Len(t, Categories, 11)
	assert.True(t, ValidCategory("General Knowledge"))
	assert.True(t, ValidCategory("Other"))
	assert.False(t, ValidCategory("general knowledge")) // case sensitive
	assert.False(t, ValidCategory(""))
}

func TestQuestionOptionsRoundTrip(t *testing.T) {
	var question Question
	options := []string{"alpha", "beta", "gamma"}
	assert.NoError(t, question.SetOptions(options))
	assert.Equal(t, options, question.OptionList())
}

func TestSubmissionAnswersRoundTrip(t *testing.T) {
	var submission Submission
	answers := []int{0, Unanswered, 2}
	assert.NoError(t, submission.SetAnswers(answers))
	assert.Equal(t, answers, submission.AnswerList())
}
