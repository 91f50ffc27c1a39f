package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	DefaultTimeLimit = 30 // minutes

	MinOptions = 2
	MaxOptions = 6
)

type Quiz struct {
	gorm.Model
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"not null" json:"description"`
	Category    string     `gorm:"not null;default:'General Knowledge'" json:"category"`
	Difficulty  string     `gorm:"default:medium" json:"difficulty"` // easy, medium, hard
	TimeLimit   int        `gorm:"default:30" json:"timeLimit"`      // minutes
	CreatedBy   uint       `gorm:"not null" json:"createdBy"`
	Questions   []Question `gorm:"constraint:OnDelete:CASCADE" json:"questions"`
}

type Question struct {
	gorm.Model
	QuizID        uint   `json:"-"`
	Text          string `gorm:"not null" json:"questionText"`
	Options       string `gorm:"not null" json:"-"` // JSON array of option strings
	CorrectAnswer int    `json:"correctAnswer"`     // index into Options
	SequenceOrder int    `json:"-"`
}

func (q *Question) OptionList() []string {
	var options []string
	json.Unmarshal([]byte(q.Options), &options)
	return options
}

func (q *Question) SetOptions(options []string) error {
	data, err := json.Marshal(options)
	if err != nil {
		return err
	}
	q.Options = string(data)
	return nil
}

func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Validate checks the quiz invariants enforced on every write: at least one
// question, 2-6 options per question, correct index within option bounds,
// category and difficulty from the closed lists.
func (q *Quiz) Validate() error {
	if q.Title == "" {
		return errors.New("quiz title is required")
	}
	if q.Description == "" {
		return errors.New("quiz description is required")
	}
	if !ValidCategory(q.Category) {
		return fmt.Errorf("invalid category %q", q.Category)
	}
	if !ValidDifficulty(q.Difficulty) {
		return fmt.Errorf("invalid difficulty %q", q.Difficulty)
	}
	if q.TimeLimit <= 0 {
		return errors.New("time limit must be positive")
	}
	if len(q.Questions) == 0 {
		return errors.New("quiz must have at least one question")
	}
	for i := range q.Questions {
		if err := q.Questions[i].validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

func (q *Question) validate() error {
	if q.Text == "" {
		return errors.New("question text is required")
	}
	options := q.OptionList()
	if len(options) < MinOptions || len(options) > MaxOptions {
		return fmt.Errorf("must have between %d and %d options", MinOptions, MaxOptions)
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(options) {
		return errors.New("correct answer index out of option bounds")
	}
	return nil
}
