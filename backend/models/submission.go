package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Unanswered marks a question slot the user never answered.
const Unanswered = -1

// Submission is an immutable record of one graded quiz attempt. There are no
// update or delete routes for submissions.
type Submission struct {
	gorm.Model
	UserID         uint      `gorm:"not null;index" json:"userId"`
	QuizID         uint      `gorm:"not null;index" json:"quizId"`
	Answers        string    `gorm:"not null" json:"-"` // JSON array of answer indices
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"totalQuestions"`
	SubmittedAt    time.Time `gorm:"not null" json:"submittedAt"`
}

func (s *Submission) AnswerList() []int {
	var answers []int
	json.Unmarshal([]byte(s.Answers), &answers)
	return answers
}

func (s *Submission) SetAnswers(answers []int) error {
	data, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	s.Answers = string(data)
	return nil
}
