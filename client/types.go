package client

import "time"

type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Question struct {
	ID           uint     `json:"id"`
	QuestionText string   `json:"questionText"`
	Options      []string `json:"options"`

	// Present only when the server includes the answer key (admin fetch of a
	// single quiz).
	CorrectAnswer *int `json:"correctAnswer,omitempty"`
}

type QuizCreator struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type Quiz struct {
	ID          uint        `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Difficulty  string      `json:"difficulty"`
	TimeLimit   int         `json:"timeLimit"`
	CreatedBy   QuizCreator `json:"createdBy"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Questions   []Question  `json:"questions"`
}

type QuestionInput struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type QuizInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	Difficulty  string          `json:"difficulty,omitempty"`
	TimeLimit   int             `json:"timeLimit,omitempty"`
	Questions   []QuestionInput `json:"questions,omitempty"`
}

type SubmissionQuiz struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Submission struct {
	ID             uint            `json:"id"`
	UserID         uint            `json:"userId"`
	QuizID         uint            `json:"quizId"`
	Answers        []int           `json:"answers"`
	Score          int             `json:"score"`
	TotalQuestions int             `json:"totalQuestions"`
	SubmittedAt    time.Time       `json:"submittedAt"`
	Quiz           *SubmissionQuiz `json:"quiz,omitempty"`
}

type SubmitResult struct {
	Score          int        `json:"score"`
	TotalQuestions int        `json:"totalQuestions"`
	Percentage     float64    `json:"percentage"`
	Submission     Submission `json:"submission"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type GenerateRequest struct {
	Topic             string `json:"topic"`
	Category          string `json:"category"`
	Difficulty        string `json:"difficulty"`
	NumberOfQuestions int    `json:"numberOfQuestions"`
}

type QuizDraft struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Difficulty  string          `json:"difficulty"`
	TimeLimit   int             `json:"timeLimit"`
	Questions   []QuestionInput `json:"questions"`
}

type AIStatus struct {
	Enabled bool   `json:"enabled"`
	Message string `json:"message,omitempty"`
}

type UpdateUserRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password,omitempty"`
}
