package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"quizapp/backend/models"
)

// ErrAINotConfigured is returned when no API key is set.
var ErrAINotConfigured = errors.New("AI generation is not configured")

// QuizDraft has the same shape as a creatable quiz but is never persisted by
// the adapter; the client reviews it and creates the quiz explicitly.
type QuizDraft struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Difficulty  string          `json:"difficulty"`
	TimeLimit   int             `json:"timeLimit"`
	Questions   []QuestionDraft `json:"questions"`
}

type QuestionDraft struct {
	Text          string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type AIGenerateService struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
}

func NewAIGenerateService(apiKey, baseURL, model string) *AIGenerateService {
	return &AIGenerateService{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
	}
}

// Enabled reports whether the API key is configured. No network call is made,
// so clients can check before offering the generation feature.
func (s *AIGenerateService) Enabled() bool {
	return s.apiKey != ""
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const systemPrompt = `You are a quiz generator. You must respond with ONLY valid JSON (no markdown, no code fences, no explanations) in the following format:

{
  "title": "Quiz title",
  "description": "One or two sentence description of the quiz",
  "questions": [
    {
      "questionText": "Question text?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": 0
    }
  ]
}

Rules:
- Each question must have between 2 and 6 options
- "correctAnswer" is the zero-based index of the correct option
- Make questions factually accurate and unambiguous
- Return ONLY the JSON object, nothing else`

// Generate asks the model for a quiz draft. Single attempt: any transport
// failure, non-2xx status, or malformed model output fails the generation.
func (s *AIGenerateService) Generate(topic, category, difficulty string, questionCount int) (*QuizDraft, error) {
	if !s.Enabled() {
		return nil, ErrAINotConfigured
	}

	userPrompt := fmt.Sprintf(
		"Generate a quiz about %q in the category %q with difficulty %q. It must contain exactly %d multiple-choice questions.",
		topic, category, difficulty, questionCount,
	)

	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("AI request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read AI response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AI API returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}

	if chatResp.Error != nil {
		return nil, fmt.Errorf("AI API error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return nil, errors.New("empty response from AI")
	}

	content := cleanJSONContent(chatResp.Choices[0].Message.Content)

	var draft QuizDraft
	if err := json.Unmarshal([]byte(content), &draft); err != nil {
		return nil, fmt.Errorf("AI returned invalid JSON: %w", err)
	}

	draft.Category = category
	draft.Difficulty = difficulty
	draft.TimeLimit = models.DefaultTimeLimit

	if err := validateDraft(&draft); err != nil {
		return nil, fmt.Errorf("AI returned a malformed quiz: %w", err)
	}

	return &draft, nil
}

// cleanJSONContent strips markdown code fences some models wrap around their
// output despite being told not to.
func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}

// validateDraft rejects model output that does not satisfy the quiz
// invariants. Untrusted output never reaches the store unvalidated.
func validateDraft(draft *QuizDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return errors.New("missing title")
	}
	if strings.TrimSpace(draft.Description) == "" {
		return errors.New("missing description")
	}
	if len(draft.Questions) == 0 {
		return errors.New("no questions")
	}
	for i, q := range draft.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("question %d: missing text", i+1)
		}
		if len(q.Options) < models.MinOptions || len(q.Options) > models.MaxOptions {
			return fmt.Errorf("question %d: must have between %d and %d options", i+1, models.MinOptions, models.MaxOptions)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return fmt.Errorf("question %d: correct answer index out of bounds", i+1)
		}
	}
	return nil
}
