// Package client is a typed HTTP client for the quiz API. Configuration is
// explicit: the base URL and token live in a Config passed to New, never in
// package-level state, and reconfiguration returns a new client.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "http://127.0.0.1:8080"
	defaultHTTPTimeout = 15 * time.Second
)

// ErrServerUnavailable wraps transport-level failures so callers can tell
// "server down" apart from API errors.
var ErrServerUnavailable = errors.New("quiz server unavailable")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

type Config struct {
	BaseURL     string
	Token       string
	HTTPTimeout time.Duration
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(cfg Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	return &Client{
		baseURL:    baseURL,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithToken returns a new client authenticated with the given token. The
// receiver is not modified.
func (c *Client) WithToken(token string) *Client {
	derived := *c
	derived.token = token
	return &derived
}

// BaseURL reports the configured server address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	if decodeErr := json.NewDecoder(resp.Body).Decode(&env); decodeErr != nil {
		if resp.StatusCode >= 400 {
			return &APIError{StatusCode: resp.StatusCode}
		}
		return fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

// Register creates an account. An empty role defaults to "user" server-side.
func (c *Client) Register(ctx context.Context, username, email, password, role string) (*AuthResult, error) {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	if role != "" {
		body["role"] = role
	}

	var result AuthResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result AuthResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) UpdateUser(ctx context.Context, id uint, req UpdateUserRequest) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/auth/users/%d", id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id uint) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/auth/users/%d", id), nil, nil)
}

// Quizzes lists every quiz. Correct answers are never included.
func (c *Client) Quizzes(ctx context.Context) ([]Quiz, error) {
	var quizzes []Quiz
	if err := c.doJSON(ctx, http.MethodGet, "/api/quizzes", nil, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

// Quiz fetches one quiz. Questions carry CorrectAnswer only when the
// authenticated user is an admin.
func (c *Client) Quiz(ctx context.Context, id uint) (*Quiz, error) {
	var quiz Quiz
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/quizzes/%d", id), nil, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *Client) Categories(ctx context.Context) ([]CategoryCount, error) {
	var categories []CategoryCount
	if err := c.doJSON(ctx, http.MethodGet, "/api/quizzes/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) QuizzesByCategory(ctx context.Context, category string) ([]Quiz, error) {
	path := "/api/quizzes/category/" + url.PathEscape(category)

	var quizzes []Quiz
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (c *Client) CreateQuiz(ctx context.Context, input QuizInput) (*Quiz, error) {
	var quiz Quiz
	if err := c.doJSON(ctx, http.MethodPost, "/api/quizzes", input, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *Client) UpdateQuiz(ctx context.Context, id uint, input QuizInput) (*Quiz, error) {
	var quiz Quiz
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/quizzes/%d", id), input, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *Client) DeleteQuiz(ctx context.Context, id uint) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/quizzes/%d", id), nil, nil)
}

// Submit sends the answer sequence for grading. Unanswered slots should be -1.
func (c *Client) Submit(ctx context.Context, quizID uint, answers []int) (*SubmitResult, error) {
	body := map[string][]int{"answers": answers}

	var result SubmitResult
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/api/quizzes/%d/submit", quizID), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Submissions lists the caller's own submissions, newest first.
func (c *Client) Submissions(ctx context.Context) ([]Submission, error) {
	var submissions []Submission
	if err := c.doJSON(ctx, http.MethodGet, "/api/quizzes/submissions", nil, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// GenerateQuiz requests an AI-produced draft. The draft is not persisted;
// review it and call CreateQuiz to save.
func (c *Client) GenerateQuiz(ctx context.Context, req GenerateRequest) (*QuizDraft, error) {
	var draft QuizDraft
	if err := c.doJSON(ctx, http.MethodPost, "/api/quizzes/generate/ai", req, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (c *Client) AIStatus(ctx context.Context) (*AIStatus, error) {
	var status AIStatus
	if err := c.doJSON(ctx, http.MethodGet, "/api/quizzes/ai/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
