package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"text-quiz/internal/domain"
	"text-quiz/internal/dto"
)

// APIError is a non-2xx response from the quiz endpoint.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	if e.Details != "" {
		return fmt.Sprintf("%s (status %d): %s", e.Message, e.Status, e.Details)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Client calls POST /api/quiz on a quiz server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL. A zero timeout keeps the
// transport default.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GenerateQuizzes sends text to the server once and returns the generated
// items. A success body without a quizzes array yields an empty list.
func (c *Client) GenerateQuizzes(ctx context.Context, text string) ([]domain.QuizItem, error) {
	payload, err := json.Marshal(dto.GenerateQuizRequest{Text: &text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/quiz", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errResp dto.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil {
			apiErr.Message = errResp.Error
			apiErr.Details = errResp.Details
		}
		return nil, apiErr
	}

	var result struct {
		Quizzes json.RawMessage `json:"quizzes"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	var quizzes []domain.QuizItem
	if len(result.Quizzes) > 0 {
		// A quizzes value of the wrong shape is treated as absent.
		_ = json.Unmarshal(result.Quizzes, &quizzes)
	}
	return quizzes, nil
}
