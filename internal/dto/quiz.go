package dto

import "text-quiz/internal/domain"

// GenerateQuizRequest is the body of POST /api/quiz
// @Description Source text for quiz generation (max 1000 characters)
type GenerateQuizRequest struct {
	// Text is a pointer so an absent field can be told apart from "".
	Text *string `json:"text" example:"光合成は植物が光エネルギーを使って..."`
}

// GenerateQuizResponse is returned on success with 1 to 5 items
// @Description Generated question/answer pairs
type GenerateQuizResponse struct {
	Quizzes []domain.QuizItem `json:"quizzes"`
}

// ErrorResponse represents an error in the API response
// @Description Error payload. details carries provider diagnostics, raw the unparsed model output.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Raw     string `json:"raw,omitempty"`
}
