package validation

import (
	"text-quiz/internal/domain"
	"text-quiz/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateQuizRequest checks the request and returns the trimmed,
// truncated text. Client-side truncation is never trusted.
func (v *Validator) ValidateGenerateQuizRequest(req *dto.GenerateQuizRequest) (string, error) {
	if req == nil || req.Text == nil {
		return "", domain.NewInvalidInputError(domain.MsgTextRequired)
	}

	text := domain.NormalizeText(*req.Text)
	if text == "" {
		return "", domain.NewInvalidInputError(domain.MsgTextEmpty)
	}

	return text, nil
}
