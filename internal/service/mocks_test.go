package service

import (
	"context"

	"text-quiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockQuizGenerator is a mock implementation of domain.QuizGenerator
type MockQuizGenerator struct {
	mock.Mock
}

func (m *MockQuizGenerator) GenerateQuizContent(ctx context.Context, apiKey string, text string) (string, error) {
	args := m.Called(ctx, apiKey, text)
	return args.String(0), args.Error(1)
}

var _ domain.QuizGenerator = (*MockQuizGenerator)(nil)

// staticCredentials is a fixed domain.CredentialSource
type staticCredentials string

func (s staticCredentials) Resolve() (string, bool) {
	return string(s), s != ""
}
