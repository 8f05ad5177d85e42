package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"text-quiz/internal/domain"
	"text-quiz/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func quizzesJSON(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"question":"Q%d","answer":"A%d"}`, i+1, i+1)
	}
	return `{"quizzes":[` + strings.Join(parts, ",") + `]}`
}

func requireDomainError(t *testing.T, err error, code domain.ErrorCode) *domain.DomainError {
	t.Helper()
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
	return domainErr
}

func TestQuizService_GenerateQuizzes(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip of five items", func(t *testing.T) {
		gen := new(MockQuizGenerator)
		gen.On("GenerateQuizContent", ctx, "sk-test", "本文").Return(quizzesJSON(5), nil).Once()
		svc := NewQuizService(gen, staticCredentials("sk-test"))

		resp, err := svc.GenerateQuizzes(ctx, &dto.GenerateQuizRequest{Text: strPtr("  本文  ")})
		require.NoError(t, err)
		require.Len(t, resp.Quizzes, 5)
		for i, item := range resp.Quizzes {
			assert.Equal(t, fmt.Sprintf("Q%d", i+1), item.Question)
			assert.Equal(t, fmt.Sprintf("A%d", i+1), item.Answer)
		}
		gen.AssertExpectations(t)
	})

	t.Run("more than five items are truncated", func(t *testing.T) {
		gen := new(MockQuizGenerator)
		gen.On("GenerateQuizContent", ctx, "sk-test", "text").Return(quizzesJSON(8), nil)
		svc := NewQuizService(gen, staticCredentials("sk-test"))

		resp, err := svc.GenerateQuizzes(ctx, &dto.GenerateQuizRequest{Text: strPtr("text")})
		require.NoError(t, err)
		require.Len(t, resp.Quizzes, domain.MaxQuizzes)
		assert.Equal(t, "Q5", resp.Quizzes[4].Question)
	})

	t.Run("long text is truncated before the provider call", func(t *testing.T) {
		long := strings.Repeat("字", domain.MaxTextLength+50)
		want := strings.Repeat("字", domain.MaxTextLength)

		gen := new(MockQuizGenerator)
		gen.On("GenerateQuizContent", ctx, "sk-test", want).Return(quizzesJSON(1), nil).Once()
		svc := NewQuizService(gen, staticCredentials("sk-test"))

		_, err := svc.GenerateQuizzes(ctx, &dto.GenerateQuizRequest{Text: &long})
		require.NoError(t, err)
		gen.AssertExpectations(t)
	})

	t.Run("missing text", func(t *testing.T) {
		gen := new(MockQuizGenerator)
		svc := NewQuizService(gen, staticCredentials("sk-test"))

		_, err := svc.GenerateQuizzes(ctx, &dto.GenerateQuizRequest{})
		domainErr := requireDomainError(t, err, domain.CodeInvalidInput)
		assert.Equal(t, domain.MsgTextRequired, domainErr.Message)
		gen.AssertNotCalled(t, "GenerateQuizContent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blank text", func(t *testing.T) {
		gen := new(MockQuizGenerator)
		svc := NewQuizService(gen, staticCredentials("sk-test"))

		_, err := svc.GenerateQuizzes(ctx, &dto.GenerateQuizRequest{Text: strPtr("   ")})
		domainErr := requireDomainError(t, err, domain.CodeInvalidInput)
		assert.Equal(t, domain.MsgTextEmpty, domainErr.Message)
		gen.AssertNotCalled(t, "GenerateQuizContent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing credential never calls the provider", func(t *testing.T) {
		gen := new(MockQuizGenerator)
		svc := NewQuizService(gen, staticCredentials(""))

		_, err := svc.GenerateQuizzes(ctx, &dto.GenerateQuizRequest{Text: strPtr("text")})
		domainErr := requireDomainError(t, err, domain.CodeMissingAPIKey)
		assert.Equal(t, domain.MsgMissingAPIKey, domainErr.Message)
		gen.AssertNotCalled(t, "GenerateQuizContent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("provider domain error is passed through", func(t *testing.T) {
		providerErr := domain.NewLLMServiceError(errors.New("API returned unexpected status code: 500"))
		gen := new(MockQuizGenerator)
		gen.On("GenerateQuizContent", ctx, "sk-test", "text").Return("", providerErr).Once()
		svc := NewQuizService(gen, staticCredentials("sk-test"))

		_, err := svc.GenerateQuizzes(ctx, &dto.GenerateQuizRequest{Text: strPtr("text")})
		domainErr := requireDomainError(t, err, domain.CodeLLMServiceError)
		assert.Contains(t, domainErr.Details, "500")
		gen.AssertNumberOfCalls(t, "GenerateQuizContent", 1)
	})

	t.Run("plain provider error is wrapped", func(t *testing.T) {
		gen := new(MockQuizGenerator)
		gen.On("GenerateQuizContent", ctx, "sk-test", "text").Return("", errors.New("connection refused"))
		svc := NewQuizService(gen, staticCredentials("sk-test"))

		_, err := svc.GenerateQuizzes(ctx, &dto.GenerateQuizRequest{Text: strPtr("text")})
		domainErr := requireDomainError(t, err, domain.CodeLLMServiceError)
		assert.Equal(t, domain.MsgLLMServiceError, domainErr.Message)
		assert.Equal(t, "connection refused", domainErr.Details)
	})

	t.Run("unparseable output carries raw content", func(t *testing.T) {
		gen := new(MockQuizGenerator)
		gen.On("GenerateQuizContent", ctx, "sk-test", "text").Return("I cannot help with that.", nil)
		svc := NewQuizService(gen, staticCredentials("sk-test"))

		_, err := svc.GenerateQuizzes(ctx, &dto.GenerateQuizRequest{Text: strPtr("text")})
		domainErr := requireDomainError(t, err, domain.CodeLLMOutputError)
		assert.Equal(t, domain.MsgParseFailed, domainErr.Message)
		assert.Equal(t, "I cannot help with that.", domainErr.Raw)
	})

	t.Run("zero valid items is a failure", func(t *testing.T) {
		raw := `{"quizzes":[{"question":1,"answer":"A"}]}`
		gen := new(MockQuizGenerator)
		gen.On("GenerateQuizContent", ctx, "sk-test", "text").Return(raw, nil)
		svc := NewQuizService(gen, staticCredentials("sk-test"))

		resp, err := svc.GenerateQuizzes(ctx, &dto.GenerateQuizRequest{Text: strPtr("text")})
		assert.Nil(t, resp)
		domainErr := requireDomainError(t, err, domain.CodeNoQuizzes)
		assert.Equal(t, domain.MsgNoQuizzes, domainErr.Message)
		assert.Equal(t, raw, domainErr.Raw)
	})
}
