package service

import (
	"context"
	"errors"

	"text-quiz/internal/domain"
	"text-quiz/internal/dto"
	"text-quiz/internal/logger"
	"text-quiz/internal/validation"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	GenerateQuizzes(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
}

// quizService implements QuizService
type quizService struct {
	generator   domain.QuizGenerator
	credentials domain.CredentialSource
	validator   *validation.Validator
}

// NewQuizService creates a new instance of quizService
func NewQuizService(generator domain.QuizGenerator, credentials domain.CredentialSource) QuizService {
	return &quizService{
		generator:   generator,
		credentials: credentials,
		validator:   validation.NewValidator(),
	}
}

// GenerateQuizzes implements QuizService. Every failure is returned as a
// *domain.DomainError; nothing is retried.
func (s *quizService) GenerateQuizzes(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	text, err := s.validator.ValidateGenerateQuizRequest(req)
	if err != nil {
		return nil, err
	}

	apiKey, ok := s.credentials.Resolve()
	if !ok {
		logger.Get().Error("QuizService: no provider API key configured")
		return nil, domain.NewMissingAPIKeyError()
	}

	content, err := s.generator.GenerateQuizContent(ctx, apiKey, text)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		return nil, domain.NewLLMServiceError(err)
	}

	result := ParseQuizContent(content)
	if !result.OK {
		logger.Get().Warn("QuizService: model output is not JSON", zap.String("raw", content))
		return nil, domain.NewParseOutputError(content)
	}
	if len(result.Items) == 0 {
		logger.Get().Warn("QuizService: model output has no valid quiz items", zap.String("raw", content))
		return nil, domain.NewNoQuizzesError(content)
	}

	quizzes := domain.LimitQuizzes(result.Items)
	logger.Get().Info("QuizService: quizzes generated",
		zap.Int("text_length", len([]rune(text))),
		zap.Int("parsed", len(result.Items)),
		zap.Int("returned", len(quizzes)))

	return &dto.GenerateQuizResponse{Quizzes: quizzes}, nil
}
