package service

import (
	"context"
	"errors"
	"os"
	"time"

	"text-quiz/internal/domain"
	"text-quiz/internal/dto"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds in-flight provider calls of a batch run.
const DefaultBatchConcurrency = 2

// MsgFileReadFailed is reported for inputs whose file could not be read.
const MsgFileReadFailed = "failed to read file"

// BatchInput is one named text to generate quizzes for. An input with
// ReadErr set is reported as failed without a generation request.
type BatchInput struct {
	Name    string
	Text    string
	ReadErr error
}

// ReadBatchInputs reads every path into a BatchInput, in order. Unreadable
// files keep their slot with ReadErr set.
func ReadBatchInputs(paths []string) []BatchInput {
	inputs := make([]BatchInput, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			inputs = append(inputs, BatchInput{Name: path, ReadErr: err})
			continue
		}
		inputs = append(inputs, BatchInput{Name: path, Text: string(data)})
	}
	return inputs
}

// BatchResult is the outcome for one BatchInput. Exactly one of Quizzes and
// Error is set.
type BatchResult struct {
	Name    string             `json:"name"`
	Quizzes []domain.QuizItem  `json:"quizzes,omitempty"`
	Error   *dto.ErrorResponse `json:"error,omitempty"`
}

// BatchService runs quiz generation over many texts.
type BatchService interface {
	GenerateAll(ctx context.Context, inputs []BatchInput) []BatchResult
}

type batchService struct {
	quizService QuizService
	concurrency int
	logger      *zap.Logger
}

// NewBatchService creates a new instance of batchService.
func NewBatchService(quizService QuizService, concurrency int, logger *zap.Logger) BatchService {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &batchService{
		quizService: quizService,
		concurrency: concurrency,
		logger:      logger,
	}
}

// GenerateAll generates quizzes for every input, one request each. A failed
// input is recorded in its result and does not stop the others. Results keep
// the order of inputs.
func (s *batchService) GenerateAll(ctx context.Context, inputs []BatchInput) []BatchResult {
	s.logger.Info("Starting batch quiz generation", zap.Int("inputs", len(inputs)), zap.Time("start_time", time.Now()))

	results := make([]BatchResult, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, input := range inputs {
		g.Go(func() error {
			results[i] = s.generateOne(gctx, input)
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("Batch quiz generation completed", zap.Time("end_time", time.Now()))
	return results
}

func (s *batchService) generateOne(ctx context.Context, input BatchInput) BatchResult {
	if input.ReadErr != nil {
		s.logger.Error("Failed to read input", zap.String("name", input.Name), zap.Error(input.ReadErr))
		return BatchResult{Name: input.Name, Error: &dto.ErrorResponse{Error: MsgFileReadFailed, Details: input.ReadErr.Error()}}
	}

	text := input.Text
	resp, err := s.quizService.GenerateQuizzes(ctx, &dto.GenerateQuizRequest{Text: &text})
	if err != nil {
		s.logger.Error("Failed to generate quizzes for input", zap.String("name", input.Name), zap.Error(err))
		return BatchResult{Name: input.Name, Error: errorResponse(err)}
	}

	s.logger.Info("Generated quizzes for input", zap.String("name", input.Name), zap.Int("count", len(resp.Quizzes)))
	return BatchResult{Name: input.Name, Quizzes: resp.Quizzes}
}

func errorResponse(err error) *dto.ErrorResponse {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return &dto.ErrorResponse{Error: domainErr.Message, Details: domainErr.Details, Raw: domainErr.Raw}
	}
	return &dto.ErrorResponse{Error: domain.MsgUnexpected, Details: err.Error()}
}
