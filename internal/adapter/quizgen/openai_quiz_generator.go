package quizgen

import (
	"context"
	"fmt"
	"net/http"

	"text-quiz/internal/config"
	"text-quiz/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// OpenAIQuizGenerator implements domain.QuizGenerator with the LangchainGo
// OpenAI chat-completion client.
type OpenAIQuizGenerator struct {
	model       string
	baseURL     string
	temperature float64
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewOpenAIQuizGenerator creates a new instance of OpenAIQuizGenerator.
// The API key is not part of the configuration; it is supplied per call.
func NewOpenAIQuizGenerator(cfg config.LLMConfig, httpClient *http.Client, logger *zap.Logger) (*OpenAIQuizGenerator, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("OpenAI model name cannot be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger.Info("Initializing OpenAIQuizGenerator", zap.String("model", cfg.Model), zap.String("base_url", cfg.BaseURL))
	return &OpenAIQuizGenerator{
		model:       cfg.Model,
		baseURL:     cfg.BaseURL,
		temperature: cfg.Temperature,
		httpClient:  httpClient,
		logger:      logger,
	}, nil
}

// GenerateQuizContent sends one chat completion request in JSON mode and
// returns the content of the first choice. It makes no retries.
func (g *OpenAIQuizGenerator) GenerateQuizContent(ctx context.Context, apiKey string, text string) (string, error) {
	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(g.model),
		openai.WithHTTPClient(g.httpClient),
	}
	if g.baseURL != "" {
		opts = append(opts, openai.WithBaseURL(g.baseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		g.logger.Error("Failed to create OpenAI client", zap.Error(err))
		return "", domain.NewInternalError(fmt.Errorf("failed to create OpenAI client: %w", err))
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, BuildUserPrompt(text)),
	}

	resp, err := llm.GenerateContent(ctx, messages,
		llms.WithTemperature(g.temperature),
		llms.WithJSONMode(),
	)
	if err != nil {
		g.logger.Error("OpenAI chat completion failed", zap.Error(err), zap.String("model", g.model))
		return "", domain.NewLLMServiceError(err)
	}

	content := extractContent(resp)
	g.logger.Debug("Raw model output received", zap.String("content", content))
	return content, nil
}

// extractContent reads the first choice's text, falling back to tool call
// arguments when the provider answered through a function call.
func extractContent(resp *llms.ContentResponse) string {
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return ""
	}

	choice := resp.Choices[0]
	if choice.Content != "" {
		return choice.Content
	}
	for _, call := range choice.ToolCalls {
		if call.FunctionCall != nil && call.FunctionCall.Arguments != "" {
			return call.FunctionCall.Arguments
		}
	}
	if choice.FuncCall != nil {
		return choice.FuncCall.Arguments
	}
	return ""
}

// Static assertion to ensure OpenAIQuizGenerator implements QuizGenerator
var _ domain.QuizGenerator = (*OpenAIQuizGenerator)(nil)
