package quizgen

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"text-quiz/internal/config"
	"text-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

type capturedRequest struct {
	path  string
	auth  string
	body  string
	calls int
}

func newProviderServer(t *testing.T, status int, response string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured.calls++
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")
		captured.body = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func chatCompletion(content string) string {
	payload := map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
		"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 10, "total_tokens": 20},
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

func newTestGenerator(t *testing.T, baseURL string) *OpenAIQuizGenerator {
	t.Helper()
	gen, err := NewOpenAIQuizGenerator(config.LLMConfig{
		Model:       "gpt-4o-mini",
		BaseURL:     baseURL,
		Temperature: 0.7,
	}, nil, zap.NewNop())
	require.NoError(t, err)
	return gen
}

func TestNewOpenAIQuizGenerator(t *testing.T) {
	gen, err := NewOpenAIQuizGenerator(config.LLMConfig{Model: "gpt-4o-mini"}, nil, nil)
	assert.NoError(t, err)
	assert.NotNil(t, gen)

	_, err = NewOpenAIQuizGenerator(config.LLMConfig{}, nil, zap.NewNop())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "model name cannot be empty")
}

func TestOpenAIQuizGenerator_GenerateQuizContent_Success(t *testing.T) {
	modelOutput := `{"quizzes":[{"question":"Q1","answer":"A1"}]}`
	server, captured := newProviderServer(t, http.StatusOK, chatCompletion(modelOutput))
	gen := newTestGenerator(t, server.URL)

	content, err := gen.GenerateQuizContent(context.Background(), "sk-test", "Plants make sugar from light.")
	require.NoError(t, err)
	assert.Equal(t, modelOutput, content)

	assert.Equal(t, 1, captured.calls)
	assert.True(t, strings.HasSuffix(captured.path, "/chat/completions"), captured.path)
	assert.Equal(t, "Bearer sk-test", captured.auth)
	assert.Contains(t, captured.body, `"model":"gpt-4o-mini"`)
	assert.Contains(t, captured.body, `"temperature":0.7`)
	assert.Contains(t, captured.body, `json_object`)
	assert.Contains(t, captured.body, `"role":"system"`)
	assert.Contains(t, captured.body, `"role":"user"`)
	assert.Contains(t, captured.body, "Plants make sugar from light.")
}

func TestOpenAIQuizGenerator_GenerateQuizContent_ProviderError(t *testing.T) {
	server, captured := newProviderServer(t, http.StatusUnauthorized,
		`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`)
	gen := newTestGenerator(t, server.URL)

	content, err := gen.GenerateQuizContent(context.Background(), "sk-bad", "text")
	assert.Empty(t, content)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeLLMServiceError, domainErr.Code)
	assert.Equal(t, domain.MsgLLMServiceError, domainErr.Message)
	assert.Contains(t, domainErr.Details, "401")
	assert.Equal(t, 1, captured.calls, "provider errors are not retried")
}

func TestExtractContent(t *testing.T) {
	t.Run("nil and empty responses", func(t *testing.T) {
		assert.Equal(t, "", extractContent(nil))
		assert.Equal(t, "", extractContent(&llms.ContentResponse{}))
	})

	t.Run("content wins", func(t *testing.T) {
		resp := &llms.ContentResponse{Choices: []*llms.ContentChoice{{
			Content:  "primary",
			FuncCall: &llms.FunctionCall{Name: "f", Arguments: "secondary"},
		}}}
		assert.Equal(t, "primary", extractContent(resp))
	})

	t.Run("tool call arguments fallback", func(t *testing.T) {
		resp := &llms.ContentResponse{Choices: []*llms.ContentChoice{{
			ToolCalls: []llms.ToolCall{{
				ID:           "call_1",
				Type:         "function",
				FunctionCall: &llms.FunctionCall{Name: "emit_quizzes", Arguments: `{"quizzes":[]}`},
			}},
		}}}
		assert.Equal(t, `{"quizzes":[]}`, extractContent(resp))
	})

	t.Run("legacy function call fallback", func(t *testing.T) {
		resp := &llms.ContentResponse{Choices: []*llms.ContentChoice{{
			FuncCall: &llms.FunctionCall{Name: "emit_quizzes", Arguments: `[1]`},
		}}}
		assert.Equal(t, `[1]`, extractContent(resp))
	})
}

func TestBuildUserPrompt(t *testing.T) {
	prompt := BuildUserPrompt("光合成の説明文")
	assert.Contains(t, prompt, "光合成の説明文")
	assert.Contains(t, prompt, `"quizzes"`)
	assert.Contains(t, prompt, `"question"`)
	assert.Contains(t, prompt, `"answer"`)
	assert.Contains(t, prompt, "5")
	assert.Contains(t, systemPrompt, "JSON")
}
