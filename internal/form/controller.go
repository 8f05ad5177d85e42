// Package form holds the state of the quiz form shared by the web page and
// the terminal UI.
package form

import (
	"context"
	"errors"
	"io"
	"sync"

	"text-quiz/internal/client"
	"text-quiz/internal/domain"
)

// User-facing messages.
const (
	MsgFileReadFailed   = "ファイルの読み込みに失敗しました。"
	MsgTextRequired     = "テキストを入力してください。"
	MsgGenerationFailed = "クイズの生成に失敗しました。"
)

// Generator produces quiz items for a normalized text.
type Generator interface {
	GenerateQuizzes(ctx context.Context, text string) ([]domain.QuizItem, error)
}

// FileSource opens the file selected by the user.
type FileSource func() (io.ReadCloser, error)

// State is a copy of the form state for rendering.
type State struct {
	Text    string
	Quizzes []domain.QuizItem
	Loading bool
	Err     string
}

// Controller owns the transient form state. All methods are safe for
// concurrent use; at most one generation is in flight at a time.
type Controller struct {
	mu        sync.Mutex
	generator Generator
	text      string
	quizzes   []domain.QuizItem
	loading   bool
	err       string
}

func NewController(generator Generator) *Controller {
	return &Controller{generator: generator}
}

// LoadFile replaces the text with the first MaxTextLength characters of the
// file. On failure the previous text is kept and an error is shown.
func (c *Controller) LoadFile(open FileSource) {
	content, err := readAll(open)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.err = MsgFileReadFailed
		return
	}
	c.text = domain.TruncateText(content)
}

func readAll(open FileSource) (string, error) {
	f, err := open()
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Edit replaces the text, enforcing the length cap.
func (c *Controller) Edit(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = domain.TruncateText(text)
}

// Generate runs one generation synchronously. It is BeginGenerate, a single
// Generator call and FinishGenerate, with the finish step deferred so the
// loading flag is always cleared.
func (c *Controller) Generate(ctx context.Context) {
	text, ok := c.BeginGenerate()
	if !ok {
		return
	}

	var (
		items []domain.QuizItem
		err   error
	)
	defer func() { c.FinishGenerate(items, err) }()
	items, err = c.generator.GenerateQuizzes(ctx, text)
}

// BeginGenerate validates the text and marks the form as loading. It returns
// false, without side effects on loading, when a generation is already in
// flight or the text is blank.
func (c *Controller) BeginGenerate() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loading {
		return "", false
	}
	text := domain.NormalizeText(c.text)
	if text == "" {
		c.err = MsgTextRequired
		return "", false
	}

	c.loading = true
	c.err = ""
	c.quizzes = nil
	return text, true
}

// FinishGenerate records the outcome of a generation and clears loading.
func (c *Controller) FinishGenerate(items []domain.QuizItem, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loading = false
	if err != nil {
		c.err = errorMessage(err)
		return
	}
	c.quizzes = append([]domain.QuizItem(nil), domain.LimitQuizzes(items)...)
}

func errorMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return MsgGenerationFailed
	}
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) && domainErr.Message != "" {
		return domainErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgGenerationFailed
}

// Clear resets text, results and error in one step.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = ""
	c.quizzes = nil
	c.err = ""
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Text:    c.text,
		Quizzes: append([]domain.QuizItem(nil), c.quizzes...),
		Loading: c.loading,
		Err:     c.err,
	}
}
