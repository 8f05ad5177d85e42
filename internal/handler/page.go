package handler

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"unicode/utf8"

	"text-quiz/internal/domain"
	"text-quiz/internal/dto"
	"text-quiz/internal/form"
	"text-quiz/internal/logger"
	"text-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Form actions posted by the page.
const (
	ActionLoad     = "load"
	ActionGenerate = "generate"
	ActionClear    = "clear"
)

// PageHandler serves the quiz form. Each request drives a fresh
// form.Controller, the page itself carries the state between requests.
type PageHandler struct {
	generator form.Generator
}

// NewPageHandler creates a page handler that generates through svc in-process.
func NewPageHandler(svc service.QuizService) *PageHandler {
	return &PageHandler{generator: serviceGenerator{svc: svc}}
}

type pageData struct {
	form.State
	TextLength int
	MaxLength  int
}

// Index renders the empty form.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	return h.render(c, form.NewController(h.generator).Snapshot())
}

// Submit applies one form action and renders the resulting state.
func (h *PageHandler) Submit(c *fiber.Ctx) error {
	ctrl := form.NewController(h.generator)
	ctrl.Edit(c.FormValue("text"))

	switch c.FormValue("action") {
	case ActionClear:
		ctrl.Clear()
	case ActionLoad:
		fileHeader, err := c.FormFile("file")
		if err != nil {
			ctrl.LoadFile(func() (io.ReadCloser, error) { return nil, err })
			break
		}
		ctrl.LoadFile(func() (io.ReadCloser, error) { return fileHeader.Open() })
	default:
		ctrl.Generate(c.UserContext())
	}

	return h.render(c, ctrl.Snapshot())
}

func (h *PageHandler) render(c *fiber.Ctx, state form.State) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, pageData{
		State:      state,
		TextLength: utf8.RuneCountInString(state.Text),
		MaxLength:  domain.MaxTextLength,
	}); err != nil {
		logger.Get().Error("Failed to render page", zap.Error(err))
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// serviceGenerator adapts the quiz service to form.Generator.
type serviceGenerator struct {
	svc service.QuizService
}

func (g serviceGenerator) GenerateQuizzes(ctx context.Context, text string) ([]domain.QuizItem, error) {
	resp, err := g.svc.GenerateQuizzes(ctx, &dto.GenerateQuizRequest{Text: &text})
	if err != nil {
		return nil, err
	}
	return resp.Quizzes, nil
}
