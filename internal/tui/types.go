package tui

import (
	"text-quiz/internal/domain"
	"text-quiz/internal/form"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

// which widget receives key input
type focusArea int

const (
	focusEditor focusArea = iota
	focusPath
)

// main TUI model
type Model struct {
	controller *form.Controller
	generator  form.Generator
	editor     textarea.Model
	pathInput  textinput.Model
	spinner    spinner.Model
	focus      focusArea
	width      int
	height     int
}

// sent when a generation request completes
type QuizzesGeneratedMsg struct {
	items []domain.QuizItem
	err   error
}
