package tui

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"text-quiz/internal/form"

	tea "github.com/charmbracelet/bubbletea"
)

var errEmptyPath = errors.New("file path is empty")

// runs one generation request off the UI goroutine
func generateQuizzes(generator form.Generator, text string) tea.Cmd {
	return func() tea.Msg {
		items, err := generator.GenerateQuizzes(context.Background(), text)
		return QuizzesGeneratedMsg{items: items, err: err}
	}
}

func openFile(path string) form.FileSource {
	return func() (io.ReadCloser, error) {
		path = strings.TrimSpace(path)
		if path == "" {
			return nil, errEmptyPath
		}
		return os.Open(path)
	}
}
