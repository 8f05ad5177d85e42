package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"text-quiz/internal/domain"
	"text-quiz/internal/form"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NewModel returns a quiz form backed by generator.
func NewModel(generator form.Generator) *Model {
	ta := textarea.New()
	ta.Placeholder = "ここにテキストを入力してください"
	ta.CharLimit = domain.MaxTextLength
	ta.ShowLineNumbers = false
	ta.SetWidth(80)
	ta.SetHeight(8)
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = "path/to/file.txt"
	ti.Prompt = "ファイル: "
	ti.PromptStyle = labelStyle
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = loadingStyle

	return &Model{
		controller: form.NewController(generator),
		generator:  generator,
		editor:     ta,
		pathInput:  ti,
		spinner:    sp,
		focus:      focusEditor,
	}
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+g":
			return m, m.startGeneration()

		case "ctrl+l":
			m.controller.Clear()
			m.editor.Reset()
			return m, nil

		case "ctrl+o":
			m.controller.LoadFile(openFile(m.pathInput.Value()))
			m.editor.SetValue(m.controller.Snapshot().Text)
			return m, nil

		case "tab":
			m.toggleFocus()
			return m, nil
		}

	case QuizzesGeneratedMsg:
		m.controller.FinishGenerate(msg.items, msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.controller.Snapshot().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Width > 4 {
			m.editor.SetWidth(msg.Width - 4)
			m.pathInput.Width = max(msg.Width-16, 10)
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

// startGeneration is a no-op while a request is in flight or the text is blank.
func (m *Model) startGeneration() tea.Cmd {
	m.controller.Edit(m.editor.Value())
	text, ok := m.controller.BeginGenerate()
	if !ok {
		return nil
	}
	return tea.Batch(m.spinner.Tick, generateQuizzes(m.generator, text))
}

func (m *Model) toggleFocus() {
	if m.focus == focusEditor {
		m.focus = focusPath
		m.editor.Blur()
		m.pathInput.Focus()
		return
	}
	m.focus = focusEditor
	m.pathInput.Blur()
	m.editor.Focus()
}

func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusPath {
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}

	m.editor, cmd = m.editor.Update(msg)
	m.controller.Edit(m.editor.Value())
	return m, cmd
}

func (m *Model) View() string {
	state := m.controller.Snapshot()
	var b strings.Builder

	b.WriteString(titleStyle.Render("テキストからクイズを作成"))
	b.WriteString("\n")
	b.WriteString(m.pathInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.editor.View())
	b.WriteString("\n")
	b.WriteString(counterStyle.Render(fmt.Sprintf("%d / %d 文字", utf8.RuneCountInString(state.Text), domain.MaxTextLength)))
	b.WriteString("\n")

	if state.Loading {
		b.WriteString(m.spinner.View())
		b.WriteString(loadingStyle.Render(" 生成中..."))
		b.WriteString("\n")
	}
	if state.Err != "" {
		b.WriteString(errorStyle.Render(state.Err))
		b.WriteString("\n")
	}
	if len(state.Quizzes) > 0 {
		b.WriteString(resultsView(state.Quizzes))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("[Ctrl+G: 生成] [Ctrl+O: 読み込み] [Ctrl+L: クリア] [Tab: 切替] [Ctrl+C: 終了]"))
	return b.String()
}

func resultsView(items []domain.QuizItem) string {
	lines := make([]string, 0, len(items)*2)
	for i, item := range items {
		lines = append(lines,
			questionStyle.Render(fmt.Sprintf("Q%d. %s", i+1, item.Question)),
			answerStyle.Render("A. "+item.Answer),
		)
	}
	return resultsStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
