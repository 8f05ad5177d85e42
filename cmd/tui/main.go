package main

import (
	"fmt"
	"os"

	"text-quiz/internal/client"
	"text-quiz/internal/config"
	"text-quiz/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	quizClient := client.New(cfg.Client.BaseURL, cfg.Client.Timeout)
	p := tea.NewProgram(tui.NewModel(quizClient), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running text-quiz: %v\n", err)
		os.Exit(1)
	}
}
