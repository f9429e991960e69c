package tui

import (
	"context"

	"github.com/Noel007-cse/plot-twist-cli/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

// Run drives the interactive client until the user quits.
func Run(ctx context.Context, orchestrator *application.Orchestrator) error {
	p := tea.NewProgram(
		New(orchestrator),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
