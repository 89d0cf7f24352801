package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"herdcore/internal/config"
	"herdcore/internal/core"
)

// Run starts the dashboard program and blocks until the user quits.
// theme is one of the config theme values; auto keeps the renderer's own
// background detection.
func Run(svc *core.Service, audit *core.MemoryAuditSink, dataHealth core.Result, theme string) error {
	switch theme {
	case config.ThemeDark:
		lipgloss.DefaultRenderer().SetHasDarkBackground(true)
	case config.ThemeLight:
		lipgloss.DefaultRenderer().SetHasDarkBackground(false)
	}

	program := tea.NewProgram(New(svc, audit, dataHealth), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
