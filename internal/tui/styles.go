// Package tui renders the dashboard as a bubbletea program over the core
// service. It is the only consumer of the store.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"herdcore/pkg/domain"
)

// Theme bundles every style the pages draw with. Colors are adaptive, so one
// theme serves light and dark terminals; forcing a theme just flips the
// background assumption on the renderer.
type Theme struct {
	Title     lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	TabBar    lipgloss.Style

	Card      lipgloss.Style
	CardTitle lipgloss.Style
	CardValue lipgloss.Style

	Header    lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style
	Footer    lipgloss.Style

	BadgeDone     lipgloss.Style
	BadgeOverdue  lipgloss.Style
	BadgeDueSoon  lipgloss.Style
	BadgeUpcoming lipgloss.Style

	TrendUp      lipgloss.Style
	TrendDown    lipgloss.Style
	TrendNeutral lipgloss.Style

	Warning lipgloss.Style
}

// NewTheme constructs the default adaptive theme.
func NewTheme() Theme {
	green := lipgloss.AdaptiveColor{Light: "28", Dark: "42"}
	red := lipgloss.AdaptiveColor{Light: "124", Dark: "196"}
	amber := lipgloss.AdaptiveColor{Light: "130", Dark: "214"}
	blue := lipgloss.AdaptiveColor{Light: "26", Dark: "39"}
	muted := lipgloss.AdaptiveColor{Light: "241", Dark: "246"}
	border := lipgloss.AdaptiveColor{Light: "250", Dark: "238"}

	badge := lipgloss.NewStyle().Padding(0, 1).Bold(true)

	return Theme{
		Title: lipgloss.NewStyle().Bold(true).Foreground(blue).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Bold(true).Foreground(blue).
			Border(lipgloss.RoundedBorder(), false, false, true, false).BorderForeground(blue).Padding(0, 1),
		TabIdle: lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		TabBar:  lipgloss.NewStyle().MarginBottom(1),

		Card: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).
			Padding(0, 1).MarginRight(1),
		CardTitle: lipgloss.NewStyle().Foreground(muted),
		CardValue: lipgloss.NewStyle().Bold(true).Foreground(blue),

		Header:    lipgloss.NewStyle().Bold(true).Underline(true),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Highlight: lipgloss.NewStyle().Bold(true),
		Footer:    lipgloss.NewStyle().Foreground(muted).MarginTop(1),

		BadgeDone:     badge.Foreground(green),
		BadgeOverdue:  badge.Foreground(red),
		BadgeDueSoon:  badge.Foreground(amber),
		BadgeUpcoming: badge.Foreground(blue),

		TrendUp:      lipgloss.NewStyle().Foreground(green),
		TrendDown:    lipgloss.NewStyle().Foreground(red),
		TrendNeutral: lipgloss.NewStyle().Foreground(muted),

		Warning: lipgloss.NewStyle().Foreground(amber),
	}
}

// scheduleBadge renders the status label shown next to dated records.
func (t Theme) scheduleBadge(status domain.ScheduleStatus, days int) string {
	switch status {
	case domain.ScheduleOverdue:
		return t.BadgeOverdue.Render("Overdue")
	case domain.ScheduleDueSoon:
		if days == 0 {
			return t.BadgeDueSoon.Render("Due Today")
		}
		return t.BadgeDueSoon.Render("Due Soon")
	case domain.ScheduleUpcoming:
		return t.BadgeUpcoming.Render("Upcoming")
	default:
		return t.BadgeDone.Render("Completed")
	}
}
