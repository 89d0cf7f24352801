package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"herdcore/internal/core"
	"herdcore/pkg/domain"
)

// healthPage shows every health record with its derived status badge plus an
// overdue/upcoming sidebar.
type healthPage struct {
	table   table.Model
	theme   Theme
	sidebar string
}

func (p *healthPage) refresh(state core.State, today time.Time, theme Theme, t func(string) string, width, height int) {
	p.theme = theme

	columns := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Animal", Width: 14},
		{Title: "Type", Width: 12},
		{Title: "Description", Width: 26},
		{Title: "Next", Width: 10},
		{Title: "Status", Width: 11},
	}

	var rows []table.Row
	for _, rec := range state.HealthRecords {
		status := domain.HealthStatus(rec, today)
		next := ""
		if rec.NextScheduledDate != nil && !rec.NextScheduledDate.IsZero() {
			next = rec.NextScheduledDate.Format("2006-01-02")
		}
		rows = append(rows, table.Row{
			formatDate(rec.Date),
			animalName(state, rec.AnimalID),
			string(rec.Type),
			rec.Description,
			next,
			statusLabel(status),
		})
	}

	cursor := p.table.Cursor()
	p.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height-2),
		table.WithFocused(true),
	)
	if cursor < len(rows) {
		p.table.SetCursor(cursor)
	}

	p.sidebar = healthSidebar(state, today, theme)
}

func (p *healthPage) update(_ *Model, msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd
}

func (p healthPage) view() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, p.table.View(), "  ", p.sidebar)
}

func healthSidebar(state core.State, today time.Time, theme Theme) string {
	var b strings.Builder

	overdue := core.OverdueHealthEvents(state, today)
	b.WriteString(theme.Header.Render("Overdue"))
	b.WriteString("\n")
	if len(overdue) == 0 {
		b.WriteString(theme.Muted.Render("none") + "\n")
	}
	for _, ev := range overdue {
		b.WriteString(fmt.Sprintf("%s %s (%dd)\n",
			theme.BadgeOverdue.Render("!"), eventAnimal(ev), -ev.Days))
	}
	b.WriteString("\n")

	upcoming := core.UpcomingHealthEvents(state, today)
	b.WriteString(theme.Header.Render(fmt.Sprintf("Next %d days", core.UpcomingWindowDays)))
	b.WriteString("\n")
	if len(upcoming) == 0 {
		b.WriteString(theme.Muted.Render("none") + "\n")
	}
	for _, ev := range upcoming {
		b.WriteString(fmt.Sprintf("%s %s in %dd\n",
			theme.scheduleBadge(ev.Status, ev.Days), eventAnimal(ev), ev.Days))
	}
	return b.String()
}

func eventAnimal(ev core.HealthEvent) string {
	if ev.AnimalName == "" {
		return "Unknown"
	}
	return ev.AnimalName
}

func animalName(state core.State, id string) string {
	if a, ok := state.FindAnimal(id); ok {
		return a.Name
	}
	return "Unknown"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func statusLabel(status domain.ScheduleStatus) string {
	switch status {
	case domain.ScheduleOverdue:
		return "Overdue"
	case domain.ScheduleDueSoon:
		return "Due Soon"
	case domain.ScheduleUpcoming:
		return "Upcoming"
	default:
		return "Completed"
	}
}
