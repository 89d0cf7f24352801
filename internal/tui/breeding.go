package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"herdcore/internal/core"
	"herdcore/pkg/domain"
)

// breedingPage lists breeding attempts with their due classification.
type breedingPage struct {
	table table.Model
	theme Theme
}

func (p *breedingPage) refresh(state core.State, today time.Time, theme Theme, t func(string) string, width, height int) {
	p.theme = theme

	columns := []table.Column{
		{Title: "Date", Width: 10},
		{Title: t("animals.female"), Width: 14},
		{Title: t("animals.male"), Width: 14},
		{Title: "Method", Width: 10},
		{Title: "Due", Width: 16},
		{Title: "Outcome", Width: 12},
	}

	var rows []table.Row
	for _, rec := range state.BreedingRecords {
		male := "-"
		if rec.MaleAnimalID != "" {
			male = animalName(state, rec.MaleAnimalID)
		}
		rows = append(rows, table.Row{
			formatDate(rec.Date),
			animalName(state, rec.FemaleAnimalID),
			male,
			string(rec.Method),
			dueLabel(rec, today),
			string(rec.SuccessStatus),
		})
	}

	cursor := p.table.Cursor()
	p.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height-1),
		table.WithFocused(true),
	)
	if cursor < len(rows) {
		p.table.SetCursor(cursor)
	}
}

func (p *breedingPage) update(_ *Model, msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd
}

func (p breedingPage) view() string {
	return p.table.View()
}

// dueLabel renders the urgency of a pending attempt. Concluded attempts show
// the birth date when one was recorded.
func dueLabel(rec domain.BreedingRecord, today time.Time) string {
	if rec.SuccessStatus != domain.BreedingPending {
		if rec.ActualBirthDate != nil {
			return "born " + rec.ActualBirthDate.Format("2006-01-02")
		}
		return "-"
	}
	days := domain.DaysUntil(rec.ExpectedDueDate, today)
	if days == nil {
		return "no due date"
	}
	switch {
	case *days < 0:
		return fmt.Sprintf("overdue %dd", -*days)
	case *days == 0:
		return "due today"
	default:
		return fmt.Sprintf("due in %dd", *days)
	}
}
