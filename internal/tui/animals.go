package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"herdcore/internal/core"
	"herdcore/pkg/domain"
)

// animalsPage lists the herd with derived ages and cycling type and gender
// filters.
type animalsPage struct {
	table        table.Model
	theme        Theme
	typeFilter   domain.AnimalType
	genderFilter domain.Gender
	visible      []domain.Animal
}

func (p *animalsPage) refresh(state core.State, today time.Time, theme Theme, t func(string) string, width, height int) {
	p.theme = theme

	columns := []table.Column{
		{Title: "Tag", Width: 6},
		{Title: "Name", Width: 14},
		{Title: "Type", Width: 9},
		{Title: "Breed", Width: 14},
		{Title: t("animals.male") + "/" + t("animals.female"), Width: 10},
		{Title: "Age", Width: 18},
	}

	p.visible = p.visible[:0]
	var rows []table.Row
	for _, a := range state.Animals {
		if p.typeFilter != "" && a.Type != p.typeFilter {
			continue
		}
		if p.genderFilter != "" && a.Gender != p.genderFilter {
			continue
		}
		p.visible = append(p.visible, a)
		age := ""
		if !a.BirthDate.IsZero() {
			age = domain.AgeAt(a.BirthDate, today).String()
		}
		rows = append(rows, table.Row{a.TagNumber, a.Name, string(a.Type), a.Breed, string(a.Gender), age})
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
}

func (p *animalsPage) update(m *Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "f":
		p.typeFilter = nextTypeFilter(p.typeFilter)
		m.refresh()
		return nil
	case "g":
		p.genderFilter = nextGenderFilter(p.genderFilter)
		m.refresh()
		return nil
	case "x":
		if i := p.table.Cursor(); i >= 0 && i < len(p.visible) {
			id := p.visible[i].ID
			m.dispatch(func(ctx context.Context) (core.Result, error) {
				return m.svc.DeleteAnimal(ctx, id)
			})
		}
		return nil
	}
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd
}

func (p animalsPage) view() string {
	header := filterLine(p.theme, p.typeFilter, p.genderFilter)
	return header + "\n" + p.table.View()
}

func filterLine(theme Theme, tf domain.AnimalType, gf domain.Gender) string {
	typeLabel, genderLabel := "all", "all"
	if tf != "" {
		typeLabel = string(tf)
	}
	if gf != "" {
		genderLabel = string(gf)
	}
	return theme.Muted.Render(fmt.Sprintf("type: %s  gender: %s", typeLabel, genderLabel))
}

// nextTypeFilter cycles all -> each species -> all.
func nextTypeFilter(cur domain.AnimalType) domain.AnimalType {
	types := domain.AnimalTypes()
	if cur == "" {
		return types[0]
	}
	for i, at := range types {
		if at == cur {
			if i == len(types)-1 {
				return ""
			}
			return types[i+1]
		}
	}
	return ""
}

func nextGenderFilter(cur domain.Gender) domain.Gender {
	switch cur {
	case "":
		return domain.GenderMale
	case domain.GenderMale:
		return domain.GenderFemale
	default:
		return ""
	}
}
