package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		// The knowledge reader captures keys while an article is open.
		if m.active == pageKnowledge && m.knowledge.reading {
			cmd := m.knowledge.update(&m, msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "right":
			m.active = (m.active + 1) % pageCount
			m.refresh()
			return m, nil
		case "shift+tab", "left":
			m.active = (m.active + pageCount - 1) % pageCount
			m.refresh()
			return m, nil
		case "1", "2", "3", "4", "5", "6", "7", "8":
			m.active = page(int(msg.String()[0] - '1'))
			m.refresh()
			return m, nil
		}

		var cmd tea.Cmd
		switch m.active {
		case pageAnimals:
			cmd = m.animals.update(&m, msg)
		case pageHealth:
			cmd = m.health.update(&m, msg)
		case pageBreeding:
			cmd = m.breeding.update(&m, msg)
		case pageKnowledge:
			cmd = m.knowledge.update(&m, msg)
		case pageNotifications:
			cmd = m.notifications.update(&m, msg)
		case pageSettings:
			cmd = m.settings.update(&m, msg)
		}
		return m, cmd
	}
	return m, nil
}
