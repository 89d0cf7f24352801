package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	t := m.tr()

	var tabs []string
	for p := page(0); p < pageCount; p++ {
		label := t(pageTitleKeys[p])
		if p == m.active {
			tabs = append(tabs, m.theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.theme.TabIdle.Render(label))
		}
	}
	bar := m.theme.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...))

	var body string
	switch m.active {
	case pageDashboard:
		body = m.dashboard.view()
	case pageAnimals:
		body = m.animals.view()
	case pageHealth:
		body = m.health.view()
	case pageBreeding:
		body = m.breeding.view()
	case pageMarket:
		body = m.market.view()
	case pageKnowledge:
		body = m.knowledge.view()
	case pageNotifications:
		body = m.notifications.view()
	case pageSettings:
		body = m.settings.view()
	}

	footer := m.theme.Footer.Render(m.footerHelp())

	lines := []string{bar, body}
	if m.status != "" {
		lines = append(lines, m.theme.Warning.Render(m.status))
	}
	lines = append(lines, footer)
	return strings.Join(lines, "\n")
}

func (m Model) footerHelp() string {
	base := "tab: switch  q: quit"
	switch m.active {
	case pageAnimals:
		return "f: filter type  g: filter gender  x: delete  " + base
	case pageKnowledge:
		if m.knowledge.reading {
			return "esc: back  up/down: scroll  q: quit"
		}
		return "enter: read  g: guides/articles  f: category  t: species  " + base
	case pageNotifications:
		return "d: done  s: snooze  p: reopen  " + base
	case pageSettings:
		return "up/down: choose  enter: apply  " + base
	default:
		return base
	}
}
