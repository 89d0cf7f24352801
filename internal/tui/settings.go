package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"herdcore/internal/core"
	"herdcore/pkg/domain"
)

var languageLabels = map[domain.Language]string{
	domain.LanguageEnglish:  "English",
	domain.LanguageHindi:    "हिन्दी",
	domain.LanguageAssamese: "অসমীয়া",
}

// settingsPage is the language picker.
type settingsPage struct {
	theme  Theme
	cursor int
	active domain.Language
	title  string
}

func (p *settingsPage) refresh(state core.State, theme Theme, t func(string) string) {
	p.theme = theme
	p.active = state.Language
	p.title = t("settings.language")
}

func (p *settingsPage) update(m *Model, msg tea.KeyMsg) tea.Cmd {
	languages := domain.Languages()
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(languages)-1 {
			p.cursor++
		}
	case "enter":
		m.setLanguage(languages[p.cursor])
	}
	return nil
}

func (p settingsPage) view() string {
	var b strings.Builder
	b.WriteString(p.theme.Header.Render(p.title))
	b.WriteString("\n\n")
	for i, lang := range domain.Languages() {
		marker := "  "
		if i == p.cursor {
			marker = p.theme.Highlight.Render("> ")
		}
		label := languageLabels[lang]
		if lang == p.active {
			label += p.theme.BadgeDone.Render(" (active)")
		}
		fmt.Fprintf(&b, "%s%s\n", marker, label)
	}
	return b.String()
}
