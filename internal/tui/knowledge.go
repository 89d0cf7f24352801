package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"herdcore/internal/core"
	"herdcore/pkg/domain"
)

// articleItem adapts a knowledge article to the bubbles list.
type articleItem struct {
	article domain.KnowledgeArticle
}

func (i articleItem) Title() string { return i.article.Title }
func (i articleItem) Description() string {
	return fmt.Sprintf("%s · %s", i.article.Category, joinTypes(i.article.AnimalTypes))
}
func (i articleItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", i.article.Title, i.article.Category, joinTypes(i.article.AnimalTypes))
}

// guideItem adapts a disease guide to the bubbles list.
type guideItem struct {
	guide domain.DiseaseGuide
}

func (i guideItem) Title() string       { return i.guide.Name }
func (i guideItem) Description() string { return joinTypes(i.guide.AnimalTypes) }
func (i guideItem) FilterValue() string { return i.guide.Name }

// knowledgePage toggles between the article list and the disease guide list,
// rendering the selected entry as markdown in a viewport.
type knowledgePage struct {
	articles list.Model
	guides   list.Model
	viewport viewport.Model
	theme    Theme

	showGuides     bool
	reading        bool
	width          int
	current        string
	categoryFilter domain.ArticleCategory
	typeFilter     domain.AnimalType
}

func newKnowledgePage() knowledgePage {
	delegate := list.NewDefaultDelegate()
	articles := list.New(nil, delegate, 0, 0)
	articles.SetShowHelp(false)
	articles.SetShowTitle(true)
	guides := list.New(nil, delegate, 0, 0)
	guides.SetShowHelp(false)
	guides.SetShowTitle(true)
	return knowledgePage{articles: articles, guides: guides}
}

func (p *knowledgePage) refresh(state core.State, theme Theme, t func(string) string, width, height int) {
	p.theme = theme
	p.width = width

	items := make([]list.Item, 0, len(state.KnowledgeArticles))
	for _, a := range state.KnowledgeArticles {
		if p.categoryFilter != "" && a.Category != p.categoryFilter {
			continue
		}
		if p.typeFilter != "" && !coversType(a.AnimalTypes, p.typeFilter) {
			continue
		}
		items = append(items, articleItem{article: a})
	}
	p.articles.SetItems(items)
	p.articles.Title = t("common.knowledge")
	p.articles.SetSize(width, height-1)

	guideItems := make([]list.Item, 0, len(state.DiseaseGuides))
	for _, g := range state.DiseaseGuides {
		guideItems = append(guideItems, guideItem{guide: g})
	}
	p.guides.SetItems(guideItems)
	p.guides.Title = "Disease Guides"
	p.guides.SetSize(width, height)

	p.viewport = viewport.New(width, height)
	if p.reading && p.current != "" {
		p.viewport.SetContent(renderMarkdown(p.current, width))
	}
}

func (p *knowledgePage) update(m *Model, msg tea.KeyMsg) tea.Cmd {
	if p.reading {
		switch msg.String() {
		case "esc", "q":
			p.reading = false
			return nil
		case "ctrl+c":
			return tea.Quit
		}
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "g":
		p.showGuides = !p.showGuides
		return nil
	case "f":
		p.categoryFilter = nextCategoryFilter(p.categoryFilter)
		m.refresh()
		return nil
	case "t":
		p.typeFilter = nextTypeFilter(p.typeFilter)
		m.refresh()
		return nil
	case "enter":
		p.open()
		return nil
	}

	var cmd tea.Cmd
	if p.showGuides {
		p.guides, cmd = p.guides.Update(msg)
	} else {
		p.articles, cmd = p.articles.Update(msg)
	}
	return cmd
}

func (p *knowledgePage) open() {
	var md string
	if p.showGuides {
		item, ok := p.guides.SelectedItem().(guideItem)
		if !ok {
			return
		}
		md = guideMarkdown(item.guide)
	} else {
		item, ok := p.articles.SelectedItem().(articleItem)
		if !ok {
			return
		}
		md = articleMarkdown(item.article)
	}
	p.current = md
	p.viewport.SetContent(renderMarkdown(md, p.width))
	p.viewport.GotoTop()
	p.reading = true
}

func (p knowledgePage) view() string {
	if p.reading {
		return p.viewport.View()
	}
	if p.showGuides {
		return p.guides.View()
	}
	categoryLabel, typeLabel := "all", "all"
	if p.categoryFilter != "" {
		categoryLabel = string(p.categoryFilter)
	}
	if p.typeFilter != "" {
		typeLabel = string(p.typeFilter)
	}
	header := p.theme.Muted.Render(fmt.Sprintf("category: %s  species: %s", categoryLabel, typeLabel))
	return header + "\n" + p.articles.View()
}

// nextCategoryFilter cycles all -> each category -> all.
func nextCategoryFilter(cur domain.ArticleCategory) domain.ArticleCategory {
	categories := domain.ArticleCategories()
	if cur == "" {
		return categories[0]
	}
	for i, c := range categories {
		if c == cur {
			if i == len(categories)-1 {
				return ""
			}
			return categories[i+1]
		}
	}
	return ""
}

func coversType(types []domain.AnimalType, want domain.AnimalType) bool {
	for _, at := range types {
		if at == want {
			return true
		}
	}
	return false
}

func articleMarkdown(a domain.KnowledgeArticle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", a.Title)
	fmt.Fprintf(&b, "*%s · %s*\n\n", a.Category, joinTypes(a.AnimalTypes))
	b.WriteString(a.Content)
	b.WriteString("\n")
	return b.String()
}

func guideMarkdown(g domain.DiseaseGuide) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", g.Name)
	fmt.Fprintf(&b, "*Affects: %s*\n\n", joinTypes(g.AnimalTypes))
	b.WriteString("## Symptoms\n\n")
	for _, s := range g.Symptoms {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	fmt.Fprintf(&b, "\n## Treatment\n\n%s\n", g.Treatment)
	fmt.Fprintf(&b, "\n## Prevention\n\n%s\n", g.Prevention)
	if g.EmergencyCare != "" {
		fmt.Fprintf(&b, "\n## Emergency Care\n\n%s\n", g.EmergencyCare)
	}
	return b.String()
}

// renderMarkdown runs glamour with a recovery guard; glamour can panic on
// pathological input, and a reference page is never worth crashing the
// program over.
func renderMarkdown(md string, width int) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = md
		}
	}()
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}

func joinTypes(types []domain.AnimalType) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}
