package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"herdcore/internal/core"
	"herdcore/internal/i18n"
	"herdcore/pkg/domain"
)

type page int

const (
	pageDashboard page = iota
	pageAnimals
	pageHealth
	pageBreeding
	pageMarket
	pageKnowledge
	pageNotifications
	pageSettings
	pageCount
)

var pageTitleKeys = map[page]string{
	pageDashboard:     "common.dashboard",
	pageAnimals:       "common.animals",
	pageHealth:        "common.health",
	pageBreeding:      "common.breeding",
	pageMarket:        "common.market",
	pageKnowledge:     "common.knowledge",
	pageNotifications: "common.notifications",
	pageSettings:      "common.settings",
}

// Model is the root bubbletea model. It owns the service and fans messages
// out to the active page. Pages rebuild their rows from a fresh snapshot
// after every dispatch.
type Model struct {
	svc        *core.Service
	audit      *core.MemoryAuditSink
	dataHealth core.Result
	theme      Theme

	active page
	width  int
	height int
	ready  bool
	status string

	dashboard     dashboardPage
	animals       animalsPage
	health        healthPage
	breeding      breedingPage
	market        marketPage
	knowledge     knowledgePage
	notifications notificationsPage
	settings      settingsPage
}

// New constructs the root model. The audit sink must be the one wired into
// the service so the dashboard activity feed sees dispatches.
func New(svc *core.Service, audit *core.MemoryAuditSink, dataHealth core.Result) Model {
	return Model{
		svc:        svc,
		audit:      audit,
		dataHealth: dataHealth,
		theme:      NewTheme(),
		knowledge:  newKnowledgePage(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) tr() func(string) string {
	return i18n.Translator(m.svc.State().Language)
}

func (m *Model) today() time.Time {
	return m.svc.Now()
}

// refresh rebuilds every page from the current snapshot. Cheap enough to run
// after each dispatch given the single-user dataset sizes involved.
func (m *Model) refresh() {
	state := m.svc.State()
	today := m.today()
	t := m.tr()

	m.dashboard.refresh(state, today, m.audit, m.dataHealth, m.theme, t)
	m.animals.refresh(state, today, m.theme, t, m.contentWidth(), m.contentHeight())
	m.health.refresh(state, today, m.theme, t, m.contentWidth(), m.contentHeight())
	m.breeding.refresh(state, today, m.theme, t, m.contentWidth(), m.contentHeight())
	m.market.refresh(state, m.theme, t, m.contentWidth())
	m.knowledge.refresh(state, m.theme, t, m.contentWidth(), m.contentHeight())
	m.notifications.refresh(state, m.theme, t, m.contentWidth(), m.contentHeight())
	m.settings.refresh(state, m.theme, t)
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

func (m *Model) contentHeight() int {
	// Tab bar, title, and footer take a few rows.
	h := m.height - 6
	if h < 5 {
		return 5
	}
	return h
}

// dispatch runs a service call and refreshes the pages. Violations surfaced
// by the call replace the data-health panel contents; errors land on the
// status line until the next successful dispatch.
func (m *Model) dispatch(fn func(ctx context.Context) (core.Result, error)) {
	res, err := fn(context.Background())
	if err != nil {
		m.status = err.Error()
	} else {
		m.status = ""
		m.dataHealth = res
	}
	m.refresh()
}

// setLanguage is invoked from the settings page.
func (m *Model) setLanguage(lang domain.Language) {
	m.dispatch(func(ctx context.Context) (core.Result, error) {
		return m.svc.SetLanguage(ctx, lang)
	})
}
