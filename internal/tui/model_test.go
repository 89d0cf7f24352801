package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herdcore/internal/core"
	"herdcore/internal/seed"
	"herdcore/pkg/domain"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	state, res, err := seed.Default()
	require.NoError(t, err)

	audit := core.NewMemoryAuditSink(100)
	svc := core.NewService(state,
		core.WithAuditSink(audit),
		core.WithClock(func() time.Time {
			return time.Date(2023, time.April, 30, 12, 0, 0, 0, time.UTC)
		}),
	)
	return New(svc, audit, res)
}

func resize(m Model) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func key(m Model, k string) Model {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestDashboardRendersHeadlineFigures(t *testing.T) {
	m := resize(newTestModel(t))
	view := m.View()
	assert.Contains(t, view, "Total Animals")
	assert.Contains(t, view, "Recent activity")
	assert.Contains(t, view, "Data health")
}

func TestTabSwitchingReachesEveryPage(t *testing.T) {
	m := resize(newTestModel(t))
	for i := 0; i < int(pageCount); i++ {
		assert.NotPanics(t, func() { _ = m.View() }, "page %d", i)
		m = key(m, "tab")
	}
	assert.Equal(t, pageDashboard, m.active, "tab wraps around")
}

func TestAnimalsPageShowsDerivedAge(t *testing.T) {
	m := resize(newTestModel(t))
	m = key(m, "2")
	view := m.View()
	assert.Contains(t, view, "Lakshmi")
	// Lakshmi born 2020-05-15, clock fixed at 2023-04-30.
	assert.Contains(t, view, "2 years")
}

func TestAnimalsDeleteDispatches(t *testing.T) {
	m := resize(newTestModel(t))
	m = key(m, "2")
	before := len(m.svc.State().Animals)
	m = key(m, "x")
	assert.Len(t, m.svc.State().Animals, before-1)
	// Deleting a referenced animal must surface integrity violations on the
	// dashboard data-health panel.
	m = key(m, "1")
	assert.Contains(t, m.View(), "reference")
}

func TestMarketPageShowsTrendFallback(t *testing.T) {
	m := resize(newTestModel(t))
	m = key(m, "5")
	view := m.View()
	assert.Contains(t, view, "Cow Milk")
	assert.Contains(t, view, "no trend")
}

func TestNotificationStatusKeys(t *testing.T) {
	m := resize(newTestModel(t))
	m = key(m, "7")
	m = key(m, "d")
	n, ok := m.svc.State().FindNotification("1")
	require.True(t, ok)
	assert.Equal(t, domain.NotificationDone, n.Status)

	m = key(m, "p")
	n, _ = m.svc.State().FindNotification("1")
	assert.Equal(t, domain.NotificationPending, n.Status)
}

func TestSettingsSwitchesLanguage(t *testing.T) {
	m := resize(newTestModel(t))
	m = key(m, "8")
	m = key(m, "down")
	m = key(m, "enter")
	assert.Equal(t, domain.LanguageHindi, m.svc.State().Language)
	assert.True(t, strings.Contains(m.View(), "डैशबोर्ड"), "tab bar should use the new language")
}

func TestKnowledgeCategoryAndTypeFilters(t *testing.T) {
	m := resize(newTestModel(t))
	m = key(m, "6")
	view := m.View()
	assert.Contains(t, view, "Proper Feeding Practices")
	assert.Contains(t, view, "Housing Requirements for Goats")

	// One press narrows to the first category.
	m = key(m, "f")
	view = m.View()
	assert.Contains(t, view, "category: feeding")
	assert.Contains(t, view, "Proper Feeding Practices")
	assert.NotContains(t, view, "Housing Requirements for Goats")

	// Cycle back to all, then narrow by species instead.
	for m.knowledge.categoryFilter != "" {
		m = key(m, "f")
	}
	m = key(m, "t")
	view = m.View()
	assert.Contains(t, view, "species: cow")
	assert.Contains(t, view, "Signs of Heat in Cows")
	assert.NotContains(t, view, "Poultry Vaccination Schedule")
}

func TestDispatchErrorSurfacesOnStatusLine(t *testing.T) {
	m := resize(newTestModel(t))
	m.dispatch(func(ctx context.Context) (core.Result, error) {
		_, _, err := m.svc.UpdateNotificationStatus(ctx, "missing", domain.NotificationDone)
		return core.Result{}, err
	})
	assert.Contains(t, m.View(), "not found")

	// The next successful dispatch clears the status line.
	m = key(m, "7")
	m = key(m, "d")
	assert.NotContains(t, m.View(), "not found")
}

func TestHealthPageBadges(t *testing.T) {
	m := resize(newTestModel(t))
	m = key(m, "3")
	view := m.View()
	// With the clock at 2023-04-30, records 1 and 2 are overdue/upcoming.
	assert.Contains(t, view, "Overdue")
	assert.Contains(t, view, "FMD Vaccination")
}
