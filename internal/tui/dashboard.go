package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"herdcore/internal/core"
	"herdcore/pkg/domain"
)

const recentActivityLimit = 5

// dashboardPage renders the headline cards, pending alerts, recent activity,
// and the data-health panel. It is display-only.
type dashboardPage struct {
	content string
}

func (p *dashboardPage) refresh(state core.State, today time.Time, audit *core.MemoryAuditSink, dataHealth core.Result, theme Theme, t func(string) string) {
	sum := core.Summarize(state, today)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard(theme, t("animals.total"), fmt.Sprintf("%d", sum.TotalAnimals)),
		statCard(theme, t("health.vaccination"), fmt.Sprintf("%d", sum.UpcomingHealthEvents)),
		statCard(theme, t("common.breeding"), fmt.Sprintf("%d", sum.ExpectedBirths)),
		statCard(theme, t("common.production"), weeklyMilk(sum)),
	)

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n\n")

	b.WriteString(theme.Header.Render(t("common.notifications")))
	b.WriteString("\n")
	pending := 0
	for _, n := range state.Notifications {
		if n.Status != domain.NotificationPending {
			continue
		}
		pending++
		b.WriteString(fmt.Sprintf("  %s %s\n", theme.Warning.Render("!"), n.Title))
	}
	if pending == 0 {
		b.WriteString(theme.Muted.Render("  nothing pending") + "\n")
	}
	if sum.OverdueHealthEvents > 0 {
		b.WriteString(fmt.Sprintf("  %s %d overdue health events\n", theme.BadgeOverdue.Render("Overdue"), sum.OverdueHealthEvents))
	}
	b.WriteString("\n")

	b.WriteString(theme.Header.Render("Recent activity"))
	b.WriteString("\n")
	recent := audit.Recent(recentActivityLimit)
	if len(recent) == 0 {
		b.WriteString(theme.Muted.Render("  no changes yet") + "\n")
	}
	for _, entry := range recent {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			theme.Muted.Render(entry.At.Format("15:04")),
			entry.Change.Action,
			entry.Change.Entity,
		))
	}
	b.WriteString("\n")

	b.WriteString(theme.Header.Render("Data health"))
	b.WriteString("\n")
	if len(dataHealth.Violations) == 0 {
		b.WriteString(theme.BadgeDone.Render("OK") + "\n")
	}
	for _, v := range dataHealth.Violations {
		b.WriteString(fmt.Sprintf("  %s %s %s: %s\n",
			theme.Warning.Render(string(v.Severity)),
			v.Entity, v.EntityID, v.Message,
		))
	}

	p.content = b.String()
}

func (p dashboardPage) view() string {
	return p.content
}

func statCard(theme Theme, title, value string) string {
	return theme.Card.Render(
		theme.CardTitle.Render(title) + "\n" + theme.CardValue.Render(value),
	)
}

func weeklyMilk(sum core.DashboardSummary) string {
	return fmt.Sprintf("%.1f L", sum.WeeklyProduction[domain.ProductionMilk])
}
