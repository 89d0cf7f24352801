package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"herdcore/internal/core"
	"herdcore/pkg/domain"
)

// marketPage shows the latest quote per item with its trend against the
// previous quote.
type marketPage struct {
	content string
}

func (p *marketPage) refresh(state core.State, theme Theme, t func(string) string, width int) {
	quotes := domain.CurrentPrices(state.MarketPrices)

	var b strings.Builder
	b.WriteString(theme.Header.Render(t("market.prices")))
	b.WriteString("\n\n")
	if len(quotes) == 0 {
		b.WriteString(theme.Muted.Render("no price data"))
	}
	for _, q := range quotes {
		line := fmt.Sprintf("%-14s ₹%-8.2f %-12s %-10s %s",
			q.Latest.Item, q.Latest.Price, q.Latest.Unit, q.Latest.Location,
			trendLabel(theme, q.Trend))
		b.WriteString(line)
		b.WriteString("\n")
	}
	p.content = b.String()
}

func (p *marketPage) update(_ *Model, _ tea.KeyMsg) tea.Cmd {
	return nil
}

func (p marketPage) view() string {
	return p.content
}

func trendLabel(theme Theme, trend *domain.Trend) string {
	if trend == nil {
		return theme.TrendNeutral.Render("no trend")
	}
	switch {
	case trend.Neutral:
		return theme.TrendNeutral.Render("→ 0.0%")
	case trend.Positive:
		return theme.TrendUp.Render(fmt.Sprintf("↑ %.1f%%", trend.ChangePercent))
	default:
		return theme.TrendDown.Render(fmt.Sprintf("↓ %.1f%%", -trend.ChangePercent))
	}
}
