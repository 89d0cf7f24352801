package domain

import "sort"

// Trend describes the movement between the two most recent prices of an item.
type Trend struct {
	ChangePercent float64
	Positive      bool
	Neutral       bool
}

// TrendBetween computes the percentage change from previous to latest.
// When previous is zero the trend is undefined and ok is false; callers must
// render "no trend" rather than a number.
func TrendBetween(previous, latest float64) (Trend, bool) {
	if previous == 0 {
		return Trend{}, false
	}
	change := (latest - previous) / previous * 100
	return Trend{
		ChangePercent: change,
		Positive:      change > 0,
		Neutral:       change == 0,
	}, true
}

// ItemQuote is the current market position of one item: its most recent
// quote, plus the trend against the quote before it when one exists.
type ItemQuote struct {
	Latest   MarketPrice
	Previous *MarketPrice
	Trend    *Trend
}

// CurrentPrices groups quotes by item and reduces each group to its latest
// quote and trend. Results are ordered by item name. Within an item, quotes
// are ordered most recent first; ties keep their relative input order.
func CurrentPrices(prices []MarketPrice) []ItemQuote {
	byItem := make(map[string][]MarketPrice)
	var items []string
	for _, p := range prices {
		if _, seen := byItem[p.Item]; !seen {
			items = append(items, p.Item)
		}
		byItem[p.Item] = append(byItem[p.Item], p)
	}
	sort.Strings(items)

	quotes := make([]ItemQuote, 0, len(items))
	for _, item := range items {
		group := byItem[item]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Date.After(group[j].Date)
		})
		q := ItemQuote{Latest: group[0]}
		if len(group) > 1 {
			prev := group[1]
			q.Previous = &prev
			if t, ok := TrendBetween(prev.Price, group[0].Price); ok {
				q.Trend = &t
			}
		}
		quotes = append(quotes, q)
	}
	return quotes
}
