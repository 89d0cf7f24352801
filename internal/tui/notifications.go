package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"herdcore/internal/core"
	"herdcore/pkg/domain"
)

// notificationItem adapts a notification to the bubbles list.
type notificationItem struct {
	notification domain.Notification
}

func (i notificationItem) Title() string {
	return fmt.Sprintf("[%s] %s", i.notification.Status, i.notification.Title)
}

func (i notificationItem) Description() string {
	date := ""
	if !i.notification.Date.IsZero() {
		date = i.notification.Date.Format("2006-01-02") + " · "
	}
	return date + i.notification.Description
}

func (i notificationItem) FilterValue() string { return i.notification.Title }

// notificationsPage lists notifications and drives their status transitions.
type notificationsPage struct {
	list        list.Model
	theme       Theme
	initialized bool
}

func (p *notificationsPage) refresh(state core.State, theme Theme, t func(string) string, width, height int) {
	p.theme = theme
	if !p.initialized {
		p.list = list.New(nil, list.NewDefaultDelegate(), 0, 0)
		p.list.SetShowHelp(false)
		p.initialized = true
	}

	items := make([]list.Item, 0, len(state.Notifications))
	for _, n := range state.Notifications {
		items = append(items, notificationItem{notification: n})
	}
	p.list.SetItems(items)
	p.list.Title = t("common.notifications")
	p.list.SetSize(width, height)
}

func (p *notificationsPage) update(m *Model, msg tea.KeyMsg) tea.Cmd {
	var target domain.NotificationStatus
	switch msg.String() {
	case "d":
		target = domain.NotificationDone
	case "s":
		target = domain.NotificationSnoozed
	case "p":
		target = domain.NotificationPending
	default:
		var cmd tea.Cmd
		p.list, cmd = p.list.Update(msg)
		return cmd
	}

	item, ok := p.list.SelectedItem().(notificationItem)
	if !ok {
		return nil
	}
	id := item.notification.ID
	m.dispatch(func(ctx context.Context) (core.Result, error) {
		_, res, err := m.svc.UpdateNotificationStatus(ctx, id, target)
		return res, err
	})
	return nil
}

func (p notificationsPage) view() string {
	return p.list.View()
}
