package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/koafy/setter-console/models"
)

const maxToasts = 3

type notificationsModel struct {
	idx int
}

func (m *notificationsModel) move(delta, n int) {
	m.idx += delta
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m notificationsModel) View(list []models.Notification) string {
	var b strings.Builder

	if len(list) == 0 {
		b.WriteString("No notifications")
	}

	// Newest first.
	for i := len(list) - 1; i >= 0; i-- {
		pos := len(list) - 1 - i
		line := renderNotificationLine(list[i])
		if pos == m.idx {
			b.WriteString(selectedStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return renderPage("NOTIFICATIONS", b.String(), "↑/↓: select  x: dismiss  X: dismiss all  esc: back")
}

// selectedID maps the cursor back to a queue entry.
func (m notificationsModel) selectedID(list []models.Notification) (int64, bool) {
	i := len(list) - 1 - m.idx
	if i < 0 || i >= len(list) {
		return 0, false
	}
	return list[i].ID, true
}

func renderNotificationLine(n models.Notification) string {
	return formatTime(n.Timestamp) + " " + notificationText(n)
}

func notificationText(n models.Notification) string {
	text := notificationStyleFor(n.Type)(n.Title)
	if n.Message != "" {
		text += ": " + n.Message
	}
	return text
}

// renderToasts stacks the newest notifications below the page.
func renderToasts(list []models.Notification) string {
	if len(list) == 0 {
		return ""
	}
	if len(list) > maxToasts {
		list = list[len(list)-maxToasts:]
	}

	boxes := make([]string, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		n := list[i]
		content := notificationStyleFor(n.Type)(n.Title)
		if n.Message != "" {
			content += "\n" + n.Message
		}
		boxes = append(boxes, toastBoxStyle.Render(content))
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}
