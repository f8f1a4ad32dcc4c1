package tui

import (
	"strings"

	"github.com/koafy/setter-console/models"
)

const historyLimit = 20

type historyModel struct {
	events        []models.StatusEvent
	notifications []models.NotificationRecord
	loading       bool
	err           string
}

func (m historyModel) View() string {
	var b strings.Builder

	switch {
	case m.err != "":
		b.WriteString(errorStyle.Render(m.err))
	case m.loading:
		b.WriteString("Loading history...")
	default:
		b.WriteString(titleStyle.Render("Status changes"))
		b.WriteString("\n")
		if len(m.events) == 0 {
			b.WriteString("  -\n")
		}
		for _, e := range m.events {
			b.WriteString("  ")
			b.WriteString(formatDateTime(e.RecordedAt))
			b.WriteString("  ")
			b.WriteString(statusLabel(e.Status))
			if e.HasQR {
				b.WriteString(" [qr]")
			}
			if e.Error != "" {
				b.WriteString("  ")
				b.WriteString(errorStyle.Render(e.Error))
			} else if e.Message != "" {
				b.WriteString("  ")
				b.WriteString(e.Message)
			}
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Notifications"))
		b.WriteString("\n")
		if len(m.notifications) == 0 {
			b.WriteString("  -\n")
		}
		for _, r := range m.notifications {
			b.WriteString("  ")
			b.WriteString(formatDateTime(r.Notification.Timestamp))
			b.WriteString("  ")
			b.WriteString(notificationText(r.Notification))
			b.WriteString("\n")
		}
	}

	return renderPage("HISTORY", b.String(), "r: reload  esc: back")
}
