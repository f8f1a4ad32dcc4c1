package tui

import (
	"strings"
	"time"

	"github.com/koafy/setter-console/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  q: quit"))

	return b.String()
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.Local().Format("15:04")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

func statusLabel(s models.Status) string {
	switch s {
	case models.StatusConnected:
		return successStyle.Render("Connected")
	case models.StatusAuthenticated:
		return successStyle.Render("Authenticated")
	case models.StatusInitializing:
		return warningStyle.Render("Initializing")
	case models.StatusGeneratingQR:
		return warningStyle.Render("Generating QR code")
	case models.StatusQR:
		return infoStyle.Render("Waiting for QR scan")
	case models.StatusError:
		return errorStyle.Render("Error")
	case models.StatusDisconnected:
		return "Disconnected"
	default:
		return warningStyle.Render("Unknown")
	}
}

func notificationStyleFor(t models.NotificationType) func(...string) string {
	switch t {
	case models.NotificationSuccess:
		return successStyle.Render
	case models.NotificationError:
		return errorStyle.Render
	case models.NotificationWarning:
		return warningStyle.Render
	default:
		return infoStyle.Render
	}
}
