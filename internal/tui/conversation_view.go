package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/koafy/setter-console/internal/service"
	"github.com/koafy/setter-console/models"
)

const conversationPageSize = 20

type conversationModel struct {
	chat    models.Chat
	conv    *service.Conversation
	input   textinput.Model
	loading bool
	err     string
}

func newConversationModel(chat models.Chat, conv *service.Conversation) conversationModel {
	input := textinput.New()
	input.Placeholder = "Type a message"
	input.Prompt = "> "
	input.CharLimit = 4096
	input.Focus()

	return conversationModel{
		chat:    chat,
		conv:    conv,
		input:   input,
		loading: true,
	}
}

// lastFailed returns the newest message whose delivery failed.
func (m conversationModel) lastFailed() (models.Message, bool) {
	if m.conv == nil {
		return models.Message{}, false
	}
	msgs := m.conv.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].State == models.MessageFailed {
			return msgs[i], true
		}
	}
	return models.Message{}, false
}

func (m conversationModel) View() string {
	var b strings.Builder

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n\n")
	}

	var msgs []models.Message
	if m.conv != nil {
		msgs = m.conv.Messages()
	}

	switch {
	case m.loading && len(msgs) == 0:
		b.WriteString("Loading messages...")
	case len(msgs) == 0:
		b.WriteString("No messages yet")
	default:
		if len(msgs) > conversationPageSize {
			msgs = msgs[len(msgs)-conversationPageSize:]
		}
		for _, msg := range msgs {
			b.WriteString(renderMessageLine(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())

	title := m.chat.Name
	if title == "" {
		title = m.chat.Phone
	}

	hot := "enter: send  esc: back"
	if _, ok := m.lastFailed(); ok {
		hot = "enter: send  ctrl+r: retry failed  esc: back"
	}
	return renderPage(strings.ToUpper(valueOrDash(title)), b.String(), hot)
}

func renderMessageLine(msg models.Message) string {
	who := "them"
	if msg.FromMe {
		who = "me"
	}

	line := formatTime(msg.Timestamp) + " " + who + ": " + msg.Text

	switch msg.State {
	case models.MessageSending:
		return helpStyle.Render(line + " (sending...)")
	case models.MessageFailed:
		return errorStyle.Render(line + " (failed)")
	case models.MessageRead:
		return line + " ✓✓"
	case models.MessageDelivered, models.MessageSent:
		return line + " ✓"
	default:
		return line
	}
}
