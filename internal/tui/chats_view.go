package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/koafy/setter-console/models"
)

const chatsPageSize = 15

type chatsModel struct {
	chats     []models.Chat
	idx       int
	filter    textinput.Model
	filtering bool
	loading   bool
	err       string
}

func newChatsModel() chatsModel {
	filter := textinput.New()
	filter.Placeholder = "name or phone"
	filter.Prompt = "/ "
	filter.CharLimit = 64

	return chatsModel{filter: filter}
}

// visible applies the filter being typed on top of the last loaded list.
func (m chatsModel) visible() []models.Chat {
	term := strings.TrimSpace(m.filter.Value())
	out := make([]models.Chat, 0, len(m.chats))
	for _, c := range m.chats {
		if c.Matches(term) {
			out = append(out, c)
		}
	}
	return out
}

func (m chatsModel) selected() (models.Chat, bool) {
	list := m.visible()
	if m.idx < 0 || m.idx >= len(list) {
		return models.Chat{}, false
	}
	return list[m.idx], true
}

func (m *chatsModel) move(delta int) {
	n := len(m.visible())
	if n == 0 {
		m.idx = 0
		return
	}
	m.idx += delta
	if m.idx < 0 {
		m.idx = 0
	}
	if m.idx >= n {
		m.idx = n - 1
	}
}

func (m *chatsModel) setChats(chats []models.Chat) {
	m.chats = chats
	m.move(0)
}

func (m chatsModel) View() string {
	var b strings.Builder

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n\n")
	}

	list := m.visible()
	switch {
	case m.loading && len(m.chats) == 0:
		b.WriteString("Loading chats...")
	case len(list) == 0:
		b.WriteString("No chats")
	default:
		start := 0
		if m.idx >= chatsPageSize {
			start = m.idx - chatsPageSize + 1
		}
		end := min(start+chatsPageSize, len(list))
		for i := start; i < end; i++ {
			b.WriteString(renderChatLine(list[i], i == m.idx))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d of %d", m.idx+1, len(list))))
	}

	hot := "↑/↓: select  enter: open  /: filter  esc: back"
	if m.filtering {
		hot = "enter: apply  esc: clear"
	}
	return renderPage("CHATS", b.String(), hot)
}

func renderChatLine(c models.Chat, selected bool) string {
	name := c.Name
	if name == "" {
		name = c.Phone
	}
	if c.IsGroup {
		name = "[group] " + name
	}

	line := fmt.Sprintf("%-28s %5s  %s", fitText(name, 28), formatTime(c.Timestamp), fitText(c.LastMessage, 40))
	if c.Unread > 0 {
		line += fmt.Sprintf(" (%d)", c.Unread)
	}

	if selected {
		return selectedStyle.Render("> " + line)
	}
	return "  " + line
}
