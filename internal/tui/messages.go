package tui

import (
	"time"

	"github.com/koafy/setter-console/internal/session"
	"github.com/koafy/setter-console/models"
)

// stateMsg carries the newest session state.
type stateMsg struct {
	state session.State
}

// redirectMsg is sent when the session becomes connected.
type redirectMsg struct{}

type chatsLoadedMsg struct {
	chats []models.Chat
	err   error
}

type messagesLoadedMsg struct {
	chatID string
	err    error
}

type messageSentMsg struct {
	chatID string
	err    error
}

type historyLoadedMsg struct {
	events        []models.StatusEvent
	notifications []models.NotificationRecord
	err           error
}

type copiedMsg struct {
	err error
}

type toastTickMsg struct {
	now time.Time
}

type clearStatusMsg struct{}

type healthMsg struct {
	err error
}
