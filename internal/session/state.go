package session

import (
	"time"

	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/models"
)

// DefaultLoadingTimeout clears a loading hint no snapshot has cleared.
const DefaultLoadingTimeout = 20 * time.Second

const (
	listenFailure   = "Failed to listen to status updates"
	journalTimeout  = 5 * time.Second
	botPausedTitle  = "Bot paused"
	botPausedText   = "The bot will not reply to incoming messages."
	botResumedTitle = "Bot resumed"
	botResumedText  = "The bot is replying to incoming messages again."
	botFailureTitle = "Could not update the bot"
)

// State is a read-only copy of everything a view renders.
type State struct {
	Account       models.Account
	Status        models.ConnectionStatus
	Bot           models.BotStatus
	Loading       bool
	Notifications []models.Notification
}

// Options tune a Store. Zero values select defaults.
type Options struct {
	// LoadingTimeout bounds how long the loading hint may stay set.
	LoadingTimeout time.Duration
	// NotificationCap bounds the notification queue; see notify.NewQueue.
	NotificationCap int
	// Journal is optional.
	Journal Journal
	Logger  *logger.Logger
}

func (o Options) withDefaults() Options {
	if o.LoadingTimeout <= 0 {
		o.LoadingTimeout = DefaultLoadingTimeout
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	return o
}

// pendingLoading is the loading rule applied on every snapshot: a pairing
// step is running and there is nothing to show yet.
func pendingLoading(cs models.ConnectionStatus) bool {
	return cs.Status.Pending() && !cs.HasQR()
}
