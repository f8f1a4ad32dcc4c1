package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/koafy/setter-console/internal/adapter"
	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/internal/utils"
	"github.com/koafy/setter-console/models"
)

// DefaultMessageLimit is how many recent messages a refresh loads.
const DefaultMessageLimit = 50

const tempIDPrefix = "temp-"

const (
	sentTitle       = "Message sent"
	sentText        = "The message was sent successfully"
	sendFailedTitle = "Failed to send message"
)

// Conversation is the message list of one open chat. Messages staged locally
// stay in the list with state sending until the backend answers, then they are
// replaced by the server copy or marked failed.
type Conversation struct {
	api       ChatAPI
	notifier  Notifier
	accountID string
	chatID    string
	ids       *utils.UUIDGenerator
	logger    *logger.Logger

	mu       sync.Mutex
	messages []models.Message
}

// ChatID returns the chat the conversation is bound to.
func (c *Conversation) ChatID() string {
	return c.chatID
}

// Messages returns a copy of the current message list, oldest first.
func (c *Conversation) Messages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Refresh reloads the last [DefaultMessageLimit] messages from the backend.
// Local messages that are still sending or failed are kept after them.
func (c *Conversation) Refresh(ctx context.Context) error {
	if err := c.check(); err != nil {
		return err
	}

	fetched, err := c.api.ChatMessages(ctx, c.accountID, c.chatID, DefaultMessageLimit)
	if err != nil {
		c.logger.Err(err).Str("func", "Conversation.Refresh").Str("chat_id", c.chatID).Msg("failed to load messages")
		return fmt.Errorf("load messages: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]models.Message, 0, len(fetched)+len(c.messages))
	next = append(next, fetched...)
	for _, m := range c.messages {
		if isLocal(m) {
			next = append(next, m)
		}
	}
	c.messages = next

	return nil
}

// Stage appends a local message in state sending and returns it.
func (c *Conversation) Stage(text string) (models.Message, error) {
	if err := c.check(); err != nil {
		return models.Message{}, err
	}
	if strings.TrimSpace(text) == "" {
		return models.Message{}, ErrEmptyMessage
	}

	msg := models.Message{
		ID:        c.ids.Generate(),
		Text:      text,
		FromMe:    true,
		Timestamp: time.Now(),
		State:     models.MessageSending,
	}

	c.mu.Lock()
	c.messages = append(c.messages, msg)
	c.mu.Unlock()

	return msg, nil
}

// Deliver sends the staged message tempID. On success the entry is replaced
// by the server message in state sent, otherwise it is marked failed. Either
// way a notification is emitted. Delivering a failed message retries it.
func (c *Conversation) Deliver(ctx context.Context, tempID string) (models.Message, error) {
	c.mu.Lock()
	idx := c.indexLocked(tempID)
	if idx < 0 {
		c.mu.Unlock()
		return models.Message{}, ErrUnknownMessage
	}
	c.messages[idx].State = models.MessageSending
	staged := c.messages[idx]
	c.mu.Unlock()

	sent, err := c.api.SendMessage(ctx, c.accountID, c.chatID, staged.Text)
	if err != nil {
		c.logger.Err(err).Str("func", "Conversation.Deliver").Str("chat_id", c.chatID).Msg("failed to send message")

		staged.State = models.MessageFailed
		c.replace(tempID, staged)
		c.notify(models.NotificationError, sendFailedTitle, adapter.Reason(err))
		return staged, fmt.Errorf("send message: %w", err)
	}

	if sent.ID == "" {
		sent.ID = tempID
	}
	if sent.Text == "" {
		sent.Text = staged.Text
	}
	if sent.Timestamp.IsZero() {
		sent.Timestamp = staged.Timestamp
	}
	sent.FromMe = true
	sent.State = models.MessageSent

	c.replace(tempID, sent)
	c.notify(models.NotificationSuccess, sentTitle, sentText)

	return sent, nil
}

// Send stages text and delivers it.
func (c *Conversation) Send(ctx context.Context, text string) (models.Message, error) {
	staged, err := c.Stage(text)
	if err != nil {
		return models.Message{}, err
	}
	return c.Deliver(ctx, staged.ID)
}

func (c *Conversation) check() error {
	if c.accountID == "" {
		return ErrNoAccount
	}
	if c.chatID == "" {
		return ErrNoChat
	}
	return nil
}

func (c *Conversation) replace(id string, msg models.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.indexLocked(id); idx >= 0 {
		c.messages[idx] = msg
	}
}

func (c *Conversation) indexLocked(id string) int {
	for i, m := range c.messages {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (c *Conversation) notify(kind models.NotificationType, title, text string) {
	if c.notifier == nil {
		return
	}
	c.notifier.AddNotification(models.Notification{Type: kind, Title: title, Message: text})
}

func isLocal(m models.Message) bool {
	return strings.HasPrefix(m.ID, tempIDPrefix) &&
		(m.State == models.MessageSending || m.State == models.MessageFailed)
}
