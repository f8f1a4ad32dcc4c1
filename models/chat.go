package models

import (
	"strings"
	"time"
)

// Chat is one WhatsApp conversation as listed by the backend.
type Chat struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	IsGroup     bool      `json:"isGroup"`
	LastMessage string    `json:"lastMessage"`
	Unread      int       `json:"unread"`
	Timestamp   time.Time `json:"timestamp"`
}

// Matches reports whether the chat name (case-insensitive) or phone contains
// term. An empty term matches every chat.
func (c Chat) Matches(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(term)) ||
		strings.Contains(c.Phone, term)
}

// MessageState is the delivery state of a message.
type MessageState string

const (
	MessageSending   MessageState = "sending"
	MessageSent      MessageState = "sent"
	MessageDelivered MessageState = "delivered"
	MessageRead      MessageState = "read"
	MessageFailed    MessageState = "failed"
)

// Message is a single chat message.
type Message struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	FromMe    bool         `json:"fromMe"`
	Timestamp time.Time    `json:"timestamp"`
	State     MessageState `json:"status,omitempty"`
}

// SendMessageRequest is the body of POST /users/{id}/chats/{chat}/messages.
type SendMessageRequest struct {
	Message string `json:"message"`
}
