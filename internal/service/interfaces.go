// Package service holds the console's use cases that sit beside the
// connection state store: the chat list, an open conversation with optimistic
// sending, and application info.
package service

import (
	"context"

	"github.com/koafy/setter-console/models"
)

// ChatService lists the chats of an account and opens conversations.
type ChatService interface {
	// List returns the chats whose name or phone contains filter, most
	// recent first.
	List(ctx context.Context, accountID, filter string) ([]models.Chat, error)

	// Open returns a conversation bound to one chat.
	Open(accountID, chatID string) *Conversation
}

// AppInfoService exposes build metadata and the backend health probe.
type AppInfoService interface {
	BuildInfo() models.BuildInfo
	Health(ctx context.Context) error
}
