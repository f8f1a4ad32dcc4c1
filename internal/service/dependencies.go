package service

import (
	"context"

	"github.com/koafy/setter-console/models"
)

//go:generate mockgen -source=dependencies.go -destination=../mock/service_mock.go -package=mock

// ChatAPI is the part of the Setter API the chat views need.
type ChatAPI interface {
	ListChats(ctx context.Context, accountID string) ([]models.Chat, error)
	ChatMessages(ctx context.Context, accountID, chatID string, limit int) ([]models.Message, error)
	SendMessage(ctx context.Context, accountID, chatID, text string) (models.Message, error)
}

// HealthChecker reports whether the backend answers.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Notifier receives user-facing notifications. The session store implements
// it.
type Notifier interface {
	AddNotification(n models.Notification) models.Notification
}
