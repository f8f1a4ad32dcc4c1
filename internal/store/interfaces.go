// Package store keeps the local SQLite journal of applied connection-status
// transitions and emitted notifications. The journal is write-mostly: the
// session store records into it and the history view reads it back.
package store

import (
	"context"

	"github.com/koafy/setter-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// JournalRepository persists and lists journal entries per account.
type JournalRepository interface {
	RecordStatus(ctx context.Context, event models.StatusEvent) error
	RecordNotification(ctx context.Context, record models.NotificationRecord) error

	// StatusHistory returns up to limit status events, newest first.
	StatusHistory(ctx context.Context, accountID string, limit int) ([]models.StatusEvent, error)

	// NotificationHistory returns up to limit notifications, newest first.
	NotificationHistory(ctx context.Context, accountID string, limit int) ([]models.NotificationRecord, error)

	// Prune drops entries of accountID recorded before the keep newest.
	Prune(ctx context.Context, accountID string, keep int) error
}
