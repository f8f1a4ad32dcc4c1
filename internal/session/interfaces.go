// Package session is the console's single source of truth for the WhatsApp
// connection of the current account.
//
// A [Store] applies status snapshots from an [events.Source] in arrival
// order, derives the loading hint, runs the connect / disconnect / bot pause
// actions against the Setter API and keeps the notification queue. It is the
// boundary that turns every remote failure into state or a notification;
// views never receive errors from it.
//
// A [Manager] owns at most one Store and replaces it when the account
// changes, so two live subscriptions never coexist.
package session

import (
	"context"

	"github.com/koafy/setter-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// API is the part of the Setter API the store calls.
type API interface {
	Connect(ctx context.Context, accountID string) error
	Disconnect(ctx context.Context, accountID string) error
	GetStatus(ctx context.Context, accountID string) (models.StatusDocument, error)
	SetBotPaused(ctx context.Context, accountID string, paused bool) error
}

// Journal persists applied status transitions and emitted notifications.
// Failures are logged by the store and otherwise ignored.
type Journal interface {
	RecordStatus(ctx context.Context, event models.StatusEvent) error
	RecordNotification(ctx context.Context, record models.NotificationRecord) error
}
