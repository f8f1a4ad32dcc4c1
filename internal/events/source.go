// Package events delivers live connection status snapshots for one account.
//
// A [Source] hides the push mechanism. Two implementations exist: [Feed], an
// in-process hub fed by the webhook receiver, and [PollingSource], which
// long-polls GET /users/{id}/status. Both deliver the current snapshot right
// after Subscribe and then every change, in order, on a goroutine owned by
// the subscription. A missing status document is delivered as the synthetic
// [MissingSnapshot], never as an error.
package events

import (
	"context"

	"github.com/koafy/setter-console/models"
)

//go:generate mockgen -source=source.go -destination=../mock/events_source_mock.go -package=mock

// Unsubscribe cancels a subscription. It is idempotent; no callback starts
// after it returns, although one already running may still complete.
type Unsubscribe func()

// Source delivers status snapshots for an account.
type Source interface {
	Subscribe(accountID string, onUpdate func(models.Snapshot), onError func(error)) Unsubscribe
}

// StatusFetcher is the part of the Setter API the polling source needs.
type StatusFetcher interface {
	GetStatus(ctx context.Context, accountID string) (models.StatusDocument, error)
}

// MissingMessage is the message of the snapshot delivered for an absent
// status document.
const MissingMessage = "Status not found."

// MissingSnapshot is delivered when the account has no status document.
func MissingSnapshot() models.Snapshot {
	return models.Snapshot{
		Status: models.ConnectionStatus{
			Status:  models.StatusDisconnected,
			Message: MissingMessage,
		},
	}
}

// Normalize converts a wire document into a snapshot: the status string is
// parsed onto the closed set, qrCodeUrl becomes QR, and QR is dropped for
// statuses that cannot show one.
func Normalize(doc models.StatusDocument) models.Snapshot {
	var cs models.ConnectionStatus
	if doc.Status != nil {
		cs.Status = models.ParseStatus(*doc.Status)
	} else {
		cs.Status = models.StatusUnknown
	}
	if doc.QRCodeURL != nil {
		cs.QR = *doc.QRCodeURL
	}
	if doc.Error != nil {
		cs.Error = *doc.Error
	}
	if doc.Message != nil {
		cs.Message = *doc.Message
	}

	snap := models.Snapshot{Status: cs.Normalized()}
	if doc.BotIsPaused != nil {
		paused := *doc.BotIsPaused
		snap.BotPaused = &paused
	}

	return snap
}

// sameSnapshot compares snapshots by value, including the bot flag.
func sameSnapshot(a, b models.Snapshot) bool {
	if a.Status != b.Status {
		return false
	}
	if (a.BotPaused == nil) != (b.BotPaused == nil) {
		return false
	}
	return a.BotPaused == nil || *a.BotPaused == *b.BotPaused
}
