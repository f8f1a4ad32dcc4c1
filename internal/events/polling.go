package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/koafy/setter-console/internal/adapter"
	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/internal/workers"
	"github.com/koafy/setter-console/models"
)

// PollingSource emulates a push subscription by polling the status endpoint.
// The first result is always delivered; later ones only when they differ
// from the previous delivery. A 404 is delivered as [MissingSnapshot].
type PollingSource struct {
	api      StatusFetcher
	interval time.Duration
	logger   *logger.Logger
}

// NewPollingSource returns a PollingSource that polls every interval.
func NewPollingSource(api StatusFetcher, interval time.Duration, logger *logger.Logger) *PollingSource {
	return &PollingSource{api: api, interval: interval, logger: logger}
}

// Subscribe implements [Source]. Unsubscribe stops the poller and waits for
// an in-flight request to return.
func (s *PollingSource) Subscribe(accountID string, onUpdate func(models.Snapshot), onError func(error)) Unsubscribe {
	box := newMailbox(onUpdate, onError)
	log := s.logger.WithAccount(accountID)

	var last *models.Snapshot
	poller := workers.NewPoller("status:"+accountID, s.interval, func(ctx context.Context) {
		doc, err := s.api.GetStatus(ctx, accountID)
		if ctx.Err() != nil {
			return
		}

		var snap models.Snapshot
		switch {
		case err == nil:
			snap = Normalize(doc)
		case errors.Is(err, adapter.ErrNotFound):
			snap = MissingSnapshot()
		default:
			log.Warn().Str("func", "PollingSource.poll").Err(err).Msg("status poll failed")
			last = nil
			box.fail(err)
			return
		}

		if last != nil && sameSnapshot(*last, snap) {
			return
		}
		last = &snap
		box.update(snap)
	}, log)

	poller.Start(context.Background())

	var once sync.Once
	return func() {
		once.Do(func() {
			poller.Stop()
			box.close()
		})
	}
}
