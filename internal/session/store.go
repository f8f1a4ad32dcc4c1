// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/koafy/setter-console/internal/adapter"
	"github.com/koafy/setter-console/internal/events"
	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/internal/notify"
	"github.com/koafy/setter-console/models"
)

// Store holds the connection state of one account. It is safe for
// concurrent use. Watchers and the redirect callback run without the store
// lock held, so they may call back into the store; watchers observe states
// in the order they were applied.
type Store struct {
	account models.Account
	api     API
	source  events.Source
	opts    Options
	logger  *logger.Logger

	notifications *notify.Queue

	mu          sync.Mutex
	status      models.ConnectionStatus
	bot         models.BotStatus
	loading     bool
	connecting  bool
	loadingGen  uint64
	loadingStop *time.Timer
	redirect    func()
	unsubscribe events.Unsubscribe
	started     bool
	closed      bool

	watchers    map[uint64]func(State)
	nextWatcher uint64
	outbox      []State
	flushing    bool
}

// NewStore creates a detached store for account. Nothing is subscribed until
// [Store.Start]. A zero account yields a store whose actions are no-ops.
func NewStore(account models.Account, api API, source events.Source, opts Options) *Store {
	opts = opts.withDefaults()

	return &Store{
		account:       account,
		api:           api,
		source:        source,
		opts:          opts,
		logger:        opts.Logger.WithAccount(account.ID),
		notifications: notify.NewQueue(opts.NotificationCap),
		status:        models.ConnectionStatus{Status: models.StatusDisconnected},
		watchers:      make(map[uint64]func(State)),
	}
}

// Account returns the account the store was created for.
func (s *Store) Account() models.Account {
	return s.account
}

// Start subscribes to the event source. It is a no-op without an account,
// on a closed store or when already started.
func (s *Store) Start() {
	s.mu.Lock()
	if s.started || s.closed || s.account.IsZero() || s.source == nil {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	unsubscribe := s.source.Subscribe(s.account.ID, s.applySnapshot, s.applySourceError)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		unsubscribe()
		return
	}
	s.unsubscribe = unsubscribe
	s.mu.Unlock()

	s.logger.Info().Str("func", "Store.Start").Msg("status subscription started")
}

// Close unsubscribes from the event source and stops the loading timer.
// Snapshots that arrive afterwards are dropped. Close is idempotent.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.stopLoadingTimerLocked()
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	s.logger.Info().Str("func", "Store.Close").Msg("status subscription closed")
}

// Watch registers fn to receive every state change. The returned func
// removes it.
func (s *Store) Watch(fn func(State)) (cancel func()) {
	s.mu.Lock()
	s.nextWatcher++
	id := s.nextWatcher
	s.watchers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Status returns the current connection status.
func (s *Store) Status() models.ConnectionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Bot returns the current bot status.
func (s *Store) Bot() models.BotStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bot
}

// Loading reports the local in-progress hint of connect / disconnect.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Notifications returns the queued notifications in insertion order.
func (s *Store) Notifications() []models.Notification {
	return s.notifications.List()
}

// RegisterRedirectCallback replaces the callback run on every transition
// into connected. nil clears it.
func (s *Store) RegisterRedirectCallback(fn func()) {
	s.mu.Lock()
	s.redirect = fn
	s.mu.Unlock()
}

// Connect asks the backend to start pairing. It is a no-op without an
// account, on a closed store, while another connect request is in flight,
// or while the status is connected, initializing or authenticated. The
// status itself only changes through later snapshots, except that a failed
// request sets it to error.
func (s *Store) Connect(ctx context.Context) {
	log := s.logger.With().Str("func", "Store.Connect").Logger()

	s.mu.Lock()
	if s.closed || s.account.IsZero() {
		s.mu.Unlock()
		return
	}
	if cur := s.status.Status; cur.BlocksConnect() {
		s.mu.Unlock()
		log.Debug().Str("status", cur.String()).Msg("connect ignored")
		return
	}
	if s.connecting {
		s.mu.Unlock()
		log.Debug().Msg("connect already in flight")
		return
	}
	s.connecting = true
	s.setLoadingLocked(true)
	s.enqueueLocked()
	s.mu.Unlock()
	s.flush()

	err := s.api.Connect(ctx, s.account.ID)

	s.mu.Lock()
	s.connecting = false
	if err == nil {
		s.mu.Unlock()
		log.Info().Msg("connect requested")
		return
	}

	log.Error().Err(err).Msg("connect failed")

	if s.closed {
		s.mu.Unlock()
		return
	}
	prev := s.status
	next := prev
	next.Status = models.StatusError
	next.Error = adapter.Reason(err)
	next = next.Normalized()
	s.status = next
	s.setLoadingLocked(false)
	s.enqueueLocked()
	s.mu.Unlock()

	s.record(prev, next)
	s.flush()
}

// Disconnect asks the backend to end the session. It is a no-op without an
// account, on a closed store, or while disconnected. A failed request only
// sets the error field.
func (s *Store) Disconnect(ctx context.Context) {
	log := s.logger.With().Str("func", "Store.Disconnect").Logger()

	s.mu.Lock()
	if s.closed || s.account.IsZero() || s.status.Status == models.StatusDisconnected {
		s.mu.Unlock()
		return
	}
	s.setLoadingLocked(true)
	s.enqueueLocked()
	s.mu.Unlock()
	s.flush()

	err := s.api.Disconnect(ctx, s.account.ID)
	if err == nil {
		log.Info().Msg("disconnect requested")
		return
	}

	log.Error().Err(err).Msg("disconnect failed")

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	prev := s.status
	next := prev
	next.Error = adapter.Reason(err)
	s.status = next
	s.setLoadingLocked(false)
	s.enqueueLocked()
	s.mu.Unlock()

	s.record(prev, next)
	s.flush()
}

// ToggleBotPause sets the bot pause flag to *pause, or flips it when pause is
// nil. The outcome is reported as a notification. Calls made while an update
// is in flight are ignored.
func (s *Store) ToggleBotPause(ctx context.Context, pause *bool) {
	log := s.logger.With().Str("func", "Store.ToggleBotPause").Logger()

	s.mu.Lock()
	if s.closed || s.account.IsZero() {
		s.mu.Unlock()
		return
	}
	if s.bot.IsLoading {
		s.mu.Unlock()
		log.Debug().Msg("bot pause update already in flight")
		return
	}
	target := !s.bot.IsPaused
	if pause != nil {
		target = *pause
	}
	s.bot.IsLoading = true
	s.enqueueLocked()
	s.mu.Unlock()
	s.flush()

	err := s.api.SetBotPaused(ctx, s.account.ID, target)

	s.mu.Lock()
	s.bot.IsLoading = false
	if err == nil {
		s.bot.IsPaused = target
	}
	s.enqueueLocked()
	s.mu.Unlock()
	s.flush()

	if err != nil {
		log.Error().Err(err).Bool("paused", target).Msg("bot pause update failed")
		s.AddNotification(models.Notification{
			Type:    models.NotificationError,
			Title:   botFailureTitle,
			Message: adapter.Reason(err),
		})
		return
	}

	log.Info().Bool("paused", target).Msg("bot pause updated")
	n := models.Notification{Type: models.NotificationSuccess, Title: botResumedTitle, Message: botResumedText}
	if target {
		n.Title, n.Message = botPausedTitle, botPausedText
	}
	s.AddNotification(n)
}

// CheckStatus fetches the status once and merges the fields the response
// carries into the current status. A success:false body only sets the error
// field; a transport failure sets the status to error.
func (s *Store) CheckStatus(ctx context.Context) {
	log := s.logger.With().Str("func", "Store.CheckStatus").Logger()

	s.mu.Lock()
	if s.closed || s.account.IsZero() {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	doc, err := s.api.GetStatus(ctx, s.account.ID)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	prev := s.status
	next := prev

	switch {
	case err == nil:
		next = mergeDocument(prev, doc)
		if doc.BotIsPaused != nil {
			s.bot.IsPaused = *doc.BotIsPaused
		}
	case errors.Is(err, adapter.ErrTransport):
		log.Error().Err(err).Msg("status check failed")
		next.Status = models.StatusError
		next.Error = adapter.Reason(err)
		next = next.Normalized()
	default:
		log.Warn().Err(err).Msg("status check rejected")
		next.Error = adapter.Reason(err)
	}

	s.status = next
	s.loading = s.loading && pendingLoading(next)
	if !s.loading {
		s.stopLoadingTimerLocked()
	}
	redirect := s.redirectOnEdgeLocked(prev, next)
	s.enqueueLocked()
	s.mu.Unlock()

	s.record(prev, next)
	s.flush()
	if redirect != nil {
		redirect()
	}
}

// AddNotification queues n and returns it with its id and timestamp.
func (s *Store) AddNotification(n models.Notification) models.Notification {
	stored := s.notifications.Add(n)

	s.mu.Lock()
	s.enqueueLocked()
	s.mu.Unlock()
	s.flush()

	if s.opts.Journal != nil && !s.account.IsZero() {
		ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
		defer cancel()
		if err := s.opts.Journal.RecordNotification(ctx, models.NotificationRecord{AccountID: s.account.ID, Notification: stored}); err != nil {
			s.logger.Warn().Str("func", "Store.AddNotification").Err(err).Msg("journal write failed")
		}
	}

	return stored
}

// DismissNotification removes one notification; unknown ids are ignored.
func (s *Store) DismissNotification(id int64) {
	if !s.notifications.Dismiss(id) {
		return
	}

	s.mu.Lock()
	s.enqueueLocked()
	s.mu.Unlock()
	s.flush()
}

// DismissAll clears the notification queue.
func (s *Store) DismissAll() {
	s.notifications.DismissAll()

	s.mu.Lock()
	s.enqueueLocked()
	s.mu.Unlock()
	s.flush()
}

// ExpireNotifications dismisses notifications older than ttl.
func (s *Store) ExpireNotifications(now time.Time, ttl time.Duration) {
	expired := s.notifications.Expired(now, ttl)
	if len(expired) == 0 {
		return
	}

	for _, n := range expired {
		s.notifications.Dismiss(n.ID)
	}

	s.mu.Lock()
	s.enqueueLocked()
	s.mu.Unlock()
	s.flush()
}

func (s *Store) applySnapshot(snap models.Snapshot) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.logger.Debug().Str("func", "Store.applySnapshot").Msg("snapshot for closed store dropped")
		return
	}

	prev := s.status
	next := snap.Status.Normalized()
	s.status = next
	if snap.BotPaused != nil {
		s.bot.IsPaused = *snap.BotPaused
	}
	s.setLoadingLocked(pendingLoading(next))
	redirect := s.redirectOnEdgeLocked(prev, next)
	s.enqueueLocked()
	s.mu.Unlock()

	s.logger.Debug().
		Str("func", "Store.applySnapshot").
		Str("status", next.Status.String()).
		Bool("has_qr", next.HasQR()).
		Msg("snapshot applied")

	s.record(prev, next)
	s.flush()
	if redirect != nil {
		redirect()
	}
}

func (s *Store) applySourceError(err error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	prev := s.status
	next := models.ConnectionStatus{
		Status:  models.StatusError,
		Error:   listenFailure,
		Message: adapter.Reason(err),
	}
	s.status = next
	s.setLoadingLocked(false)
	s.enqueueLocked()
	s.mu.Unlock()

	s.logger.Error().Str("func", "Store.applySourceError").Err(err).Msg("status subscription failed")

	s.record(prev, next)
	s.flush()
}

// mergeDocument overwrites only the fields doc carries with a non-empty
// value.
func mergeDocument(cur models.ConnectionStatus, doc models.StatusDocument) models.ConnectionStatus {
	if doc.Status != nil && *doc.Status != "" {
		cur.Status = models.ParseStatus(*doc.Status)
	}
	if doc.QRCodeURL != nil && *doc.QRCodeURL != "" {
		cur.QR = *doc.QRCodeURL
	}
	if doc.Error != nil && *doc.Error != "" {
		cur.Error = *doc.Error
	}
	if doc.Message != nil && *doc.Message != "" {
		cur.Message = *doc.Message
	}
	return cur.Normalized()
}

func (s *Store) redirectOnEdgeLocked(prev, next models.ConnectionStatus) func() {
	if prev.Status != models.StatusConnected && next.Status == models.StatusConnected {
		return s.redirect
	}
	return nil
}

func (s *Store) setLoadingLocked(loading bool) {
	s.loading = loading
	if !loading {
		s.stopLoadingTimerLocked()
		return
	}
	if s.loadingStop != nil {
		return
	}

	s.loadingGen++
	gen := s.loadingGen
	s.loadingStop = time.AfterFunc(s.opts.LoadingTimeout, func() { s.expireLoading(gen) })
}

func (s *Store) stopLoadingTimerLocked() {
	if s.loadingStop != nil {
		s.loadingStop.Stop()
		s.loadingStop = nil
	}
	s.loadingGen++
}

func (s *Store) expireLoading(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.loadingGen || !s.loading {
		s.mu.Unlock()
		return
	}
	s.loading = false
	s.loadingStop = nil
	s.enqueueLocked()
	s.mu.Unlock()

	s.logger.Warn().Str("func", "Store.expireLoading").Msg("no status update before loading timeout")
	s.flush()
}

func (s *Store) record(prev, next models.ConnectionStatus) {
	if s.opts.Journal == nil || prev == next {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()

	err := s.opts.Journal.RecordStatus(ctx, models.StatusEvent{
		AccountID:  s.account.ID,
		Status:     next.Status,
		HasQR:      next.HasQR(),
		Error:      next.Error,
		Message:    next.Message,
		RecordedAt: time.Now(),
	})
	if err != nil {
		s.logger.Warn().Str("func", "Store.record").Err(err).Msg("journal write failed")
	}
}

func (s *Store) stateLocked() State {
	return State{
		Account:       s.account,
		Status:        s.status,
		Bot:           s.bot,
		Loading:       s.loading,
		Notifications: s.notifications.List(),
	}
}

func (s *Store) enqueueLocked() {
	s.outbox = append(s.outbox, s.stateLocked())
}

// flush delivers queued states to watchers. Only one goroutine flushes at a
// time; states queued meanwhile are delivered by it, in order.
func (s *Store) flush() {
	s.mu.Lock()
	if s.flushing {
		s.mu.Unlock()
		return
	}
	s.flushing = true

	for len(s.outbox) > 0 {
		st := s.outbox[0]
		s.outbox = s.outbox[1:]
		watchers := make([]func(State), 0, len(s.watchers))
		for _, w := range s.watchers {
			watchers = append(watchers, w)
		}
		s.mu.Unlock()

		for _, w := range watchers {
			w(st)
		}

		s.mu.Lock()
	}

	s.flushing = false
	s.mu.Unlock()
}
