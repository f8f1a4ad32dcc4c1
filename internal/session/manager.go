package session

import (
	"sync"

	"github.com/koafy/setter-console/internal/events"
	"github.com/koafy/setter-console/models"
)

// Manager owns the store of the current account.
type Manager struct {
	api    API
	source events.Source
	opts   Options

	mu      sync.Mutex
	current *Store
}

// NewManager returns a Manager holding a detached store without account.
func NewManager(api API, source events.Source, opts Options) *Manager {
	opts = opts.withDefaults()
	return &Manager{
		api:     api,
		source:  source,
		opts:    opts,
		current: NewStore(models.Account{}, api, source, opts),
	}
}

// Current returns the active store.
func (m *Manager) Current() *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Switch replaces the active store with a fresh one for account: the old
// store is closed, and its subscription cancelled, before the new one
// subscribes. Switching to the account already active returns the current
// store unchanged. A zero account leaves a store whose actions are no-ops.
func (m *Manager) Switch(account models.Account) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && m.current.Account() == account {
		return m.current
	}

	if m.current != nil {
		m.current.Close()
	}

	m.opts.Logger.Info().
		Str("func", "Manager.Switch").
		Str("account_id", account.ID).
		Msg("switching account")

	m.current = NewStore(account, m.api, m.source, m.opts)
	m.current.Start()
	return m.current
}

// AddNotification adds n to the queue of the active store.
func (m *Manager) AddNotification(n models.Notification) models.Notification {
	return m.Current().AddNotification(n)
}

// Close closes the active store.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil {
		m.current.Close()
	}
}
