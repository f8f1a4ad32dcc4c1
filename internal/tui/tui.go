// Package tui is the terminal front end of the console: the WhatsApp
// connection screen with its QR code, the chat list and conversations, the
// notification toasts and the status history.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/koafy/setter-console/internal/config"
	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/internal/service"
	"github.com/koafy/setter-console/internal/session"
	"github.com/koafy/setter-console/internal/store"
)

// ErrNoServices is returned by [New] without services.
var ErrNoServices = errors.New("tui: services are nil")

// Deps are the collaborators of the UI.
type Deps struct {
	Store    *session.Store
	Services *service.Services
	// Journal is optional; without it the history screen stays empty.
	Journal store.JournalRepository
	Workers config.Workers
	// ToastTTL <= 0 keeps notifications until they are dismissed.
	ToastTTL time.Duration
}

type TUI struct {
	deps   Deps
	logger *logger.Logger
}

func New(deps Deps, logger *logger.Logger) (*TUI, error) {
	if deps.Store == nil {
		return nil, ErrNoStore
	}
	if deps.Services == nil {
		return nil, ErrNoServices
	}
	return &TUI{deps: deps, logger: logger}, nil
}

// Run shows the UI until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	p := newPump()
	detach := p.attach(t.deps.Store)

	model := newAppModel(ctx, t.deps, p, t.logger)
	defer func() {
		detach()
		model.workers.StopAll()
		p.close()
	}()

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
