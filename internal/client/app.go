package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/koafy/setter-console/internal/adapter"
	"github.com/koafy/setter-console/internal/config"
	"github.com/koafy/setter-console/internal/events"
	"github.com/koafy/setter-console/internal/handler"
	"github.com/koafy/setter-console/internal/identity"
	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/internal/server"
	"github.com/koafy/setter-console/internal/service"
	"github.com/koafy/setter-console/internal/session"
	"github.com/koafy/setter-console/internal/store"
	"github.com/koafy/setter-console/internal/tui"
	"github.com/koafy/setter-console/models"
)

const (
	startupHealthTimeout = 5 * time.Second
	// journalRetention is how many rows per table survive the startup prune.
	journalRetention = 1000
)

// App is the console process: everything the terminal UI needs, built from
// one configuration.
type App struct {
	cfg    *config.StructuredConfig
	logger *logger.Logger

	account  models.Account
	api      adapter.SetterAPI
	storages *store.Storages
	source   events.Source
	server   server.Server
	manager  *session.Manager
	services *service.Services
	ui       *tui.TUI
}

// NewApp builds the application. Nothing is started until [App.Run].
func NewApp(ctx context.Context, cfg *config.StructuredConfig, build models.BuildInfo, log *logger.Logger) (*App, error) {
	account, err := identity.Resolve(cfg.Account)
	switch {
	case errors.Is(err, identity.ErrNoIdentity):
		log.Warn().Str("func", "NewApp").Msg("no account configured, actions are disabled")
	case err != nil:
		return nil, fmt.Errorf("resolve account: %w", err)
	}

	api, err := adapter.NewHTTPSetterAdapter(cfg.API, log)
	if err != nil {
		return nil, fmt.Errorf("create setter api adapter: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	a := &App{
		cfg:      cfg,
		logger:   log,
		account:  account,
		api:      api,
		storages: storages,
	}

	if err = a.initEventSource(build); err != nil {
		a.Close()
		return nil, err
	}

	a.manager = session.NewManager(api, a.source, session.Options{
		LoadingTimeout:  cfg.Session.LoadingTimeout,
		NotificationCap: cfg.Session.NotificationCap,
		Journal:         storages.Journal,
		Logger:          log,
	})
	a.services = service.NewServices(api, a.manager, build, log)

	return a, nil
}

// initEventSource selects the polling source or the webhook-fed hub.
func (a *App) initEventSource(build models.BuildInfo) error {
	if a.cfg.Events.Mode != config.EventsModePush {
		a.source = events.NewPollingSource(a.api, a.cfg.Events.PollInterval, a.logger)
		return nil
	}

	feed := events.NewFeed(a.logger)
	handlers, err := handler.NewHandlers(feed, a.cfg.Events, build, a.logger)
	if err != nil {
		return fmt.Errorf("create webhook handlers: %w", err)
	}
	srv, err := server.NewServer(handlers, a.cfg.Events, a.logger)
	if err != nil {
		return fmt.Errorf("create webhook server: %w", err)
	}
	srv.OnFailure(feed.FailAll)

	a.source = feed
	a.server = srv
	return nil
}

// Run starts the webhook receiver when configured, subscribes the account
// and shows the terminal UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if a.server != nil {
		if err := a.server.RunServer(); err != nil {
			return fmt.Errorf("start webhook receiver: %w", err)
		}
		a.logger.Info().Str("func", "App.Run").Str("addr", a.server.Addr()).Msg("webhook receiver listening")
	}

	a.checkHealth(ctx)
	a.pruneJournal(ctx)

	st := a.manager.Switch(a.account)

	ui, err := tui.New(tui.Deps{
		Store:    st,
		Services: a.services,
		Journal:  a.storages.Journal,
		Workers:  a.cfg.Workers,
		ToastTTL: a.cfg.TUI.ToastTTL,
	}, a.logger)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}
	a.ui = ui

	return a.ui.Run(ctx)
}

func (a *App) checkHealth(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, startupHealthTimeout)
	defer cancel()

	if err := a.services.AppInfoService.Health(ctx); err != nil {
		a.logger.Warn().Str("func", "App.checkHealth").Err(err).Msg("setter api is not reachable yet")
		return
	}
	a.logger.Info().Str("func", "App.checkHealth").Msg("setter api is reachable")
}

func (a *App) pruneJournal(ctx context.Context) {
	if a.account.IsZero() {
		return
	}
	if err := a.storages.Journal.Prune(ctx, a.account.ID, journalRetention); err != nil {
		a.logger.Warn().Str("func", "App.pruneJournal").Err(err).Msg("failed to prune journal")
	}
}

// Close stops the session, the webhook receiver and the journal. It is safe
// to call more than once.
func (a *App) Close() {
	if a.manager != nil {
		a.manager.Close()
	}
	if a.server != nil {
		a.server.Shutdown()
	}
	if a.storages != nil {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.Close").Msg("failed to close storages")
		}
	}
}
