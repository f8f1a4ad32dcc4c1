package server

import (
	"github.com/koafy/setter-console/internal/config"
	"github.com/koafy/setter-console/internal/handler"
	"github.com/koafy/setter-console/internal/logger"
)

// NewServer returns the webhook server for handlers. It fails when no HTTP
// handler was created.
func NewServer(handlers *handler.Handlers, cfg config.Events, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.WebhookAddress == "" {
		return nil, errNoServersAreCreated
	}

	return newHTTPServer(handlers.HTTP.Init(), cfg.WebhookAddress, logger), nil
}
