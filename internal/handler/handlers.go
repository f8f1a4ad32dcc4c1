// Package handler assembles the transport handlers of the console. Only the
// push-mode webhook receiver exists today.
package handler

import (
	"github.com/koafy/setter-console/internal/config"
	"github.com/koafy/setter-console/internal/handler/http"
	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/models"
)

// Handlers groups the transport handlers.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the webhook handler when cfg names a webhook address.
func NewHandlers(publisher http.StatusPublisher, cfg config.Events, build models.BuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.WebhookAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(publisher, cfg.WebhookSecret, build, logger),
	}, nil
}
