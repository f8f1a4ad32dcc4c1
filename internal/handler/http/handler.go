package http

import (
	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/internal/utils"
	"github.com/koafy/setter-console/internal/validators"
	"github.com/koafy/setter-console/models"
)

// StatusPublisher receives the documents posted to the webhook.
// [events.Feed] implements it.
type StatusPublisher interface {
	Publish(accountID string, doc *models.StatusDocument)
	Current(accountID string) (models.StatusDocument, bool)
}

// Handler serves the webhook routes.
type Handler struct {
	publisher StatusPublisher
	secret    string
	build     models.BuildInfo
	traceIDs  *utils.UUIDGenerator
	validator validators.Validator

	logger *logger.Logger
}

// NewHandler returns a Handler publishing into publisher. An empty secret
// disables the Authorization check.
func NewHandler(publisher StatusPublisher, secret string, build models.BuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		publisher: publisher,
		secret:    secret,
		build:     build,
		traceIDs:  utils.NewUUIDGenerator(""),
		validator: validators.NewStatusDocumentValidator(),
		logger:    logger,
	}
}
