package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koafy/setter-console/internal/config"
	"github.com/koafy/setter-console/internal/events"
	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/models"
)

func TestNewHandlers_WithWebhookAddress(t *testing.T) {
	cfg := config.Events{Mode: config.EventsModePush, WebhookAddress: "localhost:9000"}

	h, err := NewHandlers(events.NewFeed(logger.Nop()), cfg, models.BuildInfo{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(events.NewFeed(logger.Nop()), config.Events{}, models.BuildInfo{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
