package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	cfg := Defaults()
	cfg.API.BaseURL = "https://api.test"
	cfg.API.Key = "k"
	return cfg
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{API: API{Key: "override"}},
		&StructuredConfig{Events: Events{PollInterval: time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.API.Key)
	assert.Equal(t, "https://api.test", cfg.API.BaseURL)
	assert.Equal(t, time.Second, cfg.Events.PollInterval)
	assert.Equal(t, 15*time.Second, cfg.API.RequestTimeout)
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAPIConfigs)
}

func TestWithJSON_NotSpecified(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	b.withJSON()
	assert.Error(t, b.err)
}

func TestLoadConfig_FlagsOverrideEnv_JSONOverridesFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"API_BASE_URL": "https://env.test",
		"API_KEY":      "env-key",
		"ACCOUNT_ID":   "env-user",
	})
	jsonPath := writeJSONFile(t, `{"account": {"id": "json-user"}}`)

	cfg, err := LoadConfig([]string{
		"-api-key", "flag-key",
		"-account", "flag-user",
		"-config", jsonPath,
		"-env-file", filepath.Join(t.TempDir(), "none.env"),
	})
	require.NoError(t, err)

	assert.Equal(t, "https://env.test", cfg.API.BaseURL)
	assert.Equal(t, "flag-key", cfg.API.Key)
	assert.Equal(t, "json-user", cfg.Account.ID)
	assert.Equal(t, EventsModePoll, cfg.Events.Mode)
	assert.Equal(t, 30*time.Second, cfg.Workers.ChatsInterval)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing key", mutate: func(c *StructuredConfig) { c.API.Key = "" }, wantErr: ErrInvalidAPIConfigs},
		{name: "zero timeout", mutate: func(c *StructuredConfig) { c.API.RequestTimeout = 0 }, wantErr: ErrInvalidAPIConfigs},
		{name: "unknown mode", mutate: func(c *StructuredConfig) { c.Events.Mode = "carrier-pigeon" }, wantErr: ErrInvalidEventsConfigs},
		{name: "push without webhook", mutate: func(c *StructuredConfig) { c.Events.Mode = EventsModePush }, wantErr: ErrInvalidEventsConfigs},
		{name: "push with webhook", mutate: func(c *StructuredConfig) {
			c.Events.Mode = EventsModePush
			c.Events.WebhookAddress = "localhost:9000"
		}},
		{name: "zero loading timeout", mutate: func(c *StructuredConfig) { c.Session.LoadingTimeout = 0 }, wantErr: ErrInvalidSessionConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "zero chats interval", mutate: func(c *StructuredConfig) { c.Workers.ChatsInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
