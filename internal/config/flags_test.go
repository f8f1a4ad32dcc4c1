package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port", addr: NetAddress{Port: 9000}, expected: ":9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:9000", want: NetAddress{Host: "localhost", Port: 9000}},
		{name: "ip", input: "127.0.0.1:8081", want: NetAddress{Host: "127.0.0.1", Port: 8081}},
		{name: "all interfaces", input: ":8081", want: NetAddress{Port: 8081}},
		{name: "no port", input: "localhost", expectError: true},
		{name: "bad port", input: "localhost:abc", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "bad host", input: "not-an-ip:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-api-url", "https://api.test",
		"-api-key", "k",
		"-request-timeout", "7s",
		"-account", "user-9",
		"-events", "push",
		"-webhook", "localhost:9100",
		"-poll-interval", "2s",
		"-loading-timeout", "11s",
		"-d", "j.db",
		"-log-level", "warn",
		"-config", "cfg.json",
		"-env-file", "custom.env",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://api.test", cfg.API.BaseURL)
	assert.Equal(t, "k", cfg.API.Key)
	assert.Equal(t, 7*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "user-9", cfg.Account.ID)
	assert.Equal(t, EventsModePush, cfg.Events.Mode)
	assert.Equal(t, "localhost:9100", cfg.Events.WebhookAddress)
	assert.Equal(t, 2*time.Second, cfg.Events.PollInterval)
	assert.Equal(t, 11*time.Second, cfg.Session.LoadingTimeout)
	assert.Equal(t, "j.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "custom.env", cfg.DotEnvPath)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-nope"})
	assert.Error(t, err)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
