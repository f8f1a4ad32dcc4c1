package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	p := writeJSONFile(t, `{
		"api": {"base_url": "https://api.test", "key": "k", "request_timeout": "12s"},
		"account": {"id": "user-1", "name": "Ops"},
		"events": {"mode": "poll", "poll_interval": "4s"},
		"session": {"loading_timeout": "25s", "notification_cap": 10},
		"storage": {"db": {"dsn": "journal.db"}},
		"workers": {"chats_interval": "1m", "messages_interval": "20s"},
		"log": {"level": "error", "file": "x.log"},
		"tui": {"toast_ttl": "5s"}
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "https://api.test", cfg.API.BaseURL)
	assert.Equal(t, 12*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "user-1", cfg.Account.ID)
	assert.Equal(t, "Ops", cfg.Account.Name)
	assert.Equal(t, 4*time.Second, cfg.Events.PollInterval)
	assert.Equal(t, 25*time.Second, cfg.Session.LoadingTimeout)
	assert.Equal(t, 10, cfg.Session.NotificationCap)
	assert.Equal(t, "journal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.ChatsInterval)
	assert.Equal(t, 5*time.Second, cfg.TUI.ToastTTL)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := parseJSON(writeJSONFile(t, `{"api": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", in: `"30s"`, want: 30 * time.Second},
		{name: "number", in: `1000000000`, want: time.Second},
		{name: "bad string", in: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
