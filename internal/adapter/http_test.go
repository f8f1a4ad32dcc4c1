// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/koafy/setter-console/internal/config"
	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpSetterAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpSetterAdapter {
	t.Helper()
	a, err := NewHTTPSetterAdapter(config.API{
		BaseURL:        serverURL,
		Key:            "test-key",
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpSetterAdapter)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, code int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestNewHTTPSetterAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPSetterAdapter(config.API{BaseURL: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "with scheme", in: "https://api.test/setter-api/", want: "https://api.test/setter-api"},
		{name: "without scheme", in: "localhost:8080", want: "http://localhost:8080"},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Connect / Disconnect ─────────────────────────────────────────────────────

func TestConnect_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/u1/connect", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusOK, map[string]any{"success": true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	assert.NoError(t, a.Connect(context.Background(), "u1"))
}

func TestConnect_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, map[string]any{"success": false, "message": "session busy"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Connect(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, "session busy", Reason(err))
}

func TestConnect_NoAccount(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")
	assert.ErrorIs(t, a.Connect(context.Background(), ""), ErrNoAccount)
}

func TestConnect_Transport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	err := a.Connect(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, "connection lost", Reason(err))
}

func TestDisconnect_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/u1/disconnect", r.URL.Path)
		writeEnvelope(t, w, http.StatusInternalServerError, map[string]any{"success": false, "message": "whatsapp client crashed"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Disconnect(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Equal(t, "whatsapp client crashed", Reason(err))
}

// ── GetStatus ────────────────────────────────────────────────────────────────

func TestGetStatus_PartialDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/u1/status", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"status": "connected", "botIsPaused": true},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	doc, err := a.GetStatus(context.Background(), "u1")

	require.NoError(t, err)
	require.NotNil(t, doc.Status)
	assert.Equal(t, "connected", *doc.Status)
	require.NotNil(t, doc.BotIsPaused)
	assert.True(t, *doc.BotIsPaused)
	assert.Nil(t, doc.QRCodeURL)
	assert.Nil(t, doc.Error)
	assert.Nil(t, doc.Message)
}

func TestGetStatus_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such document"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetStatus(context.Background(), "u1")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "no such document", Reason(err))
}

func TestGetStatus_MalformedData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, map[string]any{"success": true, "data": "oops"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetStatus(context.Background(), "u1")

	assert.ErrorIs(t, err, ErrDecode)
}

// ── Bot ──────────────────────────────────────────────────────────────────────

func TestSetBotPaused_SendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/u1/bot", r.URL.Path)

		var body models.BotPauseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body.IsPaused)

		writeEnvelope(t, w, http.StatusOK, map[string]any{"success": true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	assert.NoError(t, a.SetBotPaused(context.Background(), "u1", true))
}

func TestHealth_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	assert.ErrorIs(t, a.Health(context.Background()), ErrUnauthorized)
}

// ── Chats ────────────────────────────────────────────────────────────────────

func TestListChats_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/u1/chats", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": []map[string]any{
				{"id": "c1", "name": "Ana", "phone": "+34600000001", "unread": 2},
				{"id": "c2", "name": "Luis", "phone": "+34600000002"},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	chats, err := a.ListChats(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, "Ana", chats[0].Name)
	assert.Equal(t, 2, chats[0].Unread)
}

func TestListChats_NoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, map[string]any{"success": true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	chats, err := a.ListChats(context.Background(), "u1")

	require.NoError(t, err)
	assert.NotNil(t, chats)
	assert.Empty(t, chats)
}

func TestChatMessages_Limit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/u1/chats/c1/messages", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data":    []map[string]any{{"id": "m1", "text": "hola", "fromMe": false}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	msgs, err := a.ChatMessages(context.Background(), "u1", "c1", 50)

	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hola", msgs[0].Text)
}

func TestSendMessage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body models.SendMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hi there", body.Message)

		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"id": "wamid.1", "text": "hi there", "fromMe": true},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	msg, err := a.SendMessage(context.Background(), "u1", "c1", "hi there")

	require.NoError(t, err)
	assert.Equal(t, "wamid.1", msg.ID)
	assert.True(t, msg.FromMe)
}

func TestReason(t *testing.T) {
	assert.Empty(t, Reason(nil))
	assert.Equal(t, "boom", Reason(assertError("boom")))
	assert.Equal(t, "request rejected", Reason(&apiError{kind: ErrRejected}))
}

type assertError string

func (e assertError) Error() string { return string(e) }
