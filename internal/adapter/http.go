package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/koafy/setter-console/internal/config"
	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/internal/utils"
	"github.com/koafy/setter-console/models"
)

type httpSetterAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPSetterAdapter constructs the HTTP/REST implementation of [SetterAPI].
// It normalises the base URL from apiCfg.BaseURL, attaches the bearer key to
// every request and applies apiCfg.RequestTimeout.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewHTTPSetterAdapter(apiCfg config.API, logger *logger.Logger) (SetterAPI, error) {
	baseURL, err := normalizeBaseURL(apiCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(apiCfg.RequestTimeout).
		SetAuthToken(strings.TrimSpace(apiCfg.Key)).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &httpSetterAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func userPath(accountID string, parts ...string) string {
	p := "/users/" + url.PathEscape(accountID)
	for _, part := range parts {
		p += "/" + url.PathEscape(part)
	}
	return p
}

// do executes req against path and returns the decoded 2xx envelope.
func (h *httpSetterAdapter) do(op string, req *resty.Request, method, path string) (models.Envelope, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Debug().Str("func", op).Str("path", path).Err(err).Msg("request failed")
		return models.Envelope{}, transportError(op, err)
	}

	h.logger.Debug().
		Str("func", op).
		Str("path", path).
		Int("status_code", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("response received")

	if err = mapHTTPError(resp); err != nil {
		return models.Envelope{}, fmt.Errorf("%s: %w", op, err)
	}

	env, err := mapEnvelope(resp.Body())
	if err != nil {
		return env, fmt.Errorf("%s: %w", op, err)
	}

	return env, nil
}

// Connect implements [SetterAPI]. POST /users/{id}/connect.
func (h *httpSetterAdapter) Connect(ctx context.Context, accountID string) error {
	if accountID == "" {
		return ErrNoAccount
	}

	_, err := h.do("adapter.Connect", h.client.R().SetContext(ctx), resty.MethodPost, userPath(accountID, "connect"))
	return err
}

// Disconnect implements [SetterAPI]. POST /users/{id}/disconnect.
func (h *httpSetterAdapter) Disconnect(ctx context.Context, accountID string) error {
	if accountID == "" {
		return ErrNoAccount
	}

	_, err := h.do("adapter.Disconnect", h.client.R().SetContext(ctx), resty.MethodPost, userPath(accountID, "disconnect"))
	return err
}

// GetStatus implements [SetterAPI]. GET /users/{id}/status. The document is
// read from the envelope "data" field.
func (h *httpSetterAdapter) GetStatus(ctx context.Context, accountID string) (models.StatusDocument, error) {
	var doc models.StatusDocument
	if accountID == "" {
		return doc, ErrNoAccount
	}

	env, err := h.do("adapter.GetStatus", h.client.R().SetContext(ctx), resty.MethodGet, userPath(accountID, "status"))
	if err != nil {
		return doc, err
	}

	if err = decodeData(env, &doc); err != nil {
		return doc, fmt.Errorf("adapter.GetStatus: %w", err)
	}

	return doc, nil
}

// SetBotPaused implements [SetterAPI]. PUT /users/{id}/bot with
// {"isPaused": paused}.
func (h *httpSetterAdapter) SetBotPaused(ctx context.Context, accountID string, paused bool) error {
	if accountID == "" {
		return ErrNoAccount
	}

	req := h.client.R().
		SetContext(ctx).
		SetBody(models.BotPauseRequest{IsPaused: paused})

	_, err := h.do("adapter.SetBotPaused", req, resty.MethodPut, userPath(accountID, "bot"))
	return err
}

// Health implements [SetterAPI]. GET /health.
func (h *httpSetterAdapter) Health(ctx context.Context) error {
	_, err := h.do("adapter.Health", h.client.R().SetContext(ctx), resty.MethodGet, "/health")
	return err
}

// ListChats implements [SetterAPI]. GET /users/{id}/chats.
func (h *httpSetterAdapter) ListChats(ctx context.Context, accountID string) ([]models.Chat, error) {
	if accountID == "" {
		return nil, ErrNoAccount
	}

	env, err := h.do("adapter.ListChats", h.client.R().SetContext(ctx), resty.MethodGet, userPath(accountID, "chats"))
	if err != nil {
		return nil, err
	}

	chats := make([]models.Chat, 0)
	if err = decodeData(env, &chats); err != nil {
		return nil, fmt.Errorf("adapter.ListChats: %w", err)
	}

	return chats, nil
}

// ChatMessages implements [SetterAPI].
// GET /users/{id}/chats/{chat}/messages?limit=N.
func (h *httpSetterAdapter) ChatMessages(ctx context.Context, accountID, chatID string, limit int) ([]models.Message, error) {
	if accountID == "" {
		return nil, ErrNoAccount
	}

	req := h.client.R().SetContext(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	env, err := h.do("adapter.ChatMessages", req, resty.MethodGet, userPath(accountID, "chats", chatID, "messages"))
	if err != nil {
		return nil, err
	}

	messages := make([]models.Message, 0)
	if err = decodeData(env, &messages); err != nil {
		return nil, fmt.Errorf("adapter.ChatMessages: %w", err)
	}

	return messages, nil
}

// SendMessage implements [SetterAPI]. POST /users/{id}/chats/{chat}/messages.
func (h *httpSetterAdapter) SendMessage(ctx context.Context, accountID, chatID, text string) (models.Message, error) {
	var msg models.Message
	if accountID == "" {
		return msg, ErrNoAccount
	}

	req := h.client.R().
		SetContext(ctx).
		SetBody(models.SendMessageRequest{Message: text})

	env, err := h.do("adapter.SendMessage", req, resty.MethodPost, userPath(accountID, "chats", chatID, "messages"))
	if err != nil {
		return msg, err
	}

	if err = decodeData(env, &msg); err != nil {
		return msg, fmt.Errorf("adapter.SendMessage: %w", err)
	}

	return msg, nil
}

// decodeData unmarshals env.Data into v. Absent or null data leaves v as is.
func decodeData(env models.Envelope, v any) error {
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(env.Data, v); err != nil {
		return errors.Join(ErrDecode, err)
	}

	return nil
}
