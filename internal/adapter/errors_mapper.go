package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/koafy/setter-console/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := failureMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return &apiError{kind: ErrBadRequest, msg: msg}
	case http.StatusUnauthorized:
		return &apiError{kind: ErrUnauthorized, msg: msg}
	case http.StatusForbidden:
		return &apiError{kind: ErrForbidden, msg: msg}
	case http.StatusNotFound:
		return &apiError{kind: ErrNotFound, msg: msg}
	case http.StatusConflict:
		return &apiError{kind: ErrConflict, msg: msg}
	case http.StatusBadGateway:
		return &apiError{kind: ErrBadGateway, msg: msg}
	case http.StatusInternalServerError:
		return &apiError{kind: ErrInternalServerError, msg: msg}
	default:
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

// failureMessage prefers the envelope "message" field and falls back to the
// raw body text.
func failureMessage(body []byte) string {
	var env models.Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return strings.TrimSpace(string(body))
}

// mapEnvelope decodes a 2xx body and turns success:false into [ErrRejected].
// An empty body counts as success.
func mapEnvelope(body []byte) (models.Envelope, error) {
	var env models.Envelope
	if len(strings.TrimSpace(string(body))) == 0 {
		return env, nil
	}

	if err := json.Unmarshal(body, &env); err != nil {
		return env, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if env.Failed() {
		return env, &apiError{kind: ErrRejected, msg: env.Message}
	}

	return env, nil
}

func transportError(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrTransport, err)
}
