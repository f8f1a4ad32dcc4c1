package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/koafy/setter-console/internal/events"
	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/internal/utils"
	"github.com/koafy/setter-console/models"
)

// maxDocumentSize bounds a posted status document; QR data URIs are a few KB.
const maxDocumentSize = 1 << 20

// publishStatus accepts either a bare status document or one wrapped in the
// {"success", "data"} envelope.
func (h *Handler) publishStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	accountID, _ := utils.GetAccountIDFromContext(r.Context())

	doc, err := decodeStatusDocument(http.MaxBytesReader(w, r.Body, maxDocumentSize))
	if err == nil {
		if vErr := h.validator.Validate(r.Context(), doc); vErr != nil {
			err = fmt.Errorf("%w: %w", ErrInvalidDocument, vErr)
		}
	}
	if err != nil {
		log.Err(err).Str("func", "Handler.publishStatus").Msg("invalid status document")
		utils.WriteFailure(w, messageFromError(err), statusFromError(err))
		return
	}

	h.publisher.Publish(accountID, &doc)
	log.Debug().
		Str("func", "Handler.publishStatus").
		Str("status", models.ParseStatus(deref(doc.Status)).String()).
		Msg("status document published")

	utils.WriteSuccess(w, doc, http.StatusAccepted)
}

func (h *Handler) clearStatus(w http.ResponseWriter, r *http.Request) {
	accountID, _ := utils.GetAccountIDFromContext(r.Context())
	h.publisher.Publish(accountID, nil)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) currentStatus(w http.ResponseWriter, r *http.Request) {
	accountID, _ := utils.GetAccountIDFromContext(r.Context())
	doc, ok := h.publisher.Current(accountID)
	if !ok {
		utils.WriteFailure(w, events.MissingMessage, http.StatusNotFound)
		return
	}
	utils.WriteSuccess(w, doc, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, h.build, http.StatusOK)
}

func decodeStatusDocument(body io.Reader) (models.StatusDocument, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return models.StatusDocument{}, ErrReadingBody
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return models.StatusDocument{}, ErrEmptyBody
	}

	var wrapped struct {
		Success *bool            `json:"success"`
		Data    *json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return models.StatusDocument{}, ErrMalformedDocument
	}
	if wrapped.Success != nil && wrapped.Data != nil {
		raw = *wrapped.Data
	}

	var doc models.StatusDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.StatusDocument{}, ErrMalformedDocument
	}

	return doc, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
