package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/internal/utils"
)

// auth checks "Authorization: Bearer <secret>" when a webhook secret is
// configured and lets every request through otherwise.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.secret == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteFailure(w, messageFromError(ErrEmptyAuthorizationHeader), http.StatusUnauthorized)
			return
		}

		token, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteFailure(w, messageFromError(err), statusFromError(err))
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) != 1 {
			log.Err(ErrWrongSecret).Msg("rejected webhook call")
			utils.WriteFailure(w, messageFromError(ErrWrongSecret), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
