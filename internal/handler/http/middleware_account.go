package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/internal/utils"
)

// withAccountID moves the {accountID} path parameter into the request
// context and the request logger.
func withAccountID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := strings.TrimSpace(chi.URLParam(r, "accountID"))
		if accountID == "" {
			utils.WriteFailure(w, messageFromError(ErrNoAccountID), statusFromError(ErrNoAccountID))
			return
		}

		l := logger.FromRequest(r)
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("account_id", accountID)
		})

		ctx := l.WithContext(r.Context())
		ctx = utils.WithAccountID(ctx, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
