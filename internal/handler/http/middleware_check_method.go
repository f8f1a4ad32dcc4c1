// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/koafy/setter-console/internal/app"
	"github.com/koafy/setter-console/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler. A
// known path requested with an unregistered method answers 404 instead of
// chi's default 405, so callers cannot probe which hooks exist.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.NewRouteContext()
		if router.Match(rctx, r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteFailure(w, app.MsgNotFound, http.StatusNotFound)
	}
}
