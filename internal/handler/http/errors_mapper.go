package http

import (
	"errors"
	"net/http"

	"github.com/koafy/setter-console/internal/app"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponses = map[error]errorResponse{
	ErrEmptyAuthorizationHeader:   {http.StatusUnauthorized, app.MsgUnauthorized},
	ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, app.MsgUnauthorized},
	ErrEmptyToken:                 {http.StatusUnauthorized, app.MsgUnauthorized},
	ErrWrongSecret:                {http.StatusUnauthorized, app.MsgAccessDenied},

	ErrNoAccountID:       {http.StatusBadRequest, app.MsgNoAccountIDProvided},
	ErrReadingBody:       {http.StatusRequestEntityTooLarge, app.MsgDocumentTooLarge},
	ErrEmptyBody:         {http.StatusBadRequest, app.MsgEmptyDataProvided},
	ErrMalformedDocument: {http.StatusBadRequest, app.MsgInvalidDataProvided},
	ErrInvalidDocument:   {http.StatusUnprocessableEntity, app.MsgInvalidDataProvided},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponses {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

func messageFromError(err error) string {
	return responseFromError(err).message
}
