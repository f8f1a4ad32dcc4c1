package adapter

import (
	"errors"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrTransport wraps network failures and timeouts.
	ErrTransport = errors.New("connection lost")
	// ErrRejected is returned when a 2xx body declares success:false.
	ErrRejected = errors.New("request rejected")
	// ErrNoAccount is returned for account-scoped calls without an account.
	ErrNoAccount = errors.New("no account selected")
	// ErrDecode is returned when a response body cannot be decoded.
	ErrDecode = errors.New("malformed response")
)

// apiError pairs a sentinel with the message the backend attached to it.
type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string {
	if e.msg == "" {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.msg
}

func (e *apiError) Unwrap() error {
	return e.kind
}

// Reason returns the human-readable message of err: the backend message when
// one was sent, the generic sentinel text for transport failures, and
// err.Error() otherwise.
func Reason(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrTransport) {
		return ErrTransport.Error()
	}

	var ae *apiError
	if errors.As(err, &ae) && strings.TrimSpace(ae.msg) != "" {
		return ae.msg
	}

	return err.Error()
}
