// Package utils provides small helpers shared by the console packages:
// typed context keys, the resty client wrapper, id generation and JSON
// response writing for the webhook receiver.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys never collide with
// string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// AccountIDCtxKey carries the account id a webhook request targets.
	AccountIDCtxKey = contextKey("accountID")
	// TraceIDCtxKey carries the per-request trace id.
	TraceIDCtxKey = contextKey("traceID")
)

// WithAccountID returns a copy of ctx carrying accountID.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, AccountIDCtxKey, accountID)
}

// GetAccountIDFromContext returns the account id stored by [WithAccountID].
// ok is false when the value is missing, empty or of another type.
func GetAccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(string)
	return accountID, ok && accountID != ""
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id set by the tracing middleware.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
