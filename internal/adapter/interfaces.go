// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the Setter API.
//
// The primary abstraction is [SetterAPI], which decouples the session store,
// the event sources and the chat services from the underlying protocol. The
// package ships an HTTP/REST implementation ([NewHTTPSetterAdapter]).
//
// HTTP status codes are mapped to the sentinel values in errors.go by
// mapHTTPError, so callers use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrTransport] for network failures,
// [ErrRejected] for a 2xx body carrying success:false). [Reason] extracts the
// human-readable message the backend attached to a failure.
package adapter

import (
	"context"

	"github.com/koafy/setter-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/setter_api_mock.go -package=mock

// SetterAPI is the remote Setter API as used by the console. Every
// account-scoped call returns [ErrNoAccount] without touching the network
// when accountID is blank.
type SetterAPI interface {
	// Connect asks the backend to begin WhatsApp pairing for the account.
	// Progress is observed through the status event source, not through the
	// return value.
	Connect(ctx context.Context, accountID string) error

	// Disconnect asks the backend to end the WhatsApp session.
	Disconnect(ctx context.Context, accountID string) error

	// GetStatus fetches the status document once. Fields the backend did not
	// return are nil. A missing document yields [ErrNotFound].
	GetStatus(ctx context.Context, accountID string) (models.StatusDocument, error)

	// SetBotPaused pauses or resumes the auto-reply bot.
	SetBotPaused(ctx context.Context, accountID string, paused bool) error

	// Health checks that the API is reachable.
	Health(ctx context.Context) error

	// ListChats returns the conversations of the connected session.
	ListChats(ctx context.Context, accountID string) ([]models.Chat, error)

	// ChatMessages returns up to limit latest messages of one conversation.
	ChatMessages(ctx context.Context, accountID, chatID string, limit int) ([]models.Message, error)

	// SendMessage sends text to a conversation and returns the stored message.
	SendMessage(ctx context.Context, accountID, chatID, text string) (models.Message, error)
}
