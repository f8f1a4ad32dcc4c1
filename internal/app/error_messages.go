// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// console's webhook handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of a webhook call. Keeping them
// in one place keeps the wording consistent for integrators.
package app

const (
	// MsgInvalidDataProvided is returned when a posted status document
	// cannot be decoded.
	MsgInvalidDataProvided = "invalid status document provided"

	// MsgEmptyDataProvided is returned when the request body is empty.
	MsgEmptyDataProvided = "no status document provided"

	// MsgDocumentTooLarge is returned when the body exceeds the accepted
	// document size.
	MsgDocumentTooLarge = "status document is too large"

	// MsgUnauthorized is returned when the Authorization header is missing
	// or is not a bearer token.
	MsgUnauthorized = "missing or malformed bearer token"

	// MsgAccessDenied is returned when the bearer token does not match the
	// configured webhook secret.
	MsgAccessDenied = "access denied"

	// MsgNoAccountIDProvided is returned when the route carries no account
	// id.
	MsgNoAccountIDProvided = "no account ID provided"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "not found"

	// MsgInternalServerError is returned when an unexpected failure occurs.
	MsgInternalServerError = "internal server error"
)
