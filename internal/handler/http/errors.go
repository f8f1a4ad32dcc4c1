// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
	ErrEmptyToken                 = errors.New("empty token in `Authorization` header")
	ErrWrongSecret                = errors.New("webhook secret does not match")

	ErrNoAccountID       = errors.New("account id is empty")
	ErrReadingBody       = errors.New("error reading request body")
	ErrEmptyBody         = errors.New("empty status document")
	ErrMalformedDocument = errors.New("malformed status document")
	ErrInvalidDocument   = errors.New("status document failed validation")
)
