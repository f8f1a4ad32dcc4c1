// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/koafy/setter-console/internal/adapter"
)

// ErrNoStore is returned by [New] without a session store.
var ErrNoStore = errors.New("tui: session store is nil")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, adapter.ErrTransport) {
		return "Connection lost. The Setter API is unreachable."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Connection lost. The Setter API is unreachable."
	}

	return adapter.Reason(err)
}
