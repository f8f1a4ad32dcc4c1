// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the merged [StructuredConfig] can start the console.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.API.BaseURL) == "" || strings.TrimSpace(cfg.API.Key) == "" || cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}

	switch cfg.Events.Mode {
	case EventsModePoll:
		if cfg.Events.PollInterval <= 0 {
			return ErrInvalidEventsConfigs
		}
	case EventsModePush:
		if cfg.Events.WebhookAddress == "" {
			return ErrInvalidEventsConfigs
		}
	default:
		return ErrInvalidEventsConfigs
	}

	if cfg.Session.LoadingTimeout <= 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.ChatsInterval <= 0 || cfg.Workers.MessagesInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
