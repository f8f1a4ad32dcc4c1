package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAPIConfigs indicates a missing base URL or API key, or a
	// non-positive request timeout.
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidEventsConfigs indicates an unknown events mode, a
	// non-positive poll interval, or push mode without a webhook address.
	ErrInvalidEventsConfigs = errors.New("invalid events configuration")
	// ErrInvalidSessionConfigs indicates a non-positive loading timeout.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidStorageConfigs indicates an empty journal DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive polling interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
