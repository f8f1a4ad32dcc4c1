// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Events source modes.
const (
	// EventsModePoll long-polls GET /users/{id}/status.
	EventsModePoll = "poll"
	// EventsModePush receives status documents on the local webhook.
	EventsModePush = "push"
)

// StructuredConfig is the top-level configuration container of the console.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the Setter API endpoint and credentials.
	API API `envPrefix:"API_"`

	// Account selects the operator account the console manages.
	Account Account `envPrefix:"ACCOUNT_"`

	// Events selects and tunes the status event source.
	Events Events `envPrefix:"EVENTS_"`

	// Session tunes the connection state store.
	Session Session `envPrefix:"SESSION_"`

	// Storage holds the local journal database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the polling intervals of the chat views.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log controls the log file and level.
	Log Log `envPrefix:"LOG_"`

	// TUI holds terminal UI settings.
	TUI TUI `envPrefix:"TUI_"`

	// JSONFilePath is the optional path to a JSON configuration file merged
	// on top of env and flags. Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded before the environment is read.
	// Env: DOTENV, flag: -env-file.
	DotEnvPath string `env:"DOTENV"`
}

// API holds Setter API settings.
type API struct {
	// BaseURL is the API root, e.g. "https://api.example.com/setter-api".
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Key is sent as "Authorization: Bearer <Key>".
	// Env: API_KEY
	Key string `env:"KEY"`

	// RequestTimeout bounds every API call. Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Account identifies the managed account. Either ID or IDToken is used; when
// IDToken is set its claims take precedence.
type Account struct {
	ID      string `env:"ID"`
	Email   string `env:"EMAIL"`
	Name    string `env:"NAME"`
	IDToken string `env:"ID_TOKEN"`
}

// Events configures the status event source.
type Events struct {
	// Mode is "poll" or "push". Env: EVENTS_MODE
	Mode string `env:"MODE"`

	// PollInterval is the long-poll period in poll mode.
	// Env: EVENTS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// WebhookAddress is the host:port the push receiver listens on.
	// Env: EVENTS_WEBHOOK_ADDRESS
	WebhookAddress string `env:"WEBHOOK_ADDRESS"`

	// WebhookSecret, when set, must be presented by webhook callers as
	// "Authorization: Bearer <secret>". Env: EVENTS_WEBHOOK_SECRET
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}

// Session tunes the connection state store.
type Session struct {
	// LoadingTimeout clears a stuck loading hint when no snapshot arrives.
	// Env: SESSION_LOADING_TIMEOUT
	LoadingTimeout time.Duration `env:"LOADING_TIMEOUT"`

	// NotificationCap bounds the notification queue; a negative value
	// disables the bound.
	// Env: SESSION_NOTIFICATION_CAP
	NotificationCap int `env:"NOTIFICATION_CAP"`
}

// Storage groups storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite journal location.
type DB struct {
	// DSN is the SQLite file path. Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds polling intervals.
type Workers struct {
	// ChatsInterval refreshes the chat list. Env: WORKERS_CHATS_INTERVAL
	ChatsInterval time.Duration `env:"CHATS_INTERVAL"`

	// MessagesInterval refreshes the open conversation.
	// Env: WORKERS_MESSAGES_INTERVAL
	MessagesInterval time.Duration `env:"MESSAGES_INTERVAL"`
}

// Log controls logging.
type Log struct {
	Level string `env:"LEVEL"`
	File  string `env:"FILE"`
}

// TUI holds terminal UI settings.
type TUI struct {
	// ToastTTL is how long a notification toast stays visible.
	ToastTTL time.Duration `env:"TOAST_TTL"`
}

// Defaults returns the built-in configuration every source is merged onto.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		API: API{RequestTimeout: 15 * time.Second},
		Events: Events{
			Mode:         EventsModePoll,
			PollInterval: 3 * time.Second,
		},
		Session: Session{
			LoadingTimeout:  20 * time.Second,
			NotificationCap: 100,
		},
		Storage: Storage{DB: DB{DSN: "console.db"}},
		Workers: Workers{
			ChatsInterval:    30 * time.Second,
			MessagesInterval: 10 * time.Second,
		},
		Log:        Log{Level: "debug", File: "console.log"},
		TUI:        TUI{ToastTTL: 3 * time.Second},
		DotEnvPath: ".env",
	}
}

// GetConsoleConfig loads, merges, and validates the configuration from all
// sources using the process arguments.
func GetConsoleConfig() (*StructuredConfig, error) {
	return LoadConfig(os.Args[1:])
}

// LoadConfig is [GetConsoleConfig] with explicit command-line arguments.
func LoadConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(args).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
