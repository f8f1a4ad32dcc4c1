package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration.
type StructuredJSONConfig struct {
	API struct {
		BaseURL        string   `json:"base_url"`
		Key            string   `json:"key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"api,omitempty"`

	Account struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		IDToken string `json:"id_token"`
	} `json:"account,omitempty"`

	Events struct {
		Mode           string   `json:"mode"`
		PollInterval   Duration `json:"poll_interval"`
		WebhookAddress string   `json:"webhook_address"`
		WebhookSecret  string   `json:"webhook_secret"`
	} `json:"events,omitempty"`

	Session struct {
		LoadingTimeout  Duration `json:"loading_timeout"`
		NotificationCap int      `json:"notification_cap"`
	} `json:"session,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		ChatsInterval    Duration `json:"chats_interval"`
		MessagesInterval Duration `json:"messages_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`

	TUI struct {
		ToastTTL Duration `json:"toast_ttl"`
	} `json:"tui,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		API: API{
			BaseURL:        jsonCfg.API.BaseURL,
			Key:            jsonCfg.API.Key,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
		},
		Account: Account{
			ID:      jsonCfg.Account.ID,
			Email:   jsonCfg.Account.Email,
			Name:    jsonCfg.Account.Name,
			IDToken: jsonCfg.Account.IDToken,
		},
		Events: Events{
			Mode:           jsonCfg.Events.Mode,
			PollInterval:   time.Duration(jsonCfg.Events.PollInterval),
			WebhookAddress: jsonCfg.Events.WebhookAddress,
			WebhookSecret:  jsonCfg.Events.WebhookSecret,
		},
		Session: Session{
			LoadingTimeout:  time.Duration(jsonCfg.Session.LoadingTimeout),
			NotificationCap: jsonCfg.Session.NotificationCap,
		},
		Storage: Storage{DB: DB{DSN: jsonCfg.Storage.DB.DSN}},
		Workers: Workers{
			ChatsInterval:    time.Duration(jsonCfg.Workers.ChatsInterval),
			MessagesInterval: time.Duration(jsonCfg.Workers.MessagesInterval),
		},
		Log: Log{Level: jsonCfg.Log.Level, File: jsonCfg.Log.File},
		TUI: TUI{ToastTTL: time.Duration(jsonCfg.TUI.ToastTTL)},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
