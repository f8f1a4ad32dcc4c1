package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line arguments on a private FlagSet.
//
// Flags:
//
//	-api-url Setter API base URL
//	-api-key Setter API bearer key
//	-request-timeout API request timeout (e.g. "15s")
//	-account account (user) id
//	-id-token identity token carrying the account claims
//	-events events mode: poll | push
//	-poll-interval status poll interval (e.g. "3s")
//	-webhook webhook receiver address in format [host]:[port]
//	-loading-timeout loading hint timeout (e.g. "20s")
//	-d journal database path
//	-log-level log level
//	-log-file log file path
//	-c/-config json file path with configs
//	-env-file .env file path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var webhookAddress NetAddress
	var apiURL, apiKey string
	var requestTimeout time.Duration
	var accountID, idToken string
	var eventsMode string
	var pollInterval, loadingTimeout time.Duration
	var dsn string
	var logLevel, logFile string
	var jsonConfigPath, dotEnvPath string

	fs.StringVar(&apiURL, "api-url", "", "Setter API base URL")
	fs.StringVar(&apiKey, "api-key", "", "Setter API key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "API request timeout (e.g., 15s)")
	fs.StringVar(&accountID, "account", "", "Account id")
	fs.StringVar(&idToken, "id-token", "", "Identity token")
	fs.StringVar(&eventsMode, "events", "", "Events mode: poll | push")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Status poll interval (e.g., 3s)")
	fs.Var(&webhookAddress, "webhook", "Webhook receiver address host:port")
	fs.DurationVar(&loadingTimeout, "loading-timeout", 0, "Loading hint timeout (e.g., 20s)")
	fs.StringVar(&dsn, "d", "", "Journal database path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dotEnvPath, "env-file", "", ".env file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		API: API{
			BaseURL:        apiURL,
			Key:            apiKey,
			RequestTimeout: requestTimeout,
		},
		Account: Account{
			ID:      accountID,
			IDToken: idToken,
		},
		Events: Events{
			Mode:           eventsMode,
			PollInterval:   pollInterval,
			WebhookAddress: webhookAddress.String(),
		},
		Session: Session{
			LoadingTimeout: loadingTimeout,
		},
		Storage:      Storage{DB: DB{DSN: dsn}},
		Log:          Log{Level: logLevel, File: logFile},
		JSONFilePath: jsonConfigPath,
		DotEnvPath:   dotEnvPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty (all interfaces).
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
