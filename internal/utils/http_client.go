package utils

import (
	"github.com/go-resty/resty/v2"
)

// userAgent is sent with every Setter API request.
const userAgent = "setter-console"

// HTTPClient embeds *resty.Client so callers use its builder API directly.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetContext(ctx).Get("/health")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
// Retries are disabled: connect and disconnect are not idempotent on the
// backend side.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
