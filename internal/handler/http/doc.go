// Package http implements the webhook receiver of the console's push mode.
//
// The Setter backend (or a relay in front of it) posts the connection status
// document of an account to /hooks/status/{accountID}; the receiver hands it
// to the events feed, which fans it out to the subscribed session store.
// Request tracing, access logging, gzip and an optional shared secret are
// handled by middleware before a request reaches the handlers.
package http
