// Package server runs the webhook receiver next to the terminal UI.
package server

// Server is a background listener owned by the console runtime.
type Server interface {
	// RunServer binds the listener and serves in the background. A bind
	// failure is returned synchronously.
	RunServer() error

	// Shutdown stops accepting connections and waits for in-flight
	// requests up to a short grace period.
	Shutdown()

	// Addr returns the bound address, or "" before RunServer.
	Addr() string

	// OnFailure registers fn to receive the error that stops serving
	// unexpectedly. A graceful Shutdown does not call it.
	OnFailure(fn func(error))
}
