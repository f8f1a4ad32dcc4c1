package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/koafy/setter-console/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

type httpServer struct {
	server *http.Server

	mu       sync.Mutex
	listener net.Listener
	done     chan struct{}
	onFail   func(error)

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, address string, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.listener != nil {
		return errAlreadyRunning
	}

	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		h.logger.Err(err).Str("func", "httpServer.RunServer").Str("address", h.server.Addr).Msg("failed to bind webhook listener")
		return err
	}
	h.listener = ln
	h.done = make(chan struct{})

	h.logger.Info().Str("func", "httpServer.RunServer").Str("address", ln.Addr().String()).Msg("launching HTTP server")

	go func(done chan struct{}, onFail func(error)) {
		defer close(done)
		if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.logger.Err(err).Str("func", "httpServer.RunServer").Msg("HTTP server Serve failed")
			if onFail != nil {
				onFail(err)
			}
		}
	}(h.done, h.onFail)

	return nil
}

func (h *httpServer) Shutdown() {
	h.mu.Lock()
	done := h.done
	h.mu.Unlock()

	if done == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("func", "httpServer.Shutdown").Msg("HTTP server Shutdown")
	}
	<-done
	h.logger.Info().Str("func", "httpServer.Shutdown").Msg("HTTP server stopped")
}

func (h *httpServer) OnFailure(fn func(error)) {
	h.mu.Lock()
	h.onFail = fn
	h.mu.Unlock()
}

func (h *httpServer) Addr() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.listener == nil {
		return ""
	}
	return h.listener.Addr().String()
}
