package workers

import (
	"context"
	"sync"
)

// Workers groups workers that share a lifecycle, e.g. every poller of the
// current account, so an account switch stops them together.
type Workers struct {
	mu      sync.Mutex
	workers map[string]Worker
}

// NewWorkers returns an empty set.
func NewWorkers() *Workers {
	return &Workers{workers: make(map[string]Worker)}
}

// Start starts w under name, stopping a worker previously registered under
// the same name.
func (ws *Workers) Start(ctx context.Context, name string, w Worker) {
	ws.mu.Lock()
	prev := ws.workers[name]
	ws.workers[name] = w
	ws.mu.Unlock()

	if prev != nil && prev != w {
		prev.Stop()
	}
	w.Start(ctx)
}

// Stop stops and forgets the worker registered under name.
func (ws *Workers) Stop(name string) {
	ws.mu.Lock()
	w := ws.workers[name]
	delete(ws.workers, name)
	ws.mu.Unlock()

	if w != nil {
		w.Stop()
	}
}

// StopAll stops every worker.
func (ws *Workers) StopAll() {
	ws.mu.Lock()
	all := ws.workers
	ws.workers = make(map[string]Worker)
	ws.mu.Unlock()

	for _, w := range all {
		w.Stop()
	}
}

// Len returns the number of registered workers.
func (ws *Workers) Len() int {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return len(ws.workers)
}
