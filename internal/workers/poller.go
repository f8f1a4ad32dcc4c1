package workers

import (
	"context"
	"sync"
	"time"

	"github.com/koafy/setter-console/internal/logger"
)

// DefaultInterval is used when a Poller is created with a non-positive
// interval.
const DefaultInterval = 30 * time.Second

// Job is one tick of a Poller.
type Job func(ctx context.Context)

// Poller calls a Job immediately on Start and then on every tick until it is
// stopped or its context is cancelled.
type Poller struct {
	name     string
	interval time.Duration
	job      Job
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPoller creates an idle Poller.
func NewPoller(name string, interval time.Duration, job Job, logger *logger.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Poller{
		name:     name,
		interval: interval,
		job:      job,
		logger:   logger,
	}
}

// Start implements [Worker]. It stops a previously running instance first.
func (p *Poller) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	p.logger.Debug().Str("func", "Poller.Start").Str("poller", p.name).Dur("interval", p.interval).Msg("poller started")

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.job(jobCtx)

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.job(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker].
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		p.logger.Debug().Str("func", "Poller.Stop").Str("poller", p.name).Msg("poller stopped")
	}
	p.wg.Wait()
}

// Running reports whether the poller has been started and not stopped.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}
