package events

import (
	"sync"

	"github.com/koafy/setter-console/models"
)

type delivery struct {
	snap models.Snapshot
	err  error
}

// mailbox runs the callbacks of one subscription in arrival order on its own
// goroutine, so producers never block on a slow or re-entrant consumer.
type mailbox struct {
	onUpdate func(models.Snapshot)
	onError  func(error)

	mu     sync.Mutex
	queue  []delivery
	closed bool

	wake chan struct{}
	done chan struct{}
	once sync.Once
}

func newMailbox(onUpdate func(models.Snapshot), onError func(error)) *mailbox {
	m := &mailbox{
		onUpdate: onUpdate,
		onError:  onError,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go m.run()
	return m
}

func (m *mailbox) push(d delivery) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.queue = append(m.queue, d)
	m.mu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
	}
}

func (m *mailbox) update(snap models.Snapshot) { m.push(delivery{snap: snap}) }

func (m *mailbox) fail(err error) { m.push(delivery{err: err}) }

func (m *mailbox) close() {
	m.once.Do(func() {
		m.mu.Lock()
		m.closed = true
		m.queue = nil
		m.mu.Unlock()
		close(m.done)
	})
}

func (m *mailbox) next() (delivery, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || len(m.queue) == 0 {
		return delivery{}, false
	}
	d := m.queue[0]
	m.queue = m.queue[1:]
	return d, true
}

func (m *mailbox) run() {
	for {
		select {
		case <-m.done:
			return
		case <-m.wake:
		}

		for {
			d, ok := m.next()
			if !ok {
				break
			}
			if d.err != nil {
				if m.onError != nil {
					m.onError(d.err)
				}
				continue
			}
			if m.onUpdate != nil {
				m.onUpdate(d.snap)
			}
		}
	}
}
