package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/koafy/setter-console/internal/session"
)

const pumpBuffer = 32

// pump moves messages produced on background goroutines (store watchers,
// the redirect callback, pollers) into the bubbletea loop. Session states
// are coalesced so that only the newest one is delivered; other messages are
// dropped when the buffer is full.
type pump struct {
	msgs chan tea.Msg
	wake chan struct{}
	done chan struct{}

	mu    sync.Mutex
	state *session.State
	once  sync.Once
}

func newPump() *pump {
	return &pump{
		msgs: make(chan tea.Msg, pumpBuffer),
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

func (p *pump) pushState(s session.State) {
	p.mu.Lock()
	p.state = &s
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *pump) push(msg tea.Msg) {
	select {
	case <-p.done:
	case p.msgs <- msg:
	default:
	}
}

func (p *pump) takeState() (session.State, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == nil {
		return session.State{}, false
	}
	s := *p.state
	p.state = nil
	return s, true
}

// listen waits for the next message. It must be re-issued after every
// message it delivers. A wake-up whose state was already taken is skipped,
// so the returned command only yields nil once the pump is closed.
func (p *pump) listen() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case <-p.done:
				return nil
			case <-p.wake:
				if s, ok := p.takeState(); ok {
					return stateMsg{state: s}
				}
			case msg := <-p.msgs:
				return msg
			}
		}
	}
}

func (p *pump) close() {
	p.once.Do(func() { close(p.done) })
}

// attach wires store callbacks into the pump and returns the func that
// detaches them.
func (p *pump) attach(store *session.Store) func() {
	cancel := store.Watch(p.pushState)
	store.RegisterRedirectCallback(func() { p.push(redirectMsg{}) })

	return func() {
		cancel()
		store.RegisterRedirectCallback(nil)
	}
}
