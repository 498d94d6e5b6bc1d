package shell

import (
	"context"
	"sync"
)

// Loop runs posted events one at a time on a single goroutine. Every
// Controller mutation happens inside an event, so the controller, the
// window host and the preference store need no locking of their own.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	stopped bool

	wake chan struct{}
	quit chan struct{}
	once sync.Once
}

// NewLoop returns a loop ready to accept events. Events posted before Run
// are queued.
func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
	}
}

// Run processes events until ctx is cancelled. Pending events are dropped.
func (l *Loop) Run(ctx context.Context) {
	defer l.stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.wake:
		}
		for fn := l.next(); fn != nil; fn = l.next() {
			fn()
			if ctx.Err() != nil {
				return
			}
		}
	}
}

func (l *Loop) next() func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn
}

func (l *Loop) stop() {
	l.mu.Lock()
	l.stopped = true
	l.queue = nil
	l.mu.Unlock()
	l.once.Do(func() { close(l.quit) })
}

// Post queues fn and returns without waiting; the queue is unbounded, so
// UI callbacks never block on a busy loop. It reports false once the loop
// has stopped.
func (l *Loop) Post(fn func()) bool {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Call posts fn and waits until it has run. It must not be called from
// inside an event.
func (l *Loop) Call(fn func()) bool {
	done := make(chan struct{})
	if !l.Post(func() { fn(); close(done) }) {
		return false
	}
	select {
	case <-done:
		return true
	case <-l.quit:
		return false
	}
}

// Done is closed after Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.quit
}
