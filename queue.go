package viu

import (
	"context"
	"sync"
	"time"

	"viu/internal/clock"
)

// DefaultQueueLimit is the number of closures a Queue holds before
// RunLater blocks.
const DefaultQueueLimit = 1024

// Queue is the bounded FIFO of closures run on the event-processing
// goroutine. Anything that touches the component tree or the Graphics from
// another goroutine goes through RunLater or RunAndWait.
type Queue struct {
	mu       sync.Mutex
	space    sync.Cond
	pending  []func()
	draining bool
	running  bool

	// Limit caps the pending closures; zero means unbounded. It is not
	// enforced while a batch runs, so queued closures can enqueue follow-ups
	// without deadlocking the loop.
	Limit int

	clock    clock.Clock
	interval time.Duration

	// ExceptionHandler receives panics recovered from queued closures. It
	// runs on the event goroutine. Nil drops them.
	ExceptionHandler func(*PanicError)

	// AfterDrain runs once after every Drain that executed at least one
	// closure. Root flushes the screen here.
	AfterDrain func()
}

// NewQueue creates a queue drained every interval on c.
func NewQueue(c clock.Clock, interval time.Duration) *Queue {
	if c == nil {
		c = clock.Real()
	}
	q := &Queue{clock: c, interval: interval, Limit: DefaultQueueLimit}
	q.space.L = &q.mu
	return q
}

// RunLater appends fn to the queue. It blocks while the queue is full and
// the loop is running, and returns immediately otherwise.
func (q *Queue) RunLater(fn func()) {
	q.mu.Lock()
	for q.full() {
		q.space.Wait()
	}
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

func (q *Queue) full() bool {
	return q.Limit > 0 && len(q.pending) >= q.Limit && q.running && !q.draining
}

// RunAndWait enqueues fn and blocks until it has run or ctx is done. A
// panic in fn is returned as a *PanicError after the handler has seen it.
// Calling it from a queued closure deadlocks.
func (q *Queue) RunAndWait(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	var perr *PanicError
	q.RunLater(func() {
		defer close(done)
		defer func() {
			if v := recover(); v != nil {
				perr = recovered(v)
				q.report(perr)
			}
		}()
		fn()
	})
	select {
	case <-done:
		if perr != nil {
			return perr
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Len returns the number of closures waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain runs every closure queued before the call, in order, and returns
// how many ran. Closures queued while draining wait for the next Drain.
func (q *Queue) Drain() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.draining = true
	q.space.Broadcast()
	q.mu.Unlock()

	for _, fn := range batch {
		q.run(fn)
	}
	q.mu.Lock()
	q.draining = false
	q.mu.Unlock()
	if len(batch) > 0 && q.AfterDrain != nil {
		q.AfterDrain()
	}
	return len(batch)
}

func (q *Queue) run(fn func()) {
	defer func() {
		if v := recover(); v != nil {
			q.report(recovered(v))
		}
	}()
	fn()
}

func (q *Queue) report(err *PanicError) {
	if q.ExceptionHandler != nil {
		q.ExceptionHandler(err)
	}
}

// Run drains the queue every interval until ctx is done. It is the event
// loop; only one goroutine may call it. RunLater only blocks while it is
// running.
func (q *Queue) Run(ctx context.Context) error {
	q.setRunning(true)
	defer q.setRunning(false)
	ticker := q.clock.NewTicker(q.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			q.Drain()
		}
	}
}

func (q *Queue) setRunning(running bool) {
	q.mu.Lock()
	q.running = running
	q.space.Broadcast()
	q.mu.Unlock()
}
