package viu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Scheduler is anything that can run a closure on the event goroutine.
type Scheduler interface {
	RunLater(fn func())
}

// Result is the outcome of a background task.
type Result struct {
	Task    string
	OK      bool
	Message string
	Err     error
}

// Task is the handle passed to a running background function. Cancellation
// is cooperative: long loops should check Cancelled between steps.
type Task struct {
	name   string
	ctx    context.Context
	cancel context.CancelFunc
	tasks  *Tasks
}

// Name returns the name the task was started with.
func (t *Task) Name() string {
	return t.name
}

// Context is cancelled when the task or its group is cancelled.
func (t *Task) Context() context.Context {
	return t.ctx
}

// Cancelled reports whether the task was asked to stop.
func (t *Task) Cancelled() bool {
	return t.ctx.Err() != nil
}

// Cancel asks the task to stop.
func (t *Task) Cancel() {
	t.cancel()
}

// Progress reports msg to the group's OnProgress on the event goroutine.
func (t *Task) Progress(msg string) {
	if t.tasks.OnProgress == nil {
		return
	}
	t.tasks.sched.RunLater(func() {
		if t.tasks.OnProgress != nil {
			t.tasks.OnProgress(t.name, msg)
		}
	})
}

// Tasks runs functions on their own goroutines and delivers each Result
// through the Scheduler, so completion callbacks may touch the tree.
type Tasks struct {
	sched  Scheduler
	log    *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	running map[*Task]struct{}

	// OnProgress receives Task.Progress messages on the event goroutine.
	OnProgress func(task, msg string)
}

// NewTasks creates a task group delivering results through s.
func NewTasks(s Scheduler, log *slog.Logger) *Tasks {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Tasks{
		sched:   s,
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
		running: make(map[*Task]struct{}),
	}
}

// Go starts fn on a new goroutine. done, if not nil, receives the result on
// the event goroutine. A panic in fn becomes a failed Result.
func (ts *Tasks) Go(name string, fn func(*Task) error, done func(Result)) *Task {
	ctx, cancel := context.WithCancel(ts.ctx)
	t := &Task{name: name, ctx: ctx, cancel: cancel, tasks: ts}

	ts.mu.Lock()
	ts.running[t] = struct{}{}
	ts.mu.Unlock()

	ts.wg.Go(func() {
		res := ts.execute(t, fn)
		cancel()
		ts.mu.Lock()
		delete(ts.running, t)
		ts.mu.Unlock()

		if res.OK {
			ts.log.Debug("task finished", "task", name)
		} else {
			ts.log.Warn("task failed", "task", name, "error", res.Err)
		}
		if done != nil {
			ts.sched.RunLater(func() { done(res) })
		}
	})
	return t
}

func (ts *Tasks) execute(t *Task, fn func(*Task) error) (res Result) {
	res.Task = t.name
	defer func() {
		if v := recover(); v != nil {
			perr := recovered(v)
			res.OK, res.Err = false, perr
			res.Message = fmt.Sprintf("%s failed: %v", t.name, perr)
		}
	}()

	err := fn(t)
	switch {
	case err == nil && t.Cancelled():
		res.Err = context.Canceled
		res.Message = t.name + " cancelled"
	case err == nil:
		res.OK = true
		res.Message = t.name + " done"
	case errors.Is(err, context.Canceled):
		res.Err = err
		res.Message = t.name + " cancelled"
	default:
		res.Err = err
		res.Message = fmt.Sprintf("%s failed: %v", t.name, err)
	}
	return res
}

// Running returns the number of tasks not yet finished.
func (ts *Tasks) Running() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.running)
}

// CancelAll asks every running task to stop. The group stays usable.
func (ts *Tasks) CancelAll() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	for t := range ts.running {
		t.cancel()
	}
}

// Close cancels every task, including ones started later, and waits.
func (ts *Tasks) Close() {
	ts.cancel()
	ts.wg.Wait()
}

// Wait blocks until every started task has returned. Results may still be
// queued on the scheduler.
func (ts *Tasks) Wait() {
	ts.wg.Wait()
}
