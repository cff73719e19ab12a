package viu

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"viu/internal/clock"
)

// SizeFunc reports the terminal size.
type SizeFunc func() (width, height int, err error)

// FileSize returns a SizeFunc reading the terminal on f.
func FileSize(f *os.File) SizeFunc {
	return func() (int, int, error) {
		return TerminalSize(int(f.Fd()))
	}
}

// resizeWatch polls the terminal size. A change schedules onChange right
// away; once the size has held still for quiet it schedules onSettle.
type resizeWatch struct {
	size     SizeFunc
	sched    Scheduler
	clock    clock.Clock
	poll     time.Duration
	quiet    time.Duration
	log      *slog.Logger
	onChange func(width, height int)
	onSettle func(width, height int)

	width, height int
	changedAt     time.Time
	unsettled     bool
}

func (w *resizeWatch) run(ctx context.Context) error {
	ticker := w.clock.NewTicker(w.poll)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.check(w.clock.Now())
		}
	}
}

// check samples the size once at now.
func (w *resizeWatch) check(now time.Time) {
	width, height, err := w.size()
	if err != nil {
		w.log.Debug("terminal size unavailable", "error", err)
		return
	}
	if width != w.width || height != w.height {
		w.width, w.height = width, height
		w.changedAt, w.unsettled = now, true
		w.log.Debug("terminal resized", "width", width, "height", height)
		w.sched.RunLater(func() { w.onChange(width, height) })
		return
	}
	if w.unsettled && now.Sub(w.changedAt) >= w.quiet {
		w.unsettled = false
		w.sched.RunLater(func() { w.onSettle(width, height) })
	}
}

// resizeNotice is shown centered while the terminal is being resized.
func resizeNotice(width, height int) string {
	return fmt.Sprintf("Width: %d | Height: %d", width, height)
}
