package viu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"

	"viu/internal/clock"
)

type resizeLog struct {
	events []string
}

func (l *resizeLog) String() string {
	return strings.Join(l.events, ",")
}

func newTestWatch(size SizeFunc, q *Queue, c clock.Clock) (*resizeWatch, *resizeLog) {
	log := &resizeLog{}
	w := &resizeWatch{
		size:  size,
		sched: q,
		clock: c,
		poll:  20 * time.Millisecond,
		quiet: 100 * time.Millisecond,
		log:   slog.New(slog.DiscardHandler),
		onChange: func(w, h int) {
			log.events = append(log.events, fmt.Sprintf("change %dx%d", w, h))
		},
		onSettle: func(w, h int) {
			log.events = append(log.events, fmt.Sprintf("settle %dx%d", w, h))
		},
		width:  80,
		height: 24,
	}
	return w, log
}

func TestResizeWatchQuietPeriod(t *testing.T) {
	size := &testSize{w: 80, h: 24}
	q := NewQueue(nil, time.Millisecond)
	w, log := newTestWatch(size.get, q, nil)
	at := func(ms int) time.Time { return epoch.Add(time.Duration(ms) * time.Millisecond) }

	w.check(at(0))
	q.Drain()
	if log.String() != "" {
		t.Fatalf("expected nothing for an unchanged size, got %s", log)
	}

	size.set(100, 30)
	w.check(at(20))
	size.set(120, 40)
	w.check(at(40))
	q.Drain()
	if log.String() != "change 100x30,change 120x40" {
		t.Fatalf("expected two change notices, got %s", log)
	}

	w.check(at(120))
	q.Drain()
	if strings.Contains(log.String(), "settle") {
		t.Fatalf("expected no settle before the quiet period, got %s", log)
	}

	w.check(at(140))
	w.check(at(160))
	q.Drain()
	if log.String() != "change 100x30,change 120x40,settle 120x40" {
		t.Errorf("expected one settle after the quiet period, got %s", log)
	}
}

func TestResizeWatchSizeError(t *testing.T) {
	q := NewQueue(nil, time.Millisecond)
	w, log := newTestWatch(func() (int, int, error) { return 0, 0, errors.New("not a tty") }, q, nil)
	w.check(epoch)
	q.Drain()
	if log.String() != "" || w.width != 80 {
		t.Errorf("expected errors ignored, got %s and width %d", log, w.width)
	}
}

func TestResizeWatchRun(t *testing.T) {
	size := &testSize{w: 90, h: 24}
	fc := clock.Fake(epoch)
	q := NewQueue(fc, 5*time.Millisecond)
	w, _ := newTestWatch(size.get, q, fc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.run(ctx) }()

	fc.WaitForTimers(1)
	fc.Advance(20 * time.Millisecond)
	deadline := time.Now().Add(2 * time.Second)
	for q.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if q.Len() != 1 {
		t.Errorf("expected the change to be queued, got %d closures", q.Len())
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFileSize(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80}); err != nil {
		t.Fatalf("set size: %v", err)
	}
	size := FileSize(tty)
	w, h, err := size()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 80 || h != 24 {
		t.Errorf("expected 80x24, got %dx%d", w, h)
	}

	q := NewQueue(nil, time.Millisecond)
	watch, log := newTestWatch(size, q, nil)
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 40, Cols: 132}); err != nil {
		t.Fatalf("set size: %v", err)
	}
	watch.check(epoch)
	watch.check(epoch.Add(time.Second))
	q.Drain()
	if log.String() != "change 132x40,settle 132x40" {
		t.Errorf("expected change and settle at 132x40, got %s", log)
	}
}
