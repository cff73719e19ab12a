package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"viu"
)

type scriptKeys chan viu.KeyEvent

func (k scriptKeys) Next(ctx context.Context) (viu.KeyEvent, error) {
	select {
	case ev := <-k:
		return ev, nil
	case <-ctx.Done():
		return viu.KeyEvent{}, ctx.Err()
	}
}

func TestDemo(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"alpha.txt", "beta.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	opts := viu.DefaultOptions()
	opts.EventInterval = time.Millisecond
	opts.ResizePollInterval = time.Millisecond
	keys := make(scriptKeys, 8)
	size := func() (int, int, error) { return 60, 16, nil }
	d, err := newDemo(opts, dir,
		viu.WithSurface(viu.NewCanvas(60, 16)),
		viu.WithKeySource(keys),
		viu.WithSizeFunc(size))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- d.root.Run(context.Background()) }()
	defer d.root.Stop()

	eventually := func(what string, cond func() bool) {
		t.Helper()
		deadline := time.Now().Add(2 * time.Second)
		for time.Now().Before(deadline) {
			ok := false
			if err := d.root.RunAndWait(context.Background(), func() { ok = cond() }); err != nil {
				t.Fatalf("run and wait: %v", err)
			}
			if ok {
				return
			}
			time.Sleep(time.Millisecond)
		}
		t.Fatalf("timed out waiting for %s", what)
	}
	press := func(evs ...viu.KeyEvent) {
		for _, ev := range evs {
			keys <- ev
		}
	}
	key := func(k viu.Key) viu.KeyEvent { return viu.KeyEvent{Key: k} }
	char := func(r rune) viu.KeyEvent { return viu.KeyEvent{Key: viu.KeyRune, Rune: r} }

	eventually("menu shown", func() bool { return d.pages.Current() != nil && d.pages.Has("menu") })

	press(key(viu.KeyEnter))
	eventually("border page", func() bool { return d.pages.Current() != nil && d.pages.Current().LayoutHint() == "border" })

	press(key(viu.KeyEscape))
	eventually("back to menu", func() bool { return d.pages.Current().LayoutHint() == "menu" })

	press(key(viu.KeyDown), key(viu.KeyDown), key(viu.KeyDown), key(viu.KeyEnter))
	eventually("files page", func() bool { return d.pages.Current() == viu.Component(d.files.panel) })
	eventually("listing loaded", func() bool { return d.files.table.Len() == 3 })

	press(char('/'))
	eventually("search mode", func() bool { return d.files.modes.Current() == viu.ModeSearch })
	press(char('b'))
	eventually("filtered", func() bool { return d.files.table.Len() == 1 })
	press(key(viu.KeyEscape))
	eventually("search cancelled", func() bool {
		return d.files.modes.Current() == viu.ModeNavigate && d.files.table.Len() == 3
	})

	press(char('q'))
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean exit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("demo did not quit")
	}
}

func TestBrowserCurrent(t *testing.T) {
	first, second := &viu.Task{}, &viu.Task{}
	b := &browser{dir: "/data", loading: second}

	tests := []struct {
		name string
		dir  string
		task *viu.Task
		want bool
	}{
		{"latest task", "/data", second, true},
		{"reopened same folder", "/data", first, false},
		{"other folder", "/tmp", second, false},
		{"no task", "/data", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.current(tt.dir, tt.task); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
