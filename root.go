package viu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/mattn/go-runewidth"
	"golang.org/x/sync/errgroup"
)

// ActionQuit stops the root. It is bound to ctrl+c on the top panel.
const ActionQuit = "quit"

// ErrRunning is returned by Run when the root is already running.
var ErrRunning = errors.New("root is already running")

// Root drives a component tree on a terminal. It owns the surface and runs
// three goroutines: one reading keys, one watching the terminal size and
// the event loop. Only the event loop touches the tree; everything else
// schedules closures through RunLater or RunAndWait.
type Root struct {
	opts    Options
	log     *slog.Logger
	surface Surface
	top     *Panel
	queue   *Queue
	tasks   *Tasks
	keys    KeySource
	size    SizeFunc

	// StatusHandler shows a one-line message such as a recovered panic. It
	// runs on the event goroutine.
	StatusHandler func(msg string)

	mu     sync.Mutex
	cancel context.CancelFunc
}

// RootOption configures a Root.
type RootOption func(*Root)

// WithSurface draws on s instead of a Screen on stdout.
func WithSurface(s Surface) RootOption {
	return func(r *Root) { r.surface = s }
}

// WithKeySource reads keys from k instead of decoding stdin.
func WithKeySource(k KeySource) RootOption {
	return func(r *Root) { r.keys = k }
}

// WithSizeFunc polls f for the terminal size instead of stdout.
func WithSizeFunc(f SizeFunc) RootOption {
	return func(r *Root) { r.size = f }
}

// NewRoot creates a root for top.
func NewRoot(top *Panel, opts Options, ropts ...RootOption) *Root {
	r := &Root{
		opts: opts,
		log:  opts.logger(),
		top:  top,
	}
	for _, o := range ropts {
		o(r)
	}
	if r.surface == nil {
		r.surface = NewScreen(os.Stdout, WithAltScreen(opts.AltScreen))
	}
	if r.size == nil {
		r.size = FileSize(os.Stdout)
	}
	r.queue = NewQueue(opts.clock(), opts.EventInterval)
	r.queue.Limit = opts.QueueLimit
	r.queue.ExceptionHandler = r.handlePanic
	r.queue.AfterDrain = r.flush
	r.tasks = NewTasks(r.queue, r.log)
	return r
}

// Top returns the top-level panel.
func (r *Root) Top() *Panel {
	return r.top
}

// Graphics returns the surface the tree is drawn on.
func (r *Root) Graphics() Surface {
	return r.surface
}

// Tasks returns the background task group. Results arrive on the event
// goroutine.
func (r *Root) Tasks() *Tasks {
	return r.tasks
}

// Logger returns the configured logger.
func (r *Root) Logger() *slog.Logger {
	return r.log
}

// Run starts the terminal, paints the tree and processes events until ctx
// is done, Stop is called or the input ends.
func (r *Root) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r.mu.Lock()
	if r.cancel != nil {
		r.mu.Unlock()
		return ErrRunning
	}
	r.cancel = cancel
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.cancel = nil
		r.mu.Unlock()
	}()

	if err := r.installBindings(); err != nil {
		return err
	}
	if st, ok := r.surface.(interface{ Start() error }); ok {
		if err := st.Start(); err != nil {
			return fmt.Errorf("start screen: %w", err)
		}
	}
	if st, ok := r.surface.(interface{ Stop() error }); ok {
		defer func() {
			if err := st.Stop(); err != nil {
				r.log.Error("failed to restore terminal", "error", err)
			}
		}()
	}

	keys := r.keys
	if keys == nil {
		tk := NewTeaKeySource(ctx, os.Stdin)
		defer tk.Stop()
		keys = tk
	}

	if w, h, err := r.size(); err == nil && w > 0 && h > 0 {
		if cw, ch := r.surface.Size(); cw != w || ch != h {
			r.surface.Resize(w, h)
		}
	}
	if r.opts.Title != "" {
		r.surface.SetTitle(r.opts.Title)
	}
	r.Validate()
	r.top.FocusFirst(r.surface)
	r.Repaint()
	r.flush()

	watch := &resizeWatch{
		size:     r.size,
		sched:    r.queue,
		clock:    r.opts.clock(),
		poll:     r.opts.ResizePollInterval,
		quiet:    r.opts.ResizeQuietPeriod,
		log:      r.log,
		onChange: r.showResize,
		onSettle: r.settle,
	}
	watch.width, watch.height = r.surface.Size()

	r.log.Info("root started", "width", watch.width, "height", watch.height)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.watchInput(gctx, keys) })
	g.Go(func() error { return watch.run(gctx) })
	g.Go(func() error { return r.queue.Run(gctx) })
	err := g.Wait()
	r.tasks.CancelAll()
	r.log.Info("root stopped", "error", err)

	if errors.Is(err, context.Canceled) || errors.Is(err, ErrInputClosed) {
		return nil
	}
	return err
}

// Stop ends Run. It is safe to call from any goroutine.
func (r *Root) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
}

func (r *Root) installBindings() error {
	inputs := r.top.InputMap()
	BaselineBindings(inputs)
	inputs.Put(RuneStroke('c').WithCtrl(ModOn), ActionQuit)
	if err := r.opts.InstallBindings(inputs); err != nil {
		return fmt.Errorf("install bindings: %w", err)
	}
	if _, ok := r.top.ActionMap().Get(ActionQuit); !ok {
		r.top.ActionMap().Put(ActionQuit, func(ActionEvent) { r.Stop() })
	}
	return nil
}

func (r *Root) watchInput(ctx context.Context, keys KeySource) error {
	for {
		ev, err := keys.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read input: %w", err)
		}
		r.queue.RunLater(func() { r.AcceptInput(ev) })
	}
}

// AcceptInput replays ev against the focused chain, then against the top
// panel's own action bindings. Call it on the event goroutine.
func (r *Root) AcceptInput(ev KeyEvent) bool {
	if r.top.AcceptInput(ev, r.surface) {
		return true
	}
	if name, ok := ActionFor(r.top.InputMap().Compile(), ev); ok {
		if act, ok := r.top.ActionMap().Get(name); ok && act != nil {
			act(ActionEvent{Source: r.top, Key: ev, Graphics: r.surface})
			return true
		}
	}
	r.log.Debug("unhandled key", "key", ev.String())
	return false
}

// RunLater schedules fn on the event goroutine.
func (r *Root) RunLater(fn func()) {
	r.queue.RunLater(fn)
}

// RunAndWait schedules fn on the event goroutine and waits for it. It must
// not be called from the event goroutine.
func (r *Root) RunAndWait(ctx context.Context, fn func()) error {
	return r.queue.RunAndWait(ctx, fn)
}

// SetTitle changes the terminal title.
func (r *Root) SetTitle(title string) {
	r.opts.Title = title
	r.surface.SetTitle(title)
}

// Validate lays the tree out over the whole surface.
func (r *Root) Validate() {
	w, h := r.surface.Size()
	r.top.SetBounds(Rect{Width: w, Height: h})
	r.top.Validate()
}

// Repaint lays out, clears and prints the whole tree.
func (r *Root) Repaint() {
	r.Validate()
	r.surface.Clear()
	r.top.Print(r.surface)
}

func (r *Root) flush() {
	if err := r.surface.Flush(); err != nil {
		r.log.Error("flush failed", "error", err)
	}
}

func (r *Root) showResize(width, height int) {
	r.surface.Resize(width, height)
	r.surface.Clear()
	msg := resizeNotice(width, height)
	r.surface.Write(max((width-runewidth.StringWidth(msg))/2, 0), height/2, msg)
}

func (r *Root) settle(width, height int) {
	if w, h := r.surface.Size(); w != width || h != height {
		r.surface.Resize(width, height)
	}
	r.Repaint()
}

func (r *Root) handlePanic(err *PanicError) {
	r.log.Error("uncaught panic in event loop", "error", err, "stack", string(err.Stack))
	r.status(err.Error())
}

func (r *Root) status(msg string) {
	if r.StatusHandler != nil {
		r.StatusHandler(msg)
	}
}
