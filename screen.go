package viu

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Screen is the terminal Graphics. Drawing goes to a back Canvas; Flush
// writes the cells that differ from what is on the terminal.
type Screen struct {
	*Canvas

	front  *Buffer
	writer io.Writer
	input  *os.File

	frame    bytes.Buffer
	out      *termenv.Output
	renderer *lipgloss.Renderer
	styles   map[Style]lipgloss.Style

	origState   *term.State
	altScreen   bool
	started     bool
	clearNeeded bool

	shownTitle  string
	shownCursor bool
}

var _ Surface = (*Screen)(nil)

// ScreenOption configures a Screen.
type ScreenOption func(*Screen)

// WithAltScreen controls whether Start switches to the alternate screen.
func WithAltScreen(enabled bool) ScreenOption {
	return func(s *Screen) { s.altScreen = enabled }
}

// WithInput sets the file that is put in raw mode. Defaults to os.Stdin.
func WithInput(f *os.File) ScreenOption {
	return func(s *Screen) { s.input = f }
}

// NewScreen creates a screen writing to w. Pass nil to use os.Stdout.
// The initial size is read from w when it is a terminal, else 80x24.
func NewScreen(w io.Writer, opts ...ScreenOption) *Screen {
	if w == nil {
		w = os.Stdout
	}

	width, height := 80, 24
	if f, ok := w.(*os.File); ok {
		if cw, ch, err := TerminalSize(int(f.Fd())); err == nil && cw > 0 && ch > 0 {
			width, height = cw, ch
		}
	}

	s := &Screen{
		Canvas:    NewCanvas(width, height),
		writer:    w,
		input:     os.Stdin,
		altScreen: true,
		styles:    make(map[Style]lipgloss.Style),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.out = termenv.NewOutput(&s.frame, termenv.WithProfile(termenv.ANSI))
	s.renderer = lipgloss.NewRenderer(&s.frame, termenv.WithProfile(termenv.ANSI))
	s.renderer.SetColorProfile(termenv.ANSI)
	s.front = NewBuffer(width, height)
	s.invalidate()
	return s
}

// Start puts the input in raw mode (when it is a terminal), enters the
// alternate screen and hides the cursor.
func (s *Screen) Start() error {
	if s.started {
		return nil
	}
	if s.input != nil && term.IsTerminal(int(s.input.Fd())) {
		st, err := term.MakeRaw(int(s.input.Fd()))
		if err != nil {
			return fmt.Errorf("failed to set raw mode: %w", err)
		}
		s.origState = st
	}
	if s.altScreen {
		s.out.AltScreen()
	}
	s.out.HideCursor()
	s.out.ClearScreen()
	s.started = true
	return s.emit()
}

// Stop restores the terminal to the state Start found it in.
func (s *Screen) Stop() error {
	if !s.started {
		return nil
	}
	s.started = false
	s.out.Reset()
	s.out.ShowCursor()
	if s.altScreen {
		s.out.ExitAltScreen()
	}
	err := s.emit()
	if s.origState != nil {
		if rerr := term.Restore(int(s.input.Fd()), s.origState); rerr != nil {
			return fmt.Errorf("failed to restore terminal: %w", rerr)
		}
		s.origState = nil
	}
	return err
}

// Resize changes the surface size. The next Flush repaints everything.
func (s *Screen) Resize(width, height int) {
	s.Canvas.Resize(width, height)
	s.front.Resize(width, height)
	s.invalidate()
}

// Clear blanks the back buffer and the terminal.
func (s *Screen) Clear() {
	s.Canvas.Clear()
	s.invalidate()
}

// invalidate forces the next Flush to clear the terminal and rewrite every
// cell.
func (s *Screen) invalidate() {
	s.front.Fill(Cell{Rune: -1})
	s.clearNeeded = true
}

// Flush writes the changed cells, the cursor and the title to the terminal.
func (s *Screen) Flush() error {
	if s.clearNeeded {
		s.out.ClearScreen()
		s.clearNeeded = false
	}

	back := s.Canvas.Buffer()
	var run []rune
	for y := 0; y < back.Height(); y++ {
		if !back.RowDirty(y) && !s.front.RowDirty(y) {
			continue
		}
		runStart := -1
		var runStyle Style
		for x := 0; x < back.Width(); x++ {
			cell := back.Get(x, y)
			changed := cell != s.front.Get(x, y)
			s.front.Set(x, y, cell)
			if cell.Rune == 0 {
				// second half of a wide rune, already covered by the run
				continue
			}
			if !changed || (runStart >= 0 && cell.Style != runStyle) {
				if runStart >= 0 {
					s.writeRun(runStart, y, run, runStyle)
					run, runStart = run[:0], -1
				}
				if !changed {
					continue
				}
			}
			if runStart < 0 {
				runStart, runStyle = x, cell.Style
			}
			run = append(run, cell.Rune)
		}
		if runStart >= 0 {
			s.writeRun(runStart, y, run, runStyle)
			run = run[:0]
		}
	}
	back.ClearDirty()
	s.front.ClearDirty()

	if title := s.Canvas.Title(); title != s.shownTitle {
		s.out.SetWindowTitle(title)
		s.shownTitle = title
	}
	cx, cy, visible := s.Canvas.Cursor()
	if visible {
		s.out.MoveCursor(cy+1, cx+1)
	}
	if visible != s.shownCursor {
		if visible {
			s.out.ShowCursor()
		} else {
			s.out.HideCursor()
		}
		s.shownCursor = visible
	}
	return s.emit()
}

func (s *Screen) writeRun(x, y int, run []rune, st Style) {
	s.out.MoveCursor(y+1, x+1)
	s.frame.WriteString(s.style(st).Render(string(run)))
}

func (s *Screen) style(st Style) lipgloss.Style {
	if ls, ok := s.styles[st]; ok {
		return ls
	}
	ls := s.renderer.NewStyle()
	if i := st.FG.ANSI(); i >= 0 {
		ls = ls.Foreground(lipgloss.ANSIColor(uint(i)))
	}
	if i := st.BG.ANSI(); i >= 0 {
		ls = ls.Background(lipgloss.ANSIColor(uint(i)))
	}
	if st.Inverse {
		ls = ls.Reverse(true)
	}
	s.styles[st] = ls
	return ls
}

func (s *Screen) emit() error {
	if s.frame.Len() == 0 {
		return nil
	}
	_, err := s.writer.Write(s.frame.Bytes())
	s.frame.Reset()
	return err
}
