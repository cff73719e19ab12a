package viu

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// KeySource yields decoded key presses. Next blocks until a key arrives,
// the source ends or ctx is done.
type KeySource interface {
	Next(ctx context.Context) (KeyEvent, error)
}

// ErrInputClosed is returned by a KeySource whose input has ended.
var ErrInputClosed = errors.New("input closed")

// TeaKeySource decodes terminal input with a headless bubbletea program.
// Only its input parser is used: the renderer and signal handler are off
// and nothing is written to the terminal.
type TeaKeySource struct {
	events chan KeyEvent
	done   chan struct{}
	err    error
	prog   *tea.Program
}

var _ KeySource = (*TeaKeySource)(nil)

// NewTeaKeySource starts decoding in. The program stops when ctx is done.
func NewTeaKeySource(ctx context.Context, in io.Reader) *TeaKeySource {
	s := &TeaKeySource{
		events: make(chan KeyEvent, 64),
		done:   make(chan struct{}),
	}
	s.prog = tea.NewProgram(keyModel{events: s.events, done: ctx.Done()},
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
	go func() {
		defer close(s.done)
		_, err := s.prog.Run()
		if err == nil || errors.Is(err, tea.ErrProgramKilled) {
			err = ErrInputClosed
		}
		s.err = err
	}()
	return s
}

func (s *TeaKeySource) Next(ctx context.Context) (KeyEvent, error) {
	select {
	case ev := <-s.events:
		return ev, nil
	case <-s.done:
		return KeyEvent{}, s.err
	case <-ctx.Done():
		return KeyEvent{}, ctx.Err()
	}
}

// Stop ends the program and releases the input.
func (s *TeaKeySource) Stop() {
	s.prog.Kill()
	<-s.done
}

type keyModel struct {
	events chan<- KeyEvent
	done   <-chan struct{}
}

func (m keyModel) Init() tea.Cmd { return nil }

func (m keyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	for _, ev := range translateKey(k) {
		select {
		case m.events <- ev:
		case <-m.done:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m keyModel) View() string { return "" }

var teaKeys = map[tea.KeyType]KeyEvent{
	tea.KeySpace:     {Key: KeySpace, Rune: ' '},
	tea.KeyEnter:     {Key: KeyEnter},
	tea.KeyTab:       {Key: KeyTab},
	tea.KeyShiftTab:  {Key: KeyTab, Shift: true},
	tea.KeyBackspace: {Key: KeyBackspace},
	tea.KeyCtrlH:     {Key: KeyBackspace, Ctrl: true},
	tea.KeyDelete:    {Key: KeyDelete},
	tea.KeyInsert:    {Key: KeyInsert},
	tea.KeyEscape:    {Key: KeyEscape},

	tea.KeyUp:     {Key: KeyUp},
	tea.KeyDown:   {Key: KeyDown},
	tea.KeyLeft:   {Key: KeyLeft},
	tea.KeyRight:  {Key: KeyRight},
	tea.KeyHome:   {Key: KeyHome},
	tea.KeyEnd:    {Key: KeyEnd},
	tea.KeyPgUp:   {Key: KeyPageUp},
	tea.KeyPgDown: {Key: KeyPageDown},

	tea.KeyCtrlUp:     {Key: KeyUp, Ctrl: true},
	tea.KeyCtrlDown:   {Key: KeyDown, Ctrl: true},
	tea.KeyCtrlLeft:   {Key: KeyLeft, Ctrl: true},
	tea.KeyCtrlRight:  {Key: KeyRight, Ctrl: true},
	tea.KeyCtrlHome:   {Key: KeyHome, Ctrl: true},
	tea.KeyCtrlEnd:    {Key: KeyEnd, Ctrl: true},
	tea.KeyCtrlPgUp:   {Key: KeyPageUp, Ctrl: true},
	tea.KeyCtrlPgDown: {Key: KeyPageDown, Ctrl: true},

	tea.KeyShiftUp:    {Key: KeyUp, Shift: true},
	tea.KeyShiftDown:  {Key: KeyDown, Shift: true},
	tea.KeyShiftLeft:  {Key: KeyLeft, Shift: true},
	tea.KeyShiftRight: {Key: KeyRight, Shift: true},
	tea.KeyShiftHome:  {Key: KeyHome, Shift: true},
	tea.KeyShiftEnd:   {Key: KeyEnd, Shift: true},

	tea.KeyF1:  {Key: KeyF1},
	tea.KeyF2:  {Key: KeyF2},
	tea.KeyF3:  {Key: KeyF3},
	tea.KeyF4:  {Key: KeyF4},
	tea.KeyF5:  {Key: KeyF5},
	tea.KeyF6:  {Key: KeyF6},
	tea.KeyF7:  {Key: KeyF7},
	tea.KeyF8:  {Key: KeyF8},
	tea.KeyF9:  {Key: KeyF9},
	tea.KeyF10: {Key: KeyF10},
	tea.KeyF11: {Key: KeyF11},
	tea.KeyF12: {Key: KeyF12},
}

// translateKey maps a bubbletea key to our events. Pasted text arrives as
// one message and becomes one event per rune.
func translateKey(k tea.KeyMsg) []KeyEvent {
	if k.Type == tea.KeyRunes {
		out := make([]KeyEvent, 0, len(k.Runes))
		for _, r := range k.Runes {
			ev := KeyEvent{Key: KeyRune, Rune: r, Alt: k.Alt}
			if r == ' ' {
				ev.Key = KeySpace
			}
			out = append(out, ev)
		}
		return out
	}
	if ev, ok := teaKeys[k.Type]; ok {
		ev.Alt = ev.Alt || k.Alt
		return []KeyEvent{ev}
	}
	// remaining control codes are ctrl+letter
	if k.Type >= tea.KeyCtrlA && k.Type <= tea.KeyCtrlZ {
		r := 'a' + rune(k.Type-tea.KeyCtrlA)
		return []KeyEvent{{Key: KeyRune, Rune: r, Ctrl: true, Alt: k.Alt}}
	}
	return nil
}
