package viu

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want KeyEvent
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, KeyEvent{Key: KeyRune, Rune: 'x'}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, KeyEvent{Key: KeyRune, Rune: 'x', Alt: true}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, KeyEvent{Key: KeySpace, Rune: ' '}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, KeyEvent{Key: KeyEnter}},
		{"alt enter", tea.KeyMsg{Type: tea.KeyEnter, Alt: true}, KeyEvent{Key: KeyEnter, Alt: true}},
		{"ctrl left", tea.KeyMsg{Type: tea.KeyCtrlLeft}, KeyEvent{Key: KeyLeft, Ctrl: true}},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, KeyEvent{Key: KeyTab, Shift: true}},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, KeyEvent{Key: KeyPageDown}},
		{"ctrl backspace", tea.KeyMsg{Type: tea.KeyCtrlH}, KeyEvent{Key: KeyBackspace, Ctrl: true}},
		{"ctrl letter", tea.KeyMsg{Type: tea.KeyCtrlC}, KeyEvent{Key: KeyRune, Rune: 'c', Ctrl: true}},
		{"f5", tea.KeyMsg{Type: tea.KeyF5}, KeyEvent{Key: KeyF5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateKey(tt.msg)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}

	t.Run("paste splits runes", func(t *testing.T) {
		got := translateKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a b"), Paste: true})
		if len(got) != 3 || got[1].Key != KeySpace || got[2].Rune != 'b' {
			t.Errorf("expected rune, space, rune; got %+v", got)
		}
	})

	t.Run("unmapped", func(t *testing.T) {
		if got := translateKey(tea.KeyMsg{Type: tea.KeyF20}); got != nil {
			t.Errorf("expected no events, got %+v", got)
		}
	})
}

func TestTeaKeySource(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	src := NewTeaKeySource(ctx, strings.NewReader("q\r"))

	first, err := src.Next(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Key != KeyRune || first.Rune != 'q' {
		t.Errorf("expected q, got %+v", first)
	}
	second, err := src.Next(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Key != KeyEnter {
		t.Errorf("expected enter, got %+v", second)
	}
	src.Stop()
}
