package viu

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key identifies a physical key. Printable characters are KeyRune with the
// character in KeyEvent.Rune.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeySpace:     "space",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyEscape:    "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames)+4)
	for k, name := range keyNames {
		m[name] = k
	}
	m["escape"] = KeyEscape
	m["return"] = KeyEnter
	m["pageup"] = KeyPageUp
	m["pagedown"] = KeyPageDown
	return m
}()

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k == KeyRune {
		return "rune"
	}
	return "none"
}

// KeyEvent is one decoded key press.
type KeyEvent struct {
	Key   Key
	Rune  rune
	Ctrl  bool
	Alt   bool
	Shift bool
}

// Printable reports whether the event inserts a character.
func (e KeyEvent) Printable() bool {
	return (e.Key == KeyRune || e.Key == KeySpace) && e.Rune >= ' ' && !e.Ctrl && !e.Alt
}

func (e KeyEvent) String() string {
	return KeyStroke{
		Key:   e.Key,
		Rune:  e.Rune,
		Ctrl:  modFor(e.Ctrl),
		Alt:   modFor(e.Alt),
		Shift: modFor(e.Shift),
	}.String()
}

// Mod constrains one modifier of a KeyStroke.
type Mod int8

const (
	ModAny Mod = iota // modifier state is ignored
	ModOff            // modifier must be released
	ModOn             // modifier must be held
)

func modFor(held bool) Mod {
	if held {
		return ModOn
	}
	return ModOff
}

func (m Mod) accepts(held bool) bool {
	switch m {
	case ModOn:
		return held
	case ModOff:
		return !held
	default:
		return true
	}
}

// KeyStroke is a key plus modifier constraints. It is comparable and used
// as the key of input bindings.
type KeyStroke struct {
	Key   Key
	Rune  rune
	Ctrl  Mod
	Alt   Mod
	Shift Mod
}

// Stroke returns a stroke for key with every modifier required released.
func Stroke(key Key) KeyStroke {
	return KeyStroke{Key: key, Ctrl: ModOff, Alt: ModOff, Shift: ModOff}
}

// RuneStroke returns a stroke for the letter r with every modifier required
// released. Letters match case-insensitively.
func RuneStroke(r rune) KeyStroke {
	return KeyStroke{Key: KeyRune, Rune: unicode.ToLower(r), Ctrl: ModOff, Alt: ModOff, Shift: ModOff}
}

// WithCtrl returns a copy with the ctrl constraint set.
func (s KeyStroke) WithCtrl(m Mod) KeyStroke {
	s.Ctrl = m
	return s
}

// WithAlt returns a copy with the alt constraint set.
func (s KeyStroke) WithAlt(m Mod) KeyStroke {
	s.Alt = m
	return s
}

// WithShift returns a copy with the shift constraint set.
func (s KeyStroke) WithShift(m Mod) KeyStroke {
	s.Shift = m
	return s
}

// Matches reports whether ev satisfies the stroke.
func (s KeyStroke) Matches(ev KeyEvent) bool {
	if s.Key != ev.Key {
		return false
	}
	if s.Key == KeyRune && unicode.ToLower(s.Rune) != unicode.ToLower(ev.Rune) {
		return false
	}
	return s.Ctrl.accepts(ev.Ctrl) && s.Alt.accepts(ev.Alt) && s.Shift.accepts(ev.Shift)
}

// specificity counts the constrained modifiers. Lookups prefer the most
// specific matching stroke.
func (s KeyStroke) specificity() int {
	n := 0
	for _, m := range [...]Mod{s.Ctrl, s.Alt, s.Shift} {
		if m != ModAny {
			n++
		}
	}
	return n
}

// String renders the stroke in the form ParseKeyStroke accepts. Modifiers
// that are ModAny are prefixed with "?".
func (s KeyStroke) String() string {
	var sb strings.Builder
	for _, p := range [...]struct {
		name string
		m    Mod
	}{{"ctrl", s.Ctrl}, {"alt", s.Alt}, {"shift", s.Shift}} {
		switch p.m {
		case ModOn:
			sb.WriteString(p.name + "+")
		case ModAny:
			sb.WriteString("?" + p.name + "+")
		}
	}
	if s.Key == KeyRune {
		sb.WriteRune(s.Rune)
	} else {
		sb.WriteString(s.Key.String())
	}
	return sb.String()
}

// ParseKeyStroke parses strings like "ctrl+left", "shift+enter", "q" or
// "?ctrl+pgdown". Named modifiers are required held, unnamed ones required
// released, and a "?" prefix makes a modifier optional.
func ParseKeyStroke(s string) (KeyStroke, error) {
	parts := strings.Split(strings.TrimSpace(s), "+")
	// "ctrl++" binds the plus key
	if len(parts) >= 2 && parts[len(parts)-1] == "" && parts[len(parts)-2] == "" {
		parts = append(parts[:len(parts)-2], "+")
	}
	ks := KeyStroke{Ctrl: ModOff, Alt: ModOff, Shift: ModOff}
	for _, p := range parts[:len(parts)-1] {
		m := ModOn
		name := strings.ToLower(strings.TrimSpace(p))
		if strings.HasPrefix(name, "?") {
			m, name = ModAny, name[1:]
		}
		switch name {
		case "ctrl", "control":
			ks.Ctrl = m
		case "alt", "meta":
			ks.Alt = m
		case "shift":
			ks.Shift = m
		default:
			return KeyStroke{}, fmt.Errorf("key %q: unknown modifier %q", s, p)
		}
	}

	last := parts[len(parts)-1]
	if k, ok := keysByName[strings.ToLower(last)]; ok {
		ks.Key = k
		return ks, nil
	}
	if utf8.RuneCountInString(last) == 1 {
		r, _ := utf8.DecodeRuneInString(last)
		ks.Key, ks.Rune = KeyRune, unicode.ToLower(r)
		return ks, nil
	}
	return KeyStroke{}, fmt.Errorf("key %q: unknown key name %q", s, last)
}
