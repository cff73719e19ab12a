package viu

import (
	"cmp"
	"slices"
)

// Standard action identifiers understood by the built-in components.
const (
	ActionMoveUp        = "mv_up"
	ActionMoveDown      = "mv_down"
	ActionMoveLeft      = "mv_left"
	ActionMoveRight     = "mv_right"
	ActionMoveLeftWord  = "mv_left_word"
	ActionMoveRightWord = "mv_right_word"
	ActionMoveLineStart = "mv_start"
	ActionMoveLineEnd   = "mv_end"
	ActionPageUp        = "page_up"
	ActionPageDown      = "page_down"

	ActionBase      = "action_base"
	ActionSecondary = "secondary action"
	ActionCancel    = "action_cancel"
	ActionSelect    = "action_select"

	ActionDeleteLeft      = "action_delleft"
	ActionDeleteLeftWord  = "action_delwleft"
	ActionDeleteRight     = "action_delright"
	ActionDeleteRightWord = "action_delwright"
)

// Action is the effect bound to an action identifier.
type Action func(ActionEvent)

// ActionEvent carries the component an action fired on, the triggering key
// and the surface to repaint on.
type ActionEvent struct {
	Source   Component
	Key      KeyEvent
	Graphics Graphics
}

// BaselineBindings installs the default navigation and editing keys on m.
func BaselineBindings(m InputMap) {
	m.Put(Stroke(KeyUp), ActionMoveUp)
	m.Put(Stroke(KeyDown), ActionMoveDown)
	m.Put(Stroke(KeyLeft), ActionMoveLeft)
	m.Put(Stroke(KeyRight), ActionMoveRight)
	m.Put(Stroke(KeyLeft).WithCtrl(ModOn), ActionMoveLeftWord)
	m.Put(Stroke(KeyRight).WithCtrl(ModOn), ActionMoveRightWord)
	m.Put(Stroke(KeyHome), ActionMoveLineStart)
	m.Put(Stroke(KeyEnd), ActionMoveLineEnd)
	m.Put(Stroke(KeyPageUp), ActionPageUp)
	m.Put(Stroke(KeyPageDown), ActionPageDown)

	m.Put(Stroke(KeyEnter), ActionBase)
	m.Put(Stroke(KeyEnter).WithShift(ModOn), ActionSecondary)
	m.Put(Stroke(KeyEnter).WithAlt(ModOn), ActionSecondary)
	m.Put(Stroke(KeyEscape), ActionCancel)
	m.Put(Stroke(KeySpace), ActionSelect)

	m.Put(Stroke(KeyBackspace), ActionDeleteLeft)
	m.Put(Stroke(KeyBackspace).WithCtrl(ModOn), ActionDeleteLeftWord)
	m.Put(Stroke(KeyDelete), ActionDeleteRight)
	m.Put(Stroke(KeyDelete).WithCtrl(ModOn), ActionDeleteRightWord)
}

// ActionFor returns the action bound to the stroke matching ev. When several
// strokes match, the one constraining the most modifiers wins, then the
// lexically smallest action name.
func ActionFor(inputs map[KeyStroke]string, ev KeyEvent) (string, bool) {
	type hit struct {
		spec   int
		action string
	}
	var hits []hit
	for ks, action := range inputs {
		if ks.Matches(ev) {
			hits = append(hits, hit{ks.specificity(), action})
		}
	}
	if len(hits) == 0 {
		return "", false
	}
	best := slices.MinFunc(hits, func(a, b hit) int {
		if c := cmp.Compare(b.spec, a.spec); c != 0 {
			return c
		}
		return cmp.Compare(a.action, b.action)
	})
	return best.action, true
}

// Corresponds reports whether any stroke bound to action matches ev.
func Corresponds(inputs map[KeyStroke]string, ev KeyEvent, action string) bool {
	for ks, a := range inputs {
		if a == action && ks.Matches(ev) {
			return true
		}
	}
	return false
}

// StrokesFor returns the strokes bound to action, sorted by their string
// form.
func StrokesFor(inputs map[KeyStroke]string, action string) []KeyStroke {
	var out []KeyStroke
	for ks, a := range inputs {
		if a == action {
			out = append(out, ks)
		}
	}
	slices.SortFunc(out, func(a, b KeyStroke) int {
		return cmp.Compare(a.String(), b.String())
	})
	return out
}
