package main

import (
	"fmt"
	"path/filepath"

	"viu"
)

const (
	actionSearch       = "search"
	actionSearchDone   = "search_done"
	actionSearchCancel = "search_cancel"
	actionParent       = "parent"
)

// demoBindings adds the keys the demo uses on top of the baseline.
func demoBindings(m viu.InputMap) {
	m.Put(viu.RuneStroke('q'), viu.ActionQuit)
	m.Put(viu.RuneStroke('/'), actionSearch)
	m.Put(viu.Stroke(viu.KeyBackspace).WithAlt(viu.ModOn), actionParent)
}

type page struct {
	hint  string
	title string
	about string
}

type demo struct {
	root   *viu.Root
	top    *viu.Panel
	pages  *viu.Switcher
	status *viu.Text
	files  *browser
}

func newDemo(opts viu.Options, dir string, ropts ...viu.RootOption) (*demo, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	d := &demo{top: viu.NewPanel(&viu.Border{})}
	header := viu.NewText(" viu ")
	header.Foreground = viu.BrightCyan
	d.status = viu.NewText("enter: open  esc: menu  q: quit")
	d.status.ClearBlank = true
	d.status.Foreground = viu.DarkGray

	var sw *viu.Panel
	sw, d.pages = viu.NewSwitcherPanel()
	sw.ClearBeforePrint = true
	d.top.MustAdd(header, viu.BorderTop).
		MustAdd(sw, viu.BorderCenter).
		MustAdd(d.status, viu.BorderBottom)

	pages := []*page{
		{"border", "Border", "five slots with directional focus"},
		{"layout", "Line and Flow", "stacked and wrapping rows of buttons"},
		{"form", "Form", "text fields and a submit button"},
		{"files", "Files", "browse " + abs},
	}
	sw.MustAdd(d.menu(pages), "menu")
	sw.MustAdd(d.borderPage(), "border")
	sw.MustAdd(d.layoutPage(), "layout")
	sw.MustAdd(d.formPage(), "form")
	d.files = newBrowser(d)
	sw.MustAdd(d.files.panel, "files")

	demoBindings(d.top.InputMap())
	d.top.ActionMap().Put(viu.ActionCancel, func(ev viu.ActionEvent) {
		d.show("menu", ev.Graphics)
	})

	d.root = viu.NewRoot(d.top, opts, ropts...)
	d.root.StatusHandler = d.setStatus
	d.root.Tasks().OnProgress = func(task, msg string) {
		d.setStatus(task + ": " + msg)
	}
	d.files.open(abs)
	return d, nil
}

// show switches the visible page and repaints.
func (d *demo) show(hint string, g viu.Graphics) {
	if !d.pages.SwitchToHint(hint, g) {
		return
	}
	d.root.Repaint()
}

// setStatus replaces the bottom line. Call it on the event goroutine.
func (d *demo) setStatus(msg string) {
	d.status.Text = msg
	d.status.Print(d.root.Graphics())
}

func (d *demo) menu(pages []*page) viu.Component {
	t := viu.NewTable(viu.NewObservable(pages...),
		viu.IndicatorColumn[*page]{},
		&viu.BasicColumn[*page]{
			Header: "Page",
			Value:  func(p *page) string { return p.title },
			Color:  func(*page) viu.Color { return viu.BrightYellow },
		},
		&viu.BasicColumn[*page]{
			Header:       "About",
			Value:        func(p *page) string { return p.about },
			ColumnSizing: viu.ColumnSizing{Grow: 1, Shrink: 1},
		},
	)
	t.OnActivate = func(ev viu.ActionEvent) {
		if p, ok := t.FocusedItem(); ok {
			d.show(p.hint, ev.Graphics)
		}
	}
	return t
}

func (d *demo) pressed(name string) func(viu.ActionEvent) {
	return func(viu.ActionEvent) { d.setStatus("pressed " + name) }
}

func (d *demo) borderPage() viu.Component {
	p := viu.NewPanel(&viu.Border{})
	slots := []struct {
		hint  string
		style viu.LineStyle
	}{
		{viu.BorderTop, viu.LineDouble},
		{viu.BorderLeft, viu.LineRounded},
		{viu.BorderCenter, viu.LineHeavy},
		{viu.BorderRight, viu.LineRounded},
		{viu.BorderBottom, viu.LineBarebones},
	}
	for _, s := range slots {
		p.MustAdd(viu.NewBox(viu.NewButton(s.hint, d.pressed(s.hint)), s.style), s.hint)
	}
	return p
}

func (d *demo) layoutPage() viu.Component {
	p := viu.NewPanel(&viu.Line{Gap: 1})

	row := viu.NewPanel(&viu.Line{Orientation: viu.Horizontal, Gap: 2})
	for _, name := range []string{"one", "two", "three"} {
		row.MustAdd(viu.NewButton(name, d.pressed(name)), "")
	}

	flow := viu.NewPanel(&viu.Flow{Wrap: true, HGap: 1})
	for i := range 24 {
		name := fmt.Sprintf("w%02d", i)
		flow.MustAdd(viu.NewButton(name, d.pressed(name)), "")
	}

	p.MustAdd(viu.NewText("horizontal line"), "").
		MustAdd(row, "").
		MustAdd(viu.NewSeparator(viu.Horizontal), "").
		MustAdd(viu.NewText("wrapping flow"), "").
		MustAdd(flow, "")
	return p
}

func (d *demo) formPage() viu.Component {
	name := viu.NewTextField()
	name.Placeholder = "your name"
	name.ShowLine = true
	secret := viu.NewTextField()
	secret.Placeholder = "a secret"
	secret.HideText = true
	secret.ShowLine = true

	submit := viu.NewButton("submit", func(viu.ActionEvent) {
		d.setStatus(fmt.Sprintf("hello, %s (secret is %d runes)", name.Text(), len([]rune(secret.Text()))))
	})
	name.OnAction = submit.OnAction

	p := viu.NewPanel(&viu.Line{Gap: 1})
	p.MustAdd(viu.NewText("Name"), "").
		MustAdd(name, "").
		MustAdd(viu.NewText("Secret"), "").
		MustAdd(secret, "").
		MustAdd(submit, "")
	return viu.NewBox(p, viu.LineSimple)
}
