package main

import (
	"cmp"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"viu"
)

// entry is one row of the file browser.
type entry struct {
	Name    string
	Size    int64
	Mode    fs.FileMode
	ModTime time.Time
}

func (e *entry) IsDir() bool {
	return e.Mode.IsDir()
}

func (e *entry) label() string {
	if e.IsDir() && e.Name != ".." {
		return e.Name + "/"
	}
	return e.Name
}

// listDir reads dir, directories first, then by name. A ".." entry leads
// to the parent unless dir is the filesystem root.
func listDir(ctx context.Context, dir string, progress func(n int)) ([]*entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]*entry, 0, len(des)+1)
	if filepath.Dir(dir) != dir {
		out = append(out, &entry{Name: "..", Mode: fs.ModeDir})
	}
	for i, de := range des {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := de.Info()
		if err != nil {
			// vanished between ReadDir and Info
			continue
		}
		out = append(out, &entry{
			Name:    de.Name(),
			Size:    info.Size(),
			Mode:    info.Mode(),
			ModTime: info.ModTime(),
		})
		if progress != nil && (i+1)%500 == 0 {
			progress(i + 1)
		}
	}
	slices.SortFunc(out, func(a, b *entry) int {
		switch {
		case a.Name == "..":
			return -1
		case b.Name == "..":
			return 1
		case a.IsDir() != b.IsDir():
			if a.IsDir() {
				return -1
			}
			return 1
		}
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return out, nil
}

func sizeVariants(e *entry) []string {
	if e.IsDir() {
		return []string{"-"}
	}
	return []string{humanize.Bytes(uint64(e.Size)), humanize.Comma(e.Size) + " B"}
}

func timeVariants(e *entry) []string {
	if e.ModTime.IsZero() {
		return []string{""}
	}
	return []string{humanize.Time(e.ModTime), e.ModTime.Format(time.DateTime)}
}

// browser is the files page: a search field over a table of entries. The
// table is reloaded by a background task whenever the folder changes.
type browser struct {
	d      *demo
	panel  *viu.Panel
	table  *viu.Table[*entry]
	search *viu.TextField
	modes  *viu.Modes

	dir     string
	loading *viu.Task
}

func newBrowser(d *demo) *browser {
	b := &browser{d: d}
	b.search = viu.NewTextField()
	b.search.Placeholder = "press / to search"
	b.search.Locked = true
	b.search.OnTextChanged = func(viu.ActionEvent) { b.filter() }
	b.search.OnAction = func(ev viu.ActionEvent) { b.endSearch(ev.Graphics, false) }

	b.table = viu.NewTable[*entry](nil,
		viu.IndicatorColumn[*entry]{},
		&viu.BasicColumn[*entry]{
			Header:       "Name",
			Value:        (*entry).label,
			Color:        entryColor,
			ColumnSizing: viu.ColumnSizing{Priority: 2, Grow: 1, Shrink: 1},
		},
	)
	size := viu.NewMultistateColumn([]string{"Size"}, sizeVariants)
	size.HAlign = viu.AlignEnd
	size.Priority = 1
	modified := viu.NewMultistateColumn([]string{"Mod", "Modified"}, timeVariants)
	modified.Visible = func(es []*entry) bool { return len(es) > 0 }
	mode := viu.NewBasicColumn("Mode", func(e *entry) string { return e.Mode.String() })
	b.table.AddColumn(size)
	b.table.AddColumn(modified)
	b.table.AddColumn(mode)

	b.table.InputMap().Put(viu.Stroke(viu.KeyBackspace), actionParent)
	b.table.OnItemActivate = func(e *entry, _ int) {
		if e.IsDir() {
			b.open(filepath.Join(b.dir, e.Name))
			return
		}
		d.setStatus(fmt.Sprintf("%s: %s, modified %s", e.Name, humanize.Bytes(uint64(e.Size)), humanize.Time(e.ModTime)))
	}
	b.table.OnSelectionChange = func(sel []*entry) {
		var total int64
		for _, e := range sel {
			total += e.Size
		}
		d.setStatus(fmt.Sprintf("%d selected, %s", len(sel), humanize.Bytes(uint64(total))))
	}

	b.panel = viu.NewPanel(&viu.Border{})
	b.panel.MustAdd(b.search, viu.BorderTop).MustAdd(b.table, viu.BorderCenter)

	b.modes = viu.NewModes(b.panel)
	sea := b.modes.Define(viu.ModeSearch)
	sea.Put(viu.Stroke(viu.KeyEscape), actionSearchCancel)
	sea.Put(viu.Stroke(viu.KeyDown), actionSearchDone)
	b.modes.OnSwitch = func(_, to string) { d.setStatus("mode " + to) }

	actions := b.panel.ActionMap()
	actions.Put(actionSearch, func(ev viu.ActionEvent) { b.startSearch(ev.Graphics) })
	actions.Put(actionSearchDone, func(ev viu.ActionEvent) { b.endSearch(ev.Graphics, false) })
	actions.Put(actionSearchCancel, func(ev viu.ActionEvent) { b.endSearch(ev.Graphics, true) })
	actions.Put(actionParent, func(viu.ActionEvent) { b.open(filepath.Dir(b.dir)) })
	return b
}

func entryColor(e *entry) viu.Color {
	switch {
	case e.IsDir():
		return viu.BrightBlue
	case e.Mode&fs.ModeSymlink != 0:
		return viu.Cyan
	case e.Mode&0o111 != 0:
		return viu.Green
	}
	return viu.ColorDefault
}

// open lists dir in the background. A result from any task but the latest
// is dropped, even when it lists the same folder.
func (b *browser) open(dir string) {
	if b.loading != nil {
		b.loading.Cancel()
	}
	b.dir = dir
	var loaded []*entry
	var task *viu.Task
	task = b.d.root.Tasks().Go("list "+dir, func(t *viu.Task) error {
		var err error
		loaded, err = listDir(t.Context(), dir, func(n int) {
			t.Progress(fmt.Sprintf("%d entries", n))
		})
		return err
	}, func(res viu.Result) {
		if !b.current(dir, task) {
			return
		}
		b.loading = nil
		if !res.OK {
			b.d.setStatus(res.Message)
			return
		}
		b.table.SetData(viu.NewObservable(loaded...))
		b.filter()
		b.d.setStatus(fmt.Sprintf("%s: %s entries", dir, humanize.Comma(int64(len(loaded)))))
		b.d.root.Repaint()
	})
	b.loading = task
}

// current reports whether task is the latest listing of dir.
func (b *browser) current(dir string, task *viu.Task) bool {
	return task != nil && task == b.loading && dir == b.dir
}

func (b *browser) filter() {
	b.table.SetFilter(b.search.Text(), func(e *entry) string { return e.Name })
}

func (b *browser) startSearch(g viu.Graphics) {
	if !b.modes.Switch(viu.ModeSearch) {
		return
	}
	b.search.Locked = false
	b.table.SetFocused(false, g)
	b.search.SetFocused(true, g)
}

// endSearch leaves search mode. With clear set the query is dropped.
func (b *browser) endSearch(g viu.Graphics, clear bool) {
	b.modes.Switch(viu.ModeNavigate)
	if clear {
		b.search.SetText("")
		b.filter()
	}
	b.search.SetFocused(false, g)
	b.search.Locked = true
	b.search.Print(g)
	b.table.SetFocused(true, g)
}
