package viu

import (
	"slices"
	"testing"
)

type fileRow struct {
	name string
	size int64
}

func sizeVariants(f fileRow) []string {
	switch {
	case f.size > 1000:
		return []string{"1k+", "1000+ bytes"}
	default:
		return []string{"<1k", "small file"}
	}
}

func TestIndicatorColumn(t *testing.T) {
	tests := []struct {
		focused, selected bool
		expect            string
	}{
		{false, false, " "},
		{true, false, ">"},
		{false, true, "*"},
		{true, true, "="},
	}
	var col IndicatorColumn[int]
	for _, tt := range tests {
		cell := col.Render(0, 0, 1, tt.focused, tt.selected).(*Text)
		if cell.Text != tt.expect {
			t.Errorf("focused=%v selected=%v: expected %q, got %q", tt.focused, tt.selected, tt.expect, cell.Text)
		}
	}
}

func TestBasicColumn(t *testing.T) {
	col := NewBasicColumn("Name", func(f fileRow) string { return f.name })

	t.Run("width fits title", func(t *testing.T) {
		got := col.Widths([]fileRow{{name: "a"}})
		if !slices.Equal(got, []int{4}) {
			t.Errorf("expected [4], got %v", got)
		}
	})

	t.Run("width fits values", func(t *testing.T) {
		got := col.Widths([]fileRow{{name: "a"}, {name: "longer.txt"}})
		if !slices.Equal(got, []int{10}) {
			t.Errorf("expected [10], got %v", got)
		}
	})

	t.Run("color", func(t *testing.T) {
		col.Color = func(fileRow) Color { return Green }
		defer func() { col.Color = nil }()
		cell := col.Render(fileRow{name: "x"}, 0, 4, false, false).(*Text)
		if cell.Foreground != Green {
			t.Errorf("expected green, got %v", cell.Foreground)
		}
	})
}

func TestMultistateColumn(t *testing.T) {
	col := NewMultistateColumn([]string{"Size of file", "Size"}, sizeVariants)
	data := []fileRow{{size: 10}, {size: 5000}}

	t.Run("widths", func(t *testing.T) {
		got := col.Widths(data)
		if !slices.Equal(got, []int{4, 11, 12}) {
			t.Errorf("expected [4 11 12], got %v", got)
		}
	})

	t.Run("longest fitting variant", func(t *testing.T) {
		if got := col.Render(fileRow{size: 5000}, 0, 11, false, false).(*Text).Text; got != "1000+ bytes" {
			t.Errorf("expected '1000+ bytes', got %q", got)
		}
		if got := col.Render(fileRow{size: 5000}, 0, 6, false, false).(*Text).Text; got != "1k+" {
			t.Errorf("expected '1k+', got %q", got)
		}
		if got := col.Render(fileRow{size: 5000}, 0, 1, false, false).(*Text).Text; got != "1k+" {
			t.Errorf("expected shortest variant when nothing fits, got %q", got)
		}
	})

	t.Run("title", func(t *testing.T) {
		if got := col.Title(20); got != "Size of file" {
			t.Errorf("expected 'Size of file', got %q", got)
		}
		if got := col.Title(6); got != "Size" {
			t.Errorf("expected 'Size', got %q", got)
		}
	})

	t.Run("visibility", func(t *testing.T) {
		if !col.IsVisible(data) {
			t.Error("expected visible by default")
		}
		col.Visible = func(d []fileRow) bool { return len(d) > 5 }
		defer func() { col.Visible = nil }()
		if col.IsVisible(data) {
			t.Error("expected hidden")
		}
	})
}
