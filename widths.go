package viu

import (
	"slices"
)

// ColumnSpec is the width-related view of a column: its ascending candidate
// widths and its sizing weights.
type ColumnSpec struct {
	Widths []int
	ColumnSizing
}

// ResolveWidths assigns a width to each column for a row of available cells
// with gap cells between neighbors.
//
// Every column starts at its minimum candidate. If that overflows, each
// column gives up a ceiling share of the overflow proportional to its Shrink
// weight. Whatever a column is too narrow to give up passes to the rest.
// Otherwise priority groups, highest first, upgrade each member to the
// largest candidate that still fits, and the remaining slack is handed out
// in whole units of slack/totalGrow per Grow weight.
//
// The result depends only on its inputs.
func ResolveWidths(cols []ColumnSpec, available, gap int) []int {
	n := len(cols)
	widths := make([]int, n)
	if n == 0 {
		return widths
	}
	for i, c := range cols {
		if len(c.Widths) > 0 {
			widths[i] = c.Widths[0]
		}
	}
	used := sum(widths) + gap*(n-1)

	if used > available {
		shrinkWidths(cols, widths, used-available)
		return widths
	}

	left := available - used
	left = expandWidths(cols, widths, left)

	totalGrow := 0
	for _, c := range cols {
		totalGrow += max(c.Grow, 0)
	}
	if totalGrow > 0 && left > 0 {
		unit := left / totalGrow
		for i, c := range cols {
			widths[i] += unit * max(c.Grow, 0)
		}
	}
	return widths
}

// shrinkWidths takes over cells from the Shrink-weighted columns. A column
// that hits zero passes the rest of its share to the others on the next
// round.
func shrinkWidths(cols []ColumnSpec, widths []int, over int) {
	for over > 0 {
		totalShrink := 0
		for i, c := range cols {
			if c.Shrink > 0 && widths[i] > 0 {
				totalShrink += c.Shrink
			}
		}
		if totalShrink == 0 {
			return
		}
		round := over
		for i, c := range cols {
			if c.Shrink <= 0 || widths[i] == 0 {
				continue
			}
			cut := min((round*c.Shrink+totalShrink-1)/totalShrink, widths[i])
			widths[i] -= cut
			over -= cut
		}
	}
}

// expandWidths upgrades columns group by group and returns the cells left.
func expandWidths(cols []ColumnSpec, widths []int, left int) int {
	var prios []int
	for _, c := range cols {
		prios = append(prios, c.Priority)
	}
	slices.Sort(prios)
	prios = slices.Compact(prios)
	slices.Reverse(prios)

	for _, p := range prios {
		for i, c := range cols {
			if c.Priority != p {
				continue
			}
			best := widths[i]
			for _, cand := range c.Widths {
				if cand > best && cand-widths[i] <= left {
					best = cand
				}
			}
			left -= best - widths[i]
			widths[i] = best
		}
	}
	return left
}

func sum(xs []int) int {
	t := 0
	for _, x := range xs {
		t += x
	}
	return t
}
