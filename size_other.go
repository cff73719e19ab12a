//go:build !unix

package viu

import "golang.org/x/term"

// TerminalSize returns the column and row count of the terminal on fd.
func TerminalSize(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}
