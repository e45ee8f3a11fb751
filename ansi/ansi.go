// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package ansi defines ANSI escape sequences for terminal colors and styles.
//
// The package never prints colored text itself; callers combine the
// constants with their own output.
package ansi

import (
	"io"
	"iter"
	"os"

	"golang.org/x/term"
)

// ANSI color escape sequences.
const (
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Khaki   = "\x1b[1;33m" // bold yellow
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Purple  = "\x1b[1;35m" // bold magenta
	Cyan    = "\x1b[36m"
	Bold    = "\x1b[1m"
	Reset   = "\x1b[0m"
)

var palette = [...]struct{ name, code string }{
	{"red", Red},
	{"green", Green},
	{"yellow", Yellow},
	{"khaki", Khaki},
	{"blue", Blue},
	{"magenta", Magenta},
	{"purple", Purple},
	{"cyan", Cyan},
	{"bold", Bold},
	{"reset", Reset},
}

// Palette yields the name and escape sequence of every constant, in
// declaration order.
func Palette() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, c := range palette {
			if !yield(c.name, c.code) {
				return
			}
		}
	}
}

// Wrap returns s prefixed with code and followed by [Reset].
func Wrap(code, s string) string { return code + s + Reset }

// IsTerminal reports whether fd is a terminal. Tests may replace it.
var IsTerminal = term.IsTerminal

// Enabled reports whether colors should be written to w: w must be an
// [*os.File] attached to a terminal, and the NO_COLOR environment variable
// (looked up with getenv) must be empty.
//
// See https://no-color.org.
func Enabled(w io.Writer, getenv func(string) string) bool {
	if getenv != nil && getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && IsTerminal(int(f.Fd()))
}
