// SPDX-License-Identifier: MIT
// Package: gematria/report
//
// writer.go: Writer, styling and low-level printing.

package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorTitle = lipgloss.Color("#7D56F4")
	colorMuted = lipgloss.Color("#6C7086")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTitle)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// Option customizes a Writer.
type Option func(*Writer)

// WithStyle forces styling on or off, overriding terminal detection.
func WithStyle(on bool) Option {
	return func(w *Writer) { w.styled = on }
}

// Writer prints report records to an underlying io.Writer.
type Writer struct {
	out    io.Writer
	styled bool
	err    error
}

// New returns a Writer on out. Styling defaults to on when out is a terminal.
// Panics on a nil out.
func New(out io.Writer, opts ...Option) *Writer {
	if out == nil {
		panic("report: New(nil writer)")
	}
	w := &Writer{out: out, styled: IsTerminal(out)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Err returns the first write error, if any.
func (w *Writer) Err() error { return w.err }

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

func (w *Writer) println(s string) { w.printf("%s\n", s) }

// Section prints a section title followed by a newline.
func (w *Writer) Section(title string) error {
	line := "=== " + title + " ==="
	if w.styled {
		line = titleStyle.Render(line)
	}
	w.println(line)
	return w.err
}

// Note prints a secondary line (muted when styled).
func (w *Writer) Note(text string) error {
	if w.styled {
		text = mutedStyle.Render(text)
	}
	w.println(text)
	return w.err
}

// Blank prints an empty line.
func (w *Writer) Blank() error {
	w.println("")
	return w.err
}
