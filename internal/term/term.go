// Package term is the terminal collaborator: raw mode lifecycle,
// size queries with environment fallback, and the ANSI escape output
// the renderer writes. Input decoding does not live here; this
// package only supplies the byte stream source and the output sink.
package term

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// Default terminal dimensions used when no size source is available.
const (
	DefaultWidth  = 100
	DefaultHeight = 30
)

// Terminal wraps the controlling TTY.
type Terminal struct {
	in    *os.File
	out   *os.File
	state *term.State
}

// New creates a terminal over stdin/stdout.
func New() *Terminal {
	return &Terminal{in: os.Stdin, out: os.Stdout}
}

// Input returns the raw byte source for the input decoder.
func (t *Terminal) Input() io.Reader {
	return t.in
}

// Output returns the writer for rendered output.
func (t *Terminal) Output() io.Writer {
	return t.out
}

// EnterRaw puts the terminal into raw mode. The previous state is
// kept for Restore.
func (t *Terminal) EnterRaw() error {
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.state = state
	return nil
}

// Restore returns the terminal to the state before EnterRaw. Calling
// it without a prior EnterRaw is a no-op.
func (t *Terminal) Restore() error {
	if t.state == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.state); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	t.state = nil
	return nil
}

// Size returns the terminal dimensions in cells. When the direct
// query is unavailable it falls back to the COLUMNS/LINES environment
// variables, then to 100x30. The fallback is a default supplier, not
// authoritative.
func (t *Terminal) Size() (width, height uint16) {
	if w, h, err := term.GetSize(int(t.out.Fd())); err == nil && w > 0 && h > 0 {
		return uint16(w), uint16(h)
	}
	return envSize()
}

// envSize reads COLUMNS/LINES, defaulting each dimension that is
// absent or unparsable.
func envSize() (width, height uint16) {
	width, height = DefaultWidth, DefaultHeight
	if v, err := strconv.ParseUint(os.Getenv("COLUMNS"), 10, 16); err == nil && v > 0 {
		width = uint16(v)
	}
	if v, err := strconv.ParseUint(os.Getenv("LINES"), 10, 16); err == nil && v > 0 {
		height = uint16(v)
	}
	return width, height
}
