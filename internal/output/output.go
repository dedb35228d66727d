// SPDX-License-Identifier: MIT

// Package output opens the destination of the command-line renderers and
// keeps binary image data off interactive terminals.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/raykernel/canvas"
	"golang.org/x/term"
)

// Stdout is the path that selects standard output.
const Stdout = "-"

// ErrTerminal is returned when image data would be written to a terminal
// without force.
var ErrTerminal = errors.New("output: refusing to write an image to a terminal (redirect or use -force)")

// isTerminal is swapped out by tests.
var isTerminal = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// Write encodes c in format f to path, or to standard output when path is
// Stdout. Writing to a terminal is refused unless force is set.
//
// Errors:
//   - ErrTerminal; canvas.ErrUnknownFormat; file and encoder errors.
func Write(path string, c *canvas.Canvas, f canvas.Format, force bool) error {
	if path == Stdout {
		return writeTo(os.Stdout, c, f, force)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err = writeTo(file, c, f, force); err != nil {
		_ = file.Close()

		return err
	}

	return file.Close()
}

func writeTo(file *os.File, c *canvas.Canvas, f canvas.Format, force bool) error {
	if !force && isTerminal(file) {
		return ErrTerminal
	}

	return encode(file, c, f)
}

func encode(w io.Writer, c *canvas.Canvas, f canvas.Format) error {
	if err := canvas.WriteImage(w, c, f); err != nil {
		return fmt.Errorf("output: %s: %w", f, err)
	}

	return nil
}
