// seehuhn.de/go/psgen - a library for writing images as PostScript forms
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package psgen

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/psgen/internal/float"
)

// Options can be used to control the output of a [Generator].
type Options struct {
	// Level is the language level of the target interpreter.
	// If this is zero, [Level3] is used.
	Level LanguageLevel

	// Logger (optional) receives debug messages about the decisions taken
	// while writing, for example the filters chosen for image data.
	Logger *zap.Logger
}

// Generator writes PostScript program text to an io.Writer.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	// Err is the first error encountered while writing.  Once Err is set,
	// all methods of the Generator do nothing.
	Err error

	State
	stack []State

	w     *posWriter
	level LanguageLevel
	log   *zap.Logger
	res   *ResourceTracker
}

// NewGenerator returns a Generator which writes to w.
// If opt is nil, default options are used.
func NewGenerator(w io.Writer, opt *Options) *Generator {
	if opt == nil {
		opt = &Options{}
	}
	level := opt.Level
	if level == 0 {
		level = Level3
	}
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}

	g := &Generator{
		State: State{CTM: matrix.Identity},
		w:     &posWriter{w: w},
		level: level,
		log:   log,
		res:   NewResourceTracker(),
	}
	if !level.IsValid() {
		g.Err = fmt.Errorf("%w: %d", errLevel, int(level))
	}
	return g
}

// Level returns the language level of the output.
func (g *Generator) Level() LanguageLevel {
	return g.level
}

// SetLevel changes the language level of the output.
func (g *Generator) SetLevel(level LanguageLevel) {
	if !level.IsValid() {
		if g.Err == nil {
			g.Err = fmt.Errorf("%w: %d", errLevel, int(level))
		}
		return
	}
	g.level = level
}

// CheckLevel returns a [*LevelError] if the output language level is lower
// than needed.
func (g *Generator) CheckLevel(operation string, needed LanguageLevel) error {
	if g.level < needed {
		return &LevelError{Operation: operation, Needed: needed}
	}
	return nil
}

// Logger returns the logger given in the options.
func (g *Generator) Logger() *zap.Logger {
	return g.log
}

// Resources returns the resource tracker of the output.
func (g *Generator) Resources() *ResourceTracker {
	return g.res
}

// Pos returns the number of bytes written so far.
func (g *Generator) Pos() int64 {
	return g.w.pos
}

// Write writes p to the output without any processing.
// This implements the io.Writer interface, so that encoders for
// binary data can write directly to the output.
func (g *Generator) Write(p []byte) (int, error) {
	if g.Err != nil {
		return 0, g.Err
	}
	n, err := g.w.Write(p)
	g.Err = err
	return n, err
}

// WriteString writes s to the output.
// This implements the io.StringWriter interface.
func (g *Generator) WriteString(s string) (int, error) {
	if g.Err != nil {
		return 0, g.Err
	}
	n, err := io.WriteString(g.w, s)
	g.Err = err
	return n, err
}

// Writeln writes s, followed by a newline.
func (g *Generator) Writeln(s string) {
	if g.Err != nil {
		return
	}
	_, g.Err = io.WriteString(g.w, s+"\n")
}

// Writef writes formatted text to the output, see [fmt.Fprintf].
func (g *Generator) Writef(format string, args ...any) {
	if g.Err != nil {
		return
	}
	_, g.Err = fmt.Fprintf(g.w, format, args...)
}

// FormatNumber formats x for use in PostScript code.
// At most three digits after the decimal point are used.
func FormatNumber(x float64) string {
	return float.Format(x, 3)
}

// FormatArray formats a PostScript array of numbers, e.g. "[0 1 0 1]".
func FormatArray(xx []float64) string {
	parts := make([]string, len(xx))
	for i, x := range xx {
		parts[i] = FormatNumber(x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
