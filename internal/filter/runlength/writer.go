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

// Package runlength implements the encoding used by the PostScript
// RunLengthDecode filter.
//
// The data is a sequence of runs.  A length byte n in the range 0 to 127
// is followed by n+1 literal bytes.  A length byte n in the range 129 to
// 255 is followed by a single byte which is repeated 257-n times.  The
// length byte 128 marks the end of the data.
package runlength

import (
	"io"
)

const eod = 128

// Encode returns a new WriteCloser which writes data in run-length format
// to w.  Closing the returned WriteCloser writes the end-of-data marker and
// then closes w.
func Encode(w io.WriteCloser) io.WriteCloser {
	return &encoder{w: w}
}

type encoder struct {
	w      io.WriteCloser
	lit    []byte // pending literal bytes, at most 128
	run    byte
	runLen int // length of the pending run, 0 if none
	out    []byte
}

// Write implements the io.Writer interface.
func (e *encoder) Write(p []byte) (int, error) {
	for _, b := range p {
		if e.runLen > 0 {
			if b == e.run && e.runLen < 128 {
				e.runLen++
				continue
			}
			e.endRun()
		}

		// three equal bytes start a new run
		n := len(e.lit)
		if n >= 2 && e.lit[n-1] == b && e.lit[n-2] == b {
			e.endLiteral(n - 2)
			e.run = b
			e.runLen = 3
			continue
		}

		e.lit = append(e.lit, b)
		if len(e.lit) == 128 {
			e.endLiteral(128)
		}
	}

	if len(e.out) >= 4096 {
		err := e.flush()
		if err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// endLiteral emits the first n pending literal bytes and discards the rest.
func (e *encoder) endLiteral(n int) {
	if n > 0 {
		e.out = append(e.out, byte(n-1))
		e.out = append(e.out, e.lit[:n]...)
	}
	e.lit = e.lit[:0]
}

func (e *encoder) endRun() {
	e.out = append(e.out, byte(257-e.runLen), e.run)
	e.runLen = 0
}

func (e *encoder) flush() error {
	_, err := e.w.Write(e.out)
	e.out = e.out[:0]
	return err
}

// Close flushes the remaining bytes and writes the end-of-data marker.
// It also closes the underlying writer.
func (e *encoder) Close() error {
	if e.runLen > 0 {
		e.endRun()
	}
	e.endLiteral(len(e.lit))
	e.out = append(e.out, eod)
	err := e.flush()
	if err != nil {
		return err
	}
	return e.w.Close()
}
