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

package asciihex

import (
	"io"
)

const hexDigits = "0123456789abcdef"

// Encode returns a WriteCloser which writes the hexadecimal encoding of
// the data to w.  Output lines are at most lineWidth characters long.
// Closing the returned WriteCloser writes the end-of-data marker ">" and
// then closes w.
func Encode(w io.WriteCloser, lineWidth int) io.WriteCloser {
	if lineWidth < 2 {
		lineWidth = 2
	}
	return &writer{
		w:     w,
		width: lineWidth,
	}
}

type writer struct {
	w     io.WriteCloser
	width int
	col   int
	out   []byte
}

func (e *writer) Write(p []byte) (int, error) {
	for _, b := range p {
		if e.col+2 > e.width {
			e.out = append(e.out, '\n')
			e.col = 0
		}
		e.out = append(e.out, hexDigits[b>>4], hexDigits[b&15])
		e.col += 2
	}
	if len(e.out) >= 4096 {
		err := e.flush()
		if err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

func (e *writer) flush() error {
	_, err := e.w.Write(e.out)
	e.out = e.out[:0]
	return err
}

func (e *writer) Close() error {
	if e.col+1 > e.width {
		e.out = append(e.out, '\n')
	}
	e.out = append(e.out, '>')
	err := e.flush()
	if err != nil {
		return err
	}
	return e.w.Close()
}
