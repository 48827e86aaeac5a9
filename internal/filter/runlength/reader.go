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

package runlength

import (
	"bufio"
	"io"
)

// Decode returns a Reader which decodes run-length encoded data.
// Reading stops at the end-of-data marker, or at the end of r.
func Decode(r io.Reader) io.Reader {
	return &decoder{r: bufio.NewReader(r)}
}

type decoder struct {
	r   *bufio.Reader
	err error

	// the current run
	literal bool
	count   int
	value   byte
}

// Read implements the io.Reader interface.
func (d *decoder) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) && d.err == nil {
		if d.count == 0 {
			d.next()
			continue
		}

		k := min(d.count, len(p)-n)
		if d.literal {
			k, d.err = io.ReadFull(d.r, p[n:n+k])
			if d.err == io.EOF {
				d.err = io.ErrUnexpectedEOF
			}
		} else {
			for i := range k {
				p[n+i] = d.value
			}
		}
		n += k
		d.count -= k
	}

	if n > 0 {
		return n, nil
	}
	return 0, d.err
}

// next reads the length byte of the next run.
func (d *decoder) next() {
	length, err := d.r.ReadByte()
	if err != nil {
		d.err = err
		return
	}

	switch {
	case length == eod:
		d.err = io.EOF
	case length < eod:
		d.literal = true
		d.count = int(length) + 1
	default:
		d.value, err = d.r.ReadByte()
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		d.err = err
		d.literal = false
		d.count = 257 - int(length)
	}
}
