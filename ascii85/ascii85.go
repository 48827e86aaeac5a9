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

// Package ascii85 implements the ASCII base-85 encoding used by the
// PostScript ASCII85Decode filter.
//
// In contrast to the standard library package encoding/ascii85, the
// encoder here breaks the output into lines and terminates the data with
// the end-of-data marker "~>", so that the output can be embedded directly
// into PostScript code.
package ascii85

import (
	"errors"
	"io"
)

// MaxLineLength is the maximal length of the lines written by the encoder,
// not counting the newline character.
const MaxLineLength = 80

// Encode returns a WriteCloser which writes the ASCII85 encoding of the
// data to w.  Close must be called to flush the remaining data and to
// write the end-of-data marker.  Closing the encoder does not close w.
//
// No output line starts with a "%" character, so that the encoded data
// cannot be mistaken for DSC comments.
func Encode(w io.Writer) io.WriteCloser {
	return &ascii85Writer{
		w:   w,
		buf: make([]byte, 0, MaxLineLength+2),
	}
}

// Decode returns a Reader which decodes ASCII85 data read from r.
// White space is ignored, and reading stops at the end-of-data marker
// "~>".
func Decode(r io.Reader) io.Reader {
	return &ascii85Reader{r: r}
}

type ascii85Writer struct {
	w   io.Writer
	buf []byte // current output line
	v   uint32
	k   int
}

func (w *ascii85Writer) Write(p []byte) (n int, err error) {
	for n, b := range p {
		w.v = w.v<<8 | uint32(b)
		w.k++
		if w.k < 4 {
			continue
		}

		var group [5]byte
		var enc []byte
		if w.v == 0 {
			enc = []byte{'z'}
		} else {
			v := w.v
			for i := 4; i >= 0; i-- {
				group[i] = byte(v%85) + '!'
				v /= 85
			}
			enc = group[:]
		}
		w.v = 0
		w.k = 0

		err = w.emit(enc)
		if err != nil {
			return n, err
		}
	}
	return len(p), nil
}

// emit appends encoded characters to the current line, starting a new line
// where needed.
func (w *ascii85Writer) emit(enc []byte) error {
	for _, c := range enc {
		if len(w.buf) >= MaxLineLength {
			err := w.flush()
			if err != nil {
				return err
			}
		}
		if len(w.buf) == 0 && c == '%' {
			w.buf = append(w.buf, ' ')
		}
		w.buf = append(w.buf, c)
	}
	return nil
}

func (w *ascii85Writer) Close() error {
	if w.k != 0 {
		v := w.v << ((4 - w.k) * 8)
		var c [5]byte
		for i := 4; i >= 0; i-- {
			c[i] = byte(v%85) + '!'
			v /= 85
		}
		err := w.emit(c[:w.k+1])
		if err != nil {
			return err
		}
		w.v = 0
		w.k = 0
	}
	if len(w.buf)+2 > MaxLineLength {
		err := w.flush()
		if err != nil {
			return err
		}
	}
	w.buf = append(w.buf, '~', '>')
	return w.flush()
}

func (w *ascii85Writer) flush() error {
	w.buf = append(w.buf, '\n')
	_, err := w.w.Write(w.buf)
	if err != nil {
		return err
	}
	w.buf = w.buf[:0]
	return nil
}

type ascii85Reader struct {
	r              io.Reader
	immediateError error
	delayedError   error
	buf            [512]byte
	outbuf         [4]byte
	leftover       []byte
	pos, nbuf      int
	v              uint32
	k              int
	isEnd          bool
}

var (
	errEndMarker = errors.New("invalid end marker in ASCII85 stream")
	errEarlyEnd  = errors.New("unexpected end marker in ASCII85 stream")
	errInvalid   = errors.New("invalid character in ASCII85 stream")
)

func (r *ascii85Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.immediateError != nil {
		return 0, r.immediateError
	}

	if len(r.leftover) > 0 {
		n = copy(p, r.leftover)
		r.leftover = r.leftover[n:]
	}

	for n < len(p) {
		for r.pos == r.nbuf && r.delayedError == nil {
			r.nbuf, r.delayedError = r.r.Read(r.buf[:])
			r.pos = 0

			if r.delayedError == io.EOF {
				r.delayedError = io.ErrUnexpectedEOF
			}
		}
		if r.pos == r.nbuf {
			r.immediateError = r.delayedError
			return n, r.immediateError
		}
		c := r.buf[r.pos]
		r.pos++

		// "~" can only be the first part of the end marker "~>"
		if r.isEnd {
			if c == '>' {
				r.immediateError = io.EOF
			} else {
				r.immediateError = errEndMarker
			}
			return n, r.immediateError
		}

		if isSpace(c) {
			continue
		}

		switch {
		case c >= '!' && c < '!'+85:
			r.v = r.v*85 + uint32(c-'!')
			r.k++
		case r.k == 0 && c == 'z':
			r.v = 0
			r.k = 5
		case c == '~':
			switch r.k {
			case 0:
				// pass
			case 1:
				r.immediateError = errEarlyEnd
				return n, r.immediateError
			default:
				for i := r.k; i < 5; i++ {
					r.v = r.v*85 + 84
				}
				r.putGroup()
				l := copy(p[n:], r.outbuf[:r.k-1])
				n += l
				if l < r.k-1 {
					r.leftover = r.outbuf[l : r.k-1]
				}
			}
			r.isEnd = true
			continue
		default:
			r.immediateError = errInvalid
			return n, r.immediateError
		}

		if r.k == 5 {
			r.putGroup()
			r.k = 0
			r.v = 0

			l := copy(p[n:], r.outbuf[:])
			n += l
			if l < 4 {
				r.leftover = r.outbuf[l:]
			}
		}
	}
	return n, r.immediateError
}

func (r *ascii85Reader) putGroup() {
	r.outbuf[0] = byte(r.v >> 24)
	r.outbuf[1] = byte(r.v >> 16)
	r.outbuf[2] = byte(r.v >> 8)
	r.outbuf[3] = byte(r.v)
}

func isSpace(c byte) bool {
	switch c {
	case 0, 9, 10, 12, 13, 32:
		return true
	}
	return false
}
