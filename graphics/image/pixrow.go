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

package image

// pixRow packs image samples of less than 8 bits into bytes.
// Every row starts on a byte boundary.
type pixRow struct {
	bytes   []byte
	byteIdx int
	bitPos  int
	numBits int // bits per sample
}

func newPixRow(numElems, bitsPerElem int) *pixRow {
	rowBytes := (numElems*bitsPerElem + 7) >> 3
	return &pixRow{
		bytes:   make([]byte, rowBytes),
		numBits: bitsPerElem,
	}
}

func (r *pixRow) reset() {
	r.byteIdx = 0
	r.bitPos = 0
	clear(r.bytes)
}

// appendBits appends the lowest numBits bits of v.
func (r *pixRow) appendBits(v uint16) {
	if r.numBits == 8 {
		r.bytes[r.byteIdx] = byte(v)
		r.byteIdx++
		return
	}

	todo := r.numBits
	for todo > 0 {
		avail := 8 - r.bitPos
		k := min(todo, avail)

		bits := byte((v >> (todo - k)) & (1<<k - 1))
		r.bytes[r.byteIdx] |= bits << (avail - k)

		r.bitPos += k
		todo -= k
		if r.bitPos == 8 {
			r.byteIdx++
			r.bitPos = 0
		}
	}
}
