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

package color

// DecodeArray returns the decode array for image samples in the color
// space cs.  If invert is set, the range of every component is reversed;
// this is used for example for CMYK JPEG files written by Adobe software.
// Indexed color spaces are never inverted.
func DecodeArray(cs Space, bitsPerComponent int, invert bool) []float64 {
	decode := cs.DefaultDecode(bitsPerComponent)
	if !invert {
		return decode
	}
	if _, isIndexed := cs.(*SpaceIndexed); isIndexed {
		return decode
	}
	for i := 0; i+1 < len(decode); i += 2 {
		decode[i], decode[i+1] = decode[i+1], decode[i]
	}
	return decode
}

// unitRanges returns [0 1 0 1 ...] for n components.
func unitRanges(n int) []float64 {
	res := make([]float64, 2*n)
	for i := range n {
		res[2*i+1] = 1
	}
	return res
}
