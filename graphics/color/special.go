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

import (
	"errors"
	"fmt"
	stdcolor "image/color"
	"io"
	"strconv"

	"seehuhn.de/go/psgen"
	"seehuhn.de/go/psgen/internal/filter/asciihex"
)

// == Named ==================================================================

// SpaceNamed represents a named spot color, with a single tint component.
type SpaceNamed struct {
	// Name is the name of the colorant.
	Name string

	// Fallback (optional) is the approximate appearance of the colorant at
	// full tint.
	Fallback stdcolor.Color
}

// Named returns a new color space for the spot color with the given name.
func Named(name string, fallback stdcolor.Color) *SpaceNamed {
	return &SpaceNamed{Name: name, Fallback: fallback}
}

// Family returns "Separation".
// This implements the [Space] interface.
func (s *SpaceNamed) Family() string {
	return FamilySeparation
}

// Channels returns 1.
// This implements the [Space] interface.
func (s *SpaceNamed) Channels() int {
	return 1
}

// DefaultDecode returns [0 1].
// This implements the [Space] interface.
func (s *SpaceNamed) DefaultDecode(int) []float64 {
	return unitRanges(1)
}

// SetColorSpace selects DeviceGray.  Image samples in a named color
// space are painted as gray levels.
// This implements the [Space] interface.
func (s *SpaceNamed) SetColorSpace(g *psgen.Generator) {
	setDevice(g, FamilyDeviceGray)
}

// == Indexed ================================================================

// SpaceIndexed represents an indexed color space.
type SpaceIndexed struct {
	Base   Space
	NumCol int

	// lookup contains the palette, Base.Channels() bytes per color.
	lookup []byte
}

// Indexed returns a new indexed color space.
//
// The base must be a device color space.  The lookup table contains
// base.Channels() bytes for each color, and the number of colors must be in
// the range from 1 to 256 (both inclusive).
func Indexed(base Space, lookup []byte) (*SpaceIndexed, error) {
	if !IsDevice(base) {
		return nil, fmt.Errorf("Indexed: invalid base color space %s", base.Family())
	}
	n := base.Channels()
	if len(lookup)%n != 0 {
		return nil, errors.New("Indexed: incomplete lookup table")
	}
	numCol := len(lookup) / n
	if numCol < 1 || numCol > 256 {
		return nil, fmt.Errorf("Indexed: invalid number of colors: %d", numCol)
	}
	return &SpaceIndexed{
		Base:   base,
		NumCol: numCol,
		lookup: lookup,
	}, nil
}

// FromPalette returns an indexed color space with base DeviceRGB for the
// given palette.  Transparent palette entries are composited onto a white
// background.
func FromPalette(p stdcolor.Palette) (*SpaceIndexed, error) {
	lookup := make([]byte, 0, 3*len(p))
	for _, c := range p {
		r, g, b := OnWhite(c)
		lookup = append(lookup, r, g, b)
	}
	return Indexed(DeviceRGB, lookup)
}

// Family returns "Indexed".
// This implements the [Space] interface.
func (s *SpaceIndexed) Family() string {
	return FamilyIndexed
}

// Channels returns 1.
// This implements the [Space] interface.
func (s *SpaceIndexed) Channels() int {
	return 1
}

// DefaultDecode returns [0 2^bitsPerComponent-1], so that sample values
// are used as indices into the palette.
// This implements the [Space] interface.
func (s *SpaceIndexed) DefaultDecode(bitsPerComponent int) []float64 {
	return []float64{0, float64(int(1)<<bitsPerComponent - 1)}
}

// SetColorSpace writes the palette and selects the indexed color space.
// This implements the [Space] interface.
func (s *SpaceIndexed) SetColorSpace(g *psgen.Generator) {
	if g.Err != nil {
		return
	}
	if err := g.CheckLevel("Indexed color space", psgen.Level2); err != nil {
		g.Err = err
		return
	}

	head := "[" + psName(FamilyIndexed) + " " + psName(s.Base.Family()) +
		" " + strconv.Itoa(s.NumCol-1)
	if 2*len(s.lookup) < hexLineLength {
		g.WriteString(head + " <")
	} else {
		g.Writeln(head + " <")
	}
	enc := asciihex.Encode(nopCloser{g}, hexLineLength)
	_, err := enc.Write(s.lookup)
	if err == nil {
		err = enc.Close()
	}
	if err != nil {
		if g.Err == nil {
			g.Err = err
		}
		return
	}
	g.Writeln("] setcolorspace")
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

const hexLineLength = 64

// OnWhite converts c to 8-bit RGB values, composited onto a white
// background.
func OnWhite(c stdcolor.Color) (r, g, b uint8) {
	r32, g32, b32, a32 := c.RGBA()
	bg := 0xffff - a32
	return uint8((r32 + bg) >> 8), uint8((g32 + bg) >> 8), uint8((b32 + bg) >> 8)
}
