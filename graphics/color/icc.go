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
	"slices"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/psgen"
)

// SpaceICCBased represents a color space described by an ICC profile.
//
// PostScript cannot use ICC profiles directly.  Image samples are painted
// in the device color space with the same number of components as the
// profile.
type SpaceICCBased struct {
	// Profile is the raw ICC profile data.
	Profile []byte

	base Space
}

// ICCBased returns a new ICC-based color space.
// Only gray, RGB and CMYK profiles are supported.
func ICCBased(profile []byte) (*SpaceICCBased, error) {
	if len(profile) == 0 {
		return nil, errors.New("ICCBased: missing profile")
	}

	// icc.Decode clears header fields of v4 profiles while checking the
	// profile ID
	p, err := icc.Decode(slices.Clone(profile))
	if err != nil {
		return nil, fmt.Errorf("ICCBased: %w", err)
	}

	var base Space
	switch p.ColorSpace {
	case icc.GraySpace:
		base = DeviceGray
	case icc.RGBSpace:
		base = DeviceRGB
	case icc.CMYKSpace:
		base = DeviceCMYK
	default:
		return nil, fmt.Errorf("ICCBased: unsupported color space %v", p.ColorSpace)
	}

	res := &SpaceICCBased{
		Profile: profile,
		base:    base,
	}
	return res, nil
}

// Base returns the device color space used for painting.
func (s *SpaceICCBased) Base() Space {
	return s.base
}

// Family returns "ICCBased".
// This implements the [Space] interface.
func (s *SpaceICCBased) Family() string {
	return FamilyICCBased
}

// Channels returns the number of components of the profile.
// This implements the [Space] interface.
func (s *SpaceICCBased) Channels() int {
	return s.base.Channels()
}

// DefaultDecode implements the [Space] interface.
func (s *SpaceICCBased) DefaultDecode(bitsPerComponent int) []float64 {
	return s.base.DefaultDecode(bitsPerComponent)
}

// SetColorSpace selects the device color space with the same number of
// components as the profile.
// This implements the [Space] interface.
func (s *SpaceICCBased) SetColorSpace(g *psgen.Generator) {
	s.base.SetColorSpace(g)
}
