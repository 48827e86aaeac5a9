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
	"seehuhn.de/go/postscript"

	"seehuhn.de/go/psgen"
)

// Space represents a color space in which image samples are specified.
type Space interface {
	// Family returns the family of the color space, e.g. "DeviceRGB".
	Family() string

	// Channels returns the number of color components.
	Channels() int

	// DefaultDecode returns the decode array which maps image samples with
	// the given number of bits per component onto the full range of each
	// color component.
	DefaultDecode(bitsPerComponent int) []float64

	// SetColorSpace writes the PostScript code which makes this the current
	// color space for painting images.
	SetColorSpace(g *psgen.Generator)
}

// Color space families.
const (
	FamilyDeviceGray = "DeviceGray"
	FamilyDeviceRGB  = "DeviceRGB"
	FamilyDeviceCMYK = "DeviceCMYK"
	FamilySeparation = "Separation"
	FamilyIndexed    = "Indexed"
	FamilyICCBased   = "ICCBased"
)

// The following types implement the Space interface:
var (
	_ Space = spaceDeviceGray{}
	_ Space = spaceDeviceRGB{}
	_ Space = spaceDeviceCMYK{}
	_ Space = (*SpaceNamed)(nil)
	_ Space = (*SpaceIndexed)(nil)
	_ Space = (*SpaceICCBased)(nil)
)


// IsDevice reports whether cs is one of the device color spaces.
func IsDevice(cs Space) bool {
	switch cs.(type) {
	case spaceDeviceGray, spaceDeviceRGB, spaceDeviceCMYK:
		return true
	}
	return false
}

func psName(name string) string {
	x := postscript.Name(name)
	return x.PS()
}

func setDevice(g *psgen.Generator, family string) {
	g.Writeln(psName(family) + " setcolorspace")
}
