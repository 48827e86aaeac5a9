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

import "seehuhn.de/go/psgen"

// Singletons for the device color spaces.
var (
	DeviceGray = spaceDeviceGray{}
	DeviceRGB  = spaceDeviceRGB{}
	DeviceCMYK = spaceDeviceCMYK{}
)

// == DeviceGray =============================================================

type spaceDeviceGray struct{}

// Family returns "DeviceGray".
// This implements the [Space] interface.
func (s spaceDeviceGray) Family() string {
	return FamilyDeviceGray
}

// Channels returns 1.
// This implements the [Space] interface.
func (s spaceDeviceGray) Channels() int {
	return 1
}

// DefaultDecode returns [0 1].
// This implements the [Space] interface.
func (s spaceDeviceGray) DefaultDecode(int) []float64 {
	return unitRanges(1)
}

// SetColorSpace writes "/DeviceGray setcolorspace".
// This implements the [Space] interface.
func (s spaceDeviceGray) SetColorSpace(g *psgen.Generator) {
	setDevice(g, FamilyDeviceGray)
}

// == DeviceRGB ==============================================================

type spaceDeviceRGB struct{}

// Family returns "DeviceRGB".
// This implements the [Space] interface.
func (s spaceDeviceRGB) Family() string {
	return FamilyDeviceRGB
}

// Channels returns 3.
// This implements the [Space] interface.
func (s spaceDeviceRGB) Channels() int {
	return 3
}

// DefaultDecode returns [0 1 0 1 0 1].
// This implements the [Space] interface.
func (s spaceDeviceRGB) DefaultDecode(int) []float64 {
	return unitRanges(3)
}

// SetColorSpace writes "/DeviceRGB setcolorspace".
// This implements the [Space] interface.
func (s spaceDeviceRGB) SetColorSpace(g *psgen.Generator) {
	setDevice(g, FamilyDeviceRGB)
}

// == DeviceCMYK =============================================================

type spaceDeviceCMYK struct{}

// Family returns "DeviceCMYK".
// This implements the [Space] interface.
func (s spaceDeviceCMYK) Family() string {
	return FamilyDeviceCMYK
}

// Channels returns 4.
// This implements the [Space] interface.
func (s spaceDeviceCMYK) Channels() int {
	return 4
}

// DefaultDecode returns [0 1 0 1 0 1 0 1].
// This implements the [Space] interface.
func (s spaceDeviceCMYK) DefaultDecode(int) []float64 {
	return unitRanges(4)
}

// SetColorSpace writes "/DeviceCMYK setcolorspace".
// This implements the [Space] interface.
func (s spaceDeviceCMYK) SetColorSpace(g *psgen.Generator) {
	setDevice(g, FamilyDeviceCMYK)
}
