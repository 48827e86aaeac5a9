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

// Package color implements the color spaces used for painting images in
// PostScript.
//
// Device color spaces need no parameters and are available as singletons:
//   - [DeviceGray]: one gray component
//   - [DeviceRGB]: red, green and blue components
//   - [DeviceCMYK]: cyan, magenta, yellow and black components
//
// Other color spaces are created by constructor functions:
//   - [Named]: a named spot color
//   - [Indexed]: a palette of colors in a base color space
//   - [ICCBased]: a color space described by an ICC profile
//
// PostScript has no equivalent of named spot colors or ICC profiles for
// image data.  Images in these color spaces are painted using the device
// color space with the same number of components.
package color
