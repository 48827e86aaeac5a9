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

// Package image converts raster images into PostScript image operators.
//
// An [Encoder] produces the sample data of an image.  [NewEncoder] handles
// Go [image.Image] values, [NewJPEGEncoder] passes JPEG files through
// unchanged so that the interpreter decodes them with the DCTDecode filter.
// The [Dict] type describes the image dictionary used by the "image"
// operator, and [Render] paints an inline image.
package image
