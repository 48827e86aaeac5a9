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

import (
	"bytes"
	"fmt"
	"image"
	gocolor "image/color"
	"image/jpeg"
	"io"

	"seehuhn.de/go/psgen/graphics/color"
)

// JPEGEncoder passes a JPEG file through to the PostScript interpreter,
// which decodes it using the DCTDecode filter.
type JPEGEncoder struct {
	data   []byte
	size   image.Point
	cs     color.Space
	invert bool
}

// NewJPEGEncoder returns an encoder for the JPEG file data.
// The color space is taken from the JPEG header.  CMYK files written by
// Adobe software store inverted samples; for these files Invert returns
// true.
func NewJPEGEncoder(data []byte) (*JPEGEncoder, error) {
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("JPEG: %w", err)
	}

	e := &JPEGEncoder{
		data: data,
		size: image.Pt(cfg.Width, cfg.Height),
	}
	switch cfg.ColorModel {
	case gocolor.GrayModel:
		e.cs = color.DeviceGray
	case gocolor.CMYKModel:
		e.cs = color.DeviceCMYK
		e.invert = hasAdobeMarker(data)
	default:
		e.cs = color.DeviceRGB
	}
	return e, nil
}

// ColorSpace implements the [Source] interface.
func (e *JPEGEncoder) ColorSpace() color.Space {
	return e.cs
}

// BitsPerComponent implements the [Source] interface.
func (e *JPEGEncoder) BitsPerComponent() int {
	return 8
}

// Size implements the [Source] interface.
func (e *JPEGEncoder) Size() image.Point {
	return e.size
}

// Invert implements the [Source] interface.
func (e *JPEGEncoder) Invert() bool {
	return e.invert
}

// ImplicitFilter returns "/DCTDecode".
// This implements the [Encoder] interface.
func (e *JPEGEncoder) ImplicitFilter() string {
	return FilterDCT
}

// WriteTo writes the unmodified JPEG data to w.
// This implements the [Encoder] interface.
func (e *JPEGEncoder) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(e.data)
	return int64(n), err
}

// hasAdobeMarker reports whether the JPEG data contains an APP14 segment
// written by Adobe software.
func hasAdobeMarker(data []byte) bool {
	pos := 2 // skip SOI
	for pos+4 <= len(data) {
		if data[pos] != 0xff {
			return false
		}
		marker := data[pos+1]
		if marker == 0xff { // fill byte
			pos++
			continue
		}
		if marker == 0xda { // start of scan
			return false
		}
		length := int(data[pos+2])<<8 | int(data[pos+3])
		if marker == 0xee && length >= 7 && pos+9 <= len(data) &&
			string(data[pos+4:pos+9]) == "Adobe" {
			return true
		}
		pos += 2 + length
	}
	return false
}
