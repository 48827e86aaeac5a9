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
	"image"
	gocolor "image/color"
	"io"

	"seehuhn.de/go/psgen/graphics/color"
)

// Encoder produces the sample data of an image.
type Encoder interface {
	// WriteTo writes the image samples to w.
	WriteTo(w io.Writer) (int64, error)

	// ImplicitFilter returns the PostScript filter which is needed to
	// decode the samples, for example "/DCTDecode".  For raw samples the
	// empty string is returned.
	ImplicitFilter() string
}

// Source is an Encoder which knows the layout of its samples.
type Source interface {
	Encoder

	// ColorSpace returns the color space of the samples.
	ColorSpace() color.Space

	// BitsPerComponent returns the number of bits per sample.
	BitsPerComponent() int

	// Size returns the width and height of the image in pixels.
	Size() image.Point

	// Invert reports whether the decode array must be inverted.
	Invert() bool
}

var (
	_ Source = (*ImageEncoder)(nil)
	_ Source = (*JPEGEncoder)(nil)
)

type sampleKind int

const (
	kindRGB sampleKind = iota
	kindGray
	kindCMYK
	kindIndexed
)

// ImageEncoder writes the pixels of a Go image as raw image samples.
type ImageEncoder struct {
	img  image.Image
	cs   color.Space
	bpc  int
	kind sampleKind
}

// NewEncoder returns an encoder for the pixels of img.
//
// Gray images are written using DeviceGray, CMYK images using DeviceCMYK,
// and paletted images using an indexed color space with the smallest
// possible number of bits per sample.  All other images are written using
// DeviceRGB.  Transparent pixels are composited onto a white background.
func NewEncoder(img image.Image) *ImageEncoder {
	e := &ImageEncoder{
		img:  img,
		cs:   color.DeviceRGB,
		bpc:  8,
		kind: kindRGB,
	}

	switch img := img.(type) {
	case *image.Gray, *image.Gray16:
		e.cs = color.DeviceGray
		e.kind = kindGray
	case *image.CMYK:
		e.cs = color.DeviceCMYK
		e.kind = kindCMYK
	case *image.Paletted:
		cs, err := color.FromPalette(img.Palette)
		if err != nil {
			break
		}
		e.cs = cs
		e.kind = kindIndexed
		e.bpc = paletteBits(cs.NumCol)
	}
	return e
}

// paletteBits returns the number of bits needed to store an index into a
// palette with n entries.
func paletteBits(n int) int {
	switch {
	case n <= 2:
		return 1
	case n <= 4:
		return 2
	case n <= 16:
		return 4
	default:
		return 8
	}
}

// ColorSpace implements the [Source] interface.
func (e *ImageEncoder) ColorSpace() color.Space {
	return e.cs
}

// BitsPerComponent implements the [Source] interface.
func (e *ImageEncoder) BitsPerComponent() int {
	return e.bpc
}

// Size implements the [Source] interface.
func (e *ImageEncoder) Size() image.Point {
	return e.img.Bounds().Size()
}

// Invert implements the [Source] interface.
func (e *ImageEncoder) Invert() bool {
	return false
}

// ImplicitFilter returns the empty string, since the samples are not
// compressed.
// This implements the [Encoder] interface.
func (e *ImageEncoder) ImplicitFilter() string {
	return ""
}

// WriteTo writes the image samples row by row, starting with the top row.
// This implements the [Encoder] interface.
func (e *ImageEncoder) WriteTo(w io.Writer) (int64, error) {
	b := e.img.Bounds()
	row := newPixRow(b.Dx()*e.cs.Channels(), e.bpc)

	var total int64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row.reset()
		for x := b.Min.X; x < b.Max.X; x++ {
			e.appendPixel(row, x, y)
		}
		n, err := w.Write(row.bytes)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (e *ImageEncoder) appendPixel(row *pixRow, x, y int) {
	switch e.kind {
	case kindGray:
		c := gocolor.GrayModel.Convert(e.img.At(x, y)).(gocolor.Gray)
		row.appendBits(uint16(c.Y))
	case kindCMYK:
		c := gocolor.CMYKModel.Convert(e.img.At(x, y)).(gocolor.CMYK)
		row.appendBits(uint16(c.C))
		row.appendBits(uint16(c.M))
		row.appendBits(uint16(c.Y))
		row.appendBits(uint16(c.K))
	case kindIndexed:
		idx := e.img.(*image.Paletted).ColorIndexAt(x, y)
		row.appendBits(uint16(idx))
	default:
		r, g, b := color.OnWhite(e.img.At(x, y))
		row.appendBits(uint16(r))
		row.appendBits(uint16(g))
		row.appendBits(uint16(b))
	}
}

// HasAlpha reports whether img contains pixels which are not fully opaque.
func HasAlpha(img image.Image) bool {
	switch img.ColorModel() {
	case gocolor.GrayModel, gocolor.Gray16Model, gocolor.CMYKModel, gocolor.YCbCrModel:
		return false
	}

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a != 0xffff {
				return true
			}
		}
	}
	return false
}
