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
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/psgen"
	"seehuhn.de/go/psgen/ascii85"
	"seehuhn.de/go/psgen/graphics/color"
	"seehuhn.de/go/psgen/internal/filter/runlength"
)

// PostScript filter names.
const (
	FilterASCII85   = "/ASCII85Decode"
	FilterFlate     = "/FlateDecode"
	FilterRunLength = "/RunLengthDecode"
	FilterDCT       = "/DCTDecode"
)

var (
	// ErrUnsupportedBitDepth is returned for images where the number of
	// bits per component is not supported by PostScript.
	ErrUnsupportedBitDepth = errors.New("unsupported number of bits per component")

	// ErrNoData is returned when image data is requested from a form or
	// inline image without an encoder.
	ErrNoData = errors.New("no image data")
)

// Dict describes an image dictionary of type 1, as used by the PostScript
// "image" operator.
type Dict struct {
	// Width is the width of the image in samples.
	Width int

	// Height is the height of the image in samples.
	Height int

	// BitsPerComponent is the number of bits per sample.
	// The value must be 1, 2, 4, 8 or 12.
	BitsPerComponent int

	// Decode (optional) maps sample values to color components.
	// If this is nil, the default decode array of the color space is used.
	Decode []float64

	// ImageMatrix maps user space to image space.
	ImageMatrix matrix.Matrix

	// DataSource is the PostScript code which provides the samples,
	// for example "currentfile /ASCII85Decode filter".
	DataSource string
}

// Check verifies that the dictionary is valid for images in the color
// space cs.
func (d *Dict) Check(cs color.Space) error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("image: invalid size %dx%d", d.Width, d.Height)
	}
	switch d.BitsPerComponent {
	case 1, 2, 4, 8, 12:
		// pass
	default:
		return fmt.Errorf("image: %w: %d", ErrUnsupportedBitDepth, d.BitsPerComponent)
	}
	if d.Decode != nil && len(d.Decode) != 2*cs.Channels() {
		return fmt.Errorf("image: decode array has %d entries, expected %d",
			len(d.Decode), 2*cs.Channels())
	}
	if d.DataSource == "" {
		return errors.New("image: missing data source")
	}
	return nil
}

// WriteImageCommand writes the code which selects the color space cs and
// paints the image described by d.
//
// The output has the following form:
//
//	/DeviceRGB setcolorspace
//	<<
//	  /ImageType 1
//	  ...
//	>> image
func WriteImageCommand(g *psgen.Generator, d *Dict, cs color.Space) error {
	if g.Err != nil {
		return g.Err
	}
	if err := d.Check(cs); err != nil {
		g.Err = err
		return err
	}

	decode := d.Decode
	if decode == nil {
		decode = cs.DefaultDecode(d.BitsPerComponent)
	}

	cs.SetColorSpace(g)
	g.Writeln("<<")
	g.Writeln("  /ImageType 1")
	g.Writeln("  /Width " + strconv.Itoa(d.Width))
	g.Writeln("  /Height " + strconv.Itoa(d.Height))
	g.Writeln("  /BitsPerComponent " + strconv.Itoa(d.BitsPerComponent))
	g.Writeln("  /Decode " + psgen.FormatArray(decode))
	g.Writeln("  /ImageMatrix " + psgen.FormatArray(d.ImageMatrix[:]))
	g.Writeln("  /DataSource " + d.DataSource)
	g.Writeln(">> image")
	return g.Err
}

// ApplyFilters appends the given decode filters to the PostScript code
// for a data source.
func ApplyFilters(source string, filters ...string) string {
	for _, f := range filters {
		if f == "" {
			continue
		}
		source += " " + f + " filter"
	}
	return source
}

// WriteData writes the samples produced by enc to w.  The data is
// compressed with the given filter and then ASCII85 encoded, including the
// end-of-data marker.  The filter must be [FilterFlate],
// [FilterRunLength] or the empty string.
func WriteData(w io.Writer, enc Encoder, filter string) error {
	if enc == nil {
		return ErrNoData
	}

	a85 := ascii85.Encode(w)
	var sink io.WriteCloser
	switch filter {
	case FilterFlate:
		sink = &flateWriter{zw: zlib.NewWriter(a85), w: a85}
	case FilterRunLength:
		sink = runlength.Encode(a85)
	case "":
		sink = a85
	default:
		return fmt.Errorf("image: unsupported filter %q", filter)
	}

	_, err := enc.WriteTo(sink)
	if err != nil {
		return err
	}
	return sink.Close()
}

// flateWriter closes the underlying writer after the zlib trailer has been
// written.
type flateWriter struct {
	zw *zlib.Writer
	w  io.WriteCloser
}

func (f *flateWriter) Write(p []byte) (int, error) {
	return f.zw.Write(p)
}

func (f *flateWriter) Close() error {
	err := f.zw.Close()
	if err != nil {
		return err
	}
	return f.w.Close()
}
