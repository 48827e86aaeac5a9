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

package form

import (
	"fmt"
	"image"
	"io"

	"go.uber.org/zap"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/psgen"
	"seehuhn.de/go/psgen/ascii85"
	"seehuhn.de/go/psgen/graphics/color"
	psimage "seehuhn.de/go/psgen/graphics/image"
)

// chunkSize is the maximal number of bytes of image data stored in one
// string for language level 2 output.
const chunkSize = 32768

// ImageForm is a form which paints an image.
//
// For language level 3 the image data is stored in a reusable stream, for
// language level 2 it is stored in an array of strings.  In both cases the
// data is read again each time the form is painted.
type ImageForm struct {
	// Name is the name of the form.  The image data is stored under the
	// name Name + ":Data".
	Name string

	// Title (optional) is used for the %%Title DSC comment.
	Title string

	// Dims is the size of the image in points.
	Dims vec.Vec2

	// PixelSize is the size of the image in pixels.
	PixelSize image.Point

	// Encoder produces the image samples.
	Encoder psimage.Encoder

	// ColorSpace is the color space of the image samples.
	ColorSpace color.Space

	// Invert indicates that the decode array must be inverted.
	Invert bool

	// BitsPerComponent is the number of bits per sample.
	BitsPerComponent int
}

var (
	_ PaintProc  = (*ImageForm)(nil)
	_ DataWriter = (*ImageForm)(nil)
)

// NewImageForm returns a form which paints img, scaled to the given size
// in points.  Color space and sample depth are chosen by
// [psimage.NewEncoder].
func NewImageForm(name, title string, dims vec.Vec2, img image.Image, invert bool) *ImageForm {
	enc := psimage.NewEncoder(img)
	return &ImageForm{
		Name:             name,
		Title:            title,
		Dims:             dims,
		PixelSize:        enc.Size(),
		Encoder:          enc,
		ColorSpace:       enc.ColorSpace(),
		Invert:           invert,
		BitsPerComponent: enc.BitsPerComponent(),
	}
}

// NewEncodedImageForm returns a form which paints the samples produced by
// enc.  The samples use 8 bits per component; the BitsPerComponent field
// can be changed after construction.
func NewEncodedImageForm(name, title string, dims vec.Vec2, pixelSize image.Point, enc psimage.Encoder, cs color.Space, invert bool) *ImageForm {
	return &ImageForm{
		Name:             name,
		Title:            title,
		Dims:             dims,
		PixelSize:        pixelSize,
		Encoder:          enc,
		ColorSpace:       cs,
		Invert:           invert,
		BitsPerComponent: 8,
	}
}

// DataName returns the name under which the image data is stored.
func (f *ImageForm) DataName() string {
	return f.Name + ":Data"
}

// Form returns the form resource for the image.  The form space has the
// origin at the top left corner of the image, with the y-axis pointing
// down, and the image fills the bounding box.
func (f *ImageForm) Form() *Form {
	return &Form{
		Name:   f.Name,
		Title:  f.Title,
		BBox:   rect.Rect{URx: f.Dims.X, URy: f.Dims.Y},
		Matrix: matrix.Matrix{1, 0, 0, -1, 0, f.Dims.Y},
		Paint:  f,
		Data:   f,
	}
}

// Generate writes the form resource, including the image data.
func (f *ImageForm) Generate(g *psgen.Generator) error {
	return f.Form().Generate(g)
}

// compressFilter returns the filter which decodes the stored image data.
func (f *ImageForm) compressFilter(level psgen.LanguageLevel) string {
	if f.Encoder != nil {
		if implicit := f.Encoder.ImplicitFilter(); implicit != "" {
			return implicit
		}
	}
	if level >= psgen.Level3 {
		return psimage.FilterFlate
	}
	return ""
}

// WritePaintProc writes the body of the PaintProc.
// This implements the [PaintProc] interface.
func (f *ImageForm) WritePaintProc(g *psgen.Generator) error {
	if g.Err != nil {
		return g.Err
	}
	if err := CheckName(f.Name); err != nil {
		return err
	}
	level := g.Level()
	if err := g.CheckLevel("image form", psgen.Level2); err != nil {
		return err
	}

	var source string
	if level >= psgen.Level3 {
		g.Writeln("    " + f.DataName() + " 0 setfileposition")
		source = f.DataName()
	} else {
		g.Writeln("    userdict /i 0 put")
		source = "{ " + f.DataName() + " i get /i i 1 add store } bind"
	}
	M := matrix.Scale(f.Dims.X, f.Dims.Y)
	g.Writeln(psgen.FormatArray(M[:]) + " " + g.MapCommand("concat"))
	g.Resources().RegisterNeeded(psgen.StdProcSet)

	dict := &psimage.Dict{
		Width:            f.PixelSize.X,
		Height:           f.PixelSize.Y,
		BitsPerComponent: f.BitsPerComponent,
		Decode:           color.DecodeArray(f.ColorSpace, f.BitsPerComponent, f.Invert),
		ImageMatrix:      psimage.BottomUp(f.PixelSize.X, f.PixelSize.Y),
		DataSource:       psimage.ApplyFilters(source, f.compressFilter(level)),
	}
	return psimage.WriteImageCommand(g, dict, f.ColorSpace)
}

// WriteData writes the definition of the image data.
// This implements the [DataWriter] interface.
func (f *ImageForm) WriteData(g *psgen.Generator) error {
	if g.Err != nil {
		return g.Err
	}
	if f.Encoder == nil {
		return psimage.ErrNoData
	}

	level := g.Level()
	filter := f.compressFilter(level)
	g.Logger().Debug("image form data",
		zap.String("name", f.Name),
		zap.Stringer("level", level),
		zap.String("colorSpace", f.ColorSpace.Family()),
		zap.String("filter", filter))

	if level >= psgen.Level3 {
		var encode string
		if filter == psimage.FilterFlate {
			encode = filter
		}
		g.Writeln("/" + f.DataName() + " currentfile")
		g.Writeln(psimage.FilterASCII85 + " filter")
		g.Writeln("/ReusableStreamDecode filter")
		err := psimage.WriteData(g, f.Encoder, encode)
		if err != nil {
			return err
		}
		g.Writeln("def")
		return g.Err
	}

	g.Writeln("/" + f.DataName() + " [")
	w := &chunkWriter{g: g}
	_, err := f.Encoder.WriteTo(w)
	if err != nil {
		return err
	}
	err = w.Close()
	if err != nil {
		return err
	}
	if w.chunks == 0 {
		return fmt.Errorf("%w for form %q", psimage.ErrNoData, f.Name)
	}
	g.Writeln("] def")
	return g.Err
}

// chunkWriter writes data as a sequence of ASCII85 string literals, each
// holding at most chunkSize bytes.
type chunkWriter struct {
	g      *psgen.Generator
	a85    io.WriteCloser
	n      int
	chunks int
}

func (c *chunkWriter) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		if c.a85 == nil {
			c.g.Writeln("<~")
			if c.g.Err != nil {
				return total, c.g.Err
			}
			c.a85 = ascii85.Encode(c.g)
			c.n = 0
			c.chunks++
		}

		k := min(len(p), chunkSize-c.n)
		n, err := c.a85.Write(p[:k])
		total += n
		c.n += n
		if err != nil {
			return total, err
		}
		p = p[k:]

		if c.n == chunkSize {
			err := c.Close()
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// Close terminates the current string, if any.
func (c *chunkWriter) Close() error {
	if c.a85 == nil {
		return nil
	}
	err := c.a85.Close()
	c.a85 = nil
	return err
}
