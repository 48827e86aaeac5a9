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
	"go.uber.org/zap"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/psgen"
	"seehuhn.de/go/psgen/graphics/color"
)

// Render paints src as an inline image, filling the rectangle dst in user
// space.  The image data follows the "image" operator in the output.
//
// Raw samples are compressed using FlateDecode for language level 3 and
// using RunLengthDecode for language level 2.  Language level 1 is not
// supported.
func Render(g *psgen.Generator, src Source, dst rect.Rect) error {
	if g.Err != nil {
		return g.Err
	}
	if src == nil {
		return ErrNoData
	}
	if err := g.CheckLevel("inline image", psgen.Level2); err != nil {
		return err
	}

	size := src.Size()
	cs := src.ColorSpace()
	bpc := src.BitsPerComponent()

	compress := src.ImplicitFilter()
	var encode string
	if compress == "" {
		if g.Level() >= psgen.Level3 {
			encode = FilterFlate
		} else {
			encode = FilterRunLength
		}
		compress = encode
	}

	g.Logger().Debug("inline image",
		zap.Int("width", size.X),
		zap.Int("height", size.Y),
		zap.String("colorSpace", cs.Family()),
		zap.String("filter", compress))

	dict := &Dict{
		Width:            size.X,
		Height:           size.Y,
		BitsPerComponent: bpc,
		Decode:           color.DecodeArray(cs, bpc, src.Invert()),
		ImageMatrix:      TopDown(size.X, size.Y),
		DataSource:       ApplyFilters("currentfile", FilterASCII85, compress),
	}

	g.SaveGraphicsState()
	g.ConcatMatrix(matrix.Matrix{
		dst.URx - dst.LLx, 0,
		0, dst.URy - dst.LLy,
		dst.LLx, dst.LLy,
	})
	err := WriteImageCommand(g, dict, cs)
	if err != nil {
		return err
	}
	err = WriteData(g, src, encode)
	if err != nil {
		if g.Err == nil {
			g.Err = err
		}
		return err
	}
	g.RestoreGraphicsState()
	return g.Err
}

// TopDown returns the image matrix for an image of the given size which
// is painted into the unit square, with the first row of samples at the
// top.
func TopDown(width, height int) matrix.Matrix {
	w, h := float64(width), float64(height)
	return matrix.Matrix{w, 0, 0, -h, 0, h}
}

// BottomUp returns the image matrix for an image of the given size which
// is painted into the unit square, with the first row of samples at the
// bottom.
func BottomUp(width, height int) matrix.Matrix {
	return matrix.Scale(float64(width), float64(height))
}
