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

package main

import (
	"io"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/psgen"
	"seehuhn.de/go/psgen/graphics/form"
	psimage "seehuhn.de/go/psgen/graphics/image"
)

// formSize returns the size of the form in points.
func formSize(cfg *Config, width, height int) vec.Vec2 {
	w, h := cfg.Width, cfg.Height
	switch {
	case w == 0 && h == 0:
		w, h = float64(width), float64(height)
	case w == 0:
		w = h * float64(width) / float64(height)
	case h == 0:
		h = w * float64(height) / float64(width)
	}
	return vec.Vec2{X: w, Y: h}
}

// writeOutput writes a form which shows src at size dims.  If cfg.Document
// is set, a complete one-page document is written, which shows the form on
// the page.
func writeOutput(w io.Writer, cfg *Config, src psimage.Source, dims vec.Vec2, log *zap.Logger) error {
	g := psgen.NewGenerator(w, &psgen.Options{
		Level:  cfg.LanguageLevel(),
		Logger: log,
	})

	name := cfg.Name
	if name == "" {
		name = "img-" + uuid.NewString()
	}
	f := form.NewEncodedImageForm(name, cfg.Title, dims, src.Size(),
		src, src.ColorSpace(), src.Invert() != cfg.Invert)
	f.BitsPerComponent = src.BitsPerComponent()

	log.Debug("writing form",
		zap.String("name", name),
		zap.Float64("width", dims.X),
		zap.Float64("height", dims.Y),
		zap.Stringer("level", g.Level()))

	if !cfg.Document {
		g.WriteProcSet()
		return f.Generate(g)
	}

	g.Writeln("%!PS-Adobe-3.0")
	g.WriteDSCComment("Creator", "img2psform")
	if cfg.Title != "" {
		g.WriteDSCComment(psgen.DSCTitle, cfg.Title)
	}
	g.WriteDSCComment(psgen.DSCLanguageLevel, g.Level())
	g.WriteDSCComment("BoundingBox", 0, 0, int(math.Ceil(dims.X)), int(math.Ceil(dims.Y)))
	g.WriteDSCComment("HiResBoundingBox", 0, 0, dims.X, dims.Y)
	g.WriteDSCComment(psgen.DSCSuppliedResource, psgen.AtEnd)
	g.WriteDSCComment("Pages", 1)
	g.WriteDSCComment("EndComments")

	g.WriteDSCComment("BeginProlog")
	g.WriteProcSet()
	g.WriteDSCComment("EndProlog")

	g.WriteDSCComment("BeginSetup")
	if err := f.Generate(g); err != nil {
		return err
	}
	g.WriteDSCComment("EndSetup")

	g.WriteDSCComment("Page", 1, 1)
	if err := form.Paint(g, name); err != nil {
		return err
	}
	g.Writeln("showpage")

	g.WriteDSCComment("Trailer")
	g.WriteResourceComments()
	g.WriteDSCComment("EOF")
	return g.Err
}
