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

// Package psgen writes PostScript program text.
//
// A [Generator] wraps an io.Writer and keeps track of the things which
// PostScript output needs to know about itself: the language level of the
// target interpreter, the graphics state stack, and the resources which
// are supplied by or needed by the output.
//
// Errors are sticky.  The first write error is stored in Generator.Err and
// all subsequent operations do nothing:
//
//	g := psgen.NewGenerator(w, nil)
//	g.WriteDSCComment("BeginProlog")
//	g.WriteProcSet()
//	g.WriteDSCComment("EndProlog")
//	if g.Err != nil {
//	    log.Fatal(g.Err)
//	}
//
// Images are written using the packages [seehuhn.de/go/psgen/graphics/image]
// and [seehuhn.de/go/psgen/graphics/form].
package psgen
