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

// Package form writes PostScript form resources.
//
// A form is a self-contained description of a graphical object which can
// be painted any number of times using the "execform" operator.  The
// interpreter may cache the result of the form's PaintProc.  Forms require
// PostScript language level 2 or higher.
package form

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/psgen"
)

// ErrEmptyName is returned when a form without a name is written.
var ErrEmptyName = errors.New("form: empty name")

// PaintProc writes the body of the PaintProc of a form.
type PaintProc interface {
	WritePaintProc(g *psgen.Generator) error
}

// DataWriter writes additional definitions which are needed by the
// PaintProc of a form, for example image data.
type DataWriter interface {
	WriteData(g *psgen.Generator) error
}

// Form describes a form resource.
type Form struct {
	// Name is the name under which the form is defined.
	Name string

	// Title (optional) is used for the %%Title DSC comment.
	Title string

	// BBox is the bounding box of the form, in form space.
	BBox rect.Rect

	// Matrix maps form space to user space.
	// If this is zero, the identity matrix is used.
	Matrix matrix.Matrix

	// Paint writes the body of the PaintProc.
	Paint PaintProc

	// Data (optional) writes definitions which follow the form dictionary.
	Data DataWriter
}

// Generate writes the form resource and registers it as a supplied
// resource of the output.
//
// The output has the following form:
//
//	%%BeginResource: form <name>
//	%%Title: <title>
//	/<name>
//	<< /FormType 1
//	  /BBox [...]
//	  /Matrix [...]
//	  /PaintProc {
//	    pop
//	    gsave
//	<paint proc>
//	    grestore
//	  } bind
//	>> def
//	<data>
//	%%EndResource
func (f *Form) Generate(g *psgen.Generator) error {
	if g.Err != nil {
		return g.Err
	}
	if err := CheckName(f.Name); err != nil {
		return err
	}
	if f.Paint == nil {
		return fmt.Errorf("form %q: missing PaintProc", f.Name)
	}
	if err := g.CheckLevel("form resource", psgen.Level2); err != nil {
		return err
	}

	M := f.Matrix
	if M == matrix.Zero {
		M = matrix.Identity
	}
	bbox := []float64{f.BBox.LLx, f.BBox.LLy, f.BBox.URx, f.BBox.URy}

	res := psgen.Resource{Type: psgen.TypeForm, Name: f.Name}
	g.WriteDSCComment(psgen.DSCBeginResource, res)
	if f.Title != "" {
		g.WriteDSCComment(psgen.DSCTitle, f.Title)
	}
	g.Writeln("/" + f.Name)
	g.Writeln("<< /FormType 1")
	g.Writeln("  /BBox " + psgen.FormatArray(bbox))
	g.Writeln("  /Matrix " + psgen.FormatArray(M[:]))
	g.Writeln("  /PaintProc {")
	g.Writeln("    pop")
	g.Writeln("    gsave")
	if err := f.Paint.WritePaintProc(g); err != nil {
		return fmt.Errorf("form %q: %w", f.Name, err)
	}
	g.Writeln("    grestore")
	g.Writeln("  } bind")
	g.Writeln(">> def")
	if f.Data != nil {
		if err := f.Data.WriteData(g); err != nil {
			return fmt.Errorf("form %q: %w", f.Name, err)
		}
	}
	g.WriteDSCComment(psgen.DSCEndResource)
	if g.Err != nil {
		return g.Err
	}

	g.Resources().RegisterSupplied(res)
	return nil
}

// Paint writes the code which paints the form with the given name.
// The form must have been defined before, using [Form.Generate].
func Paint(g *psgen.Generator, name string) error {
	if g.Err != nil {
		return g.Err
	}
	if err := CheckName(name); err != nil {
		return err
	}
	if err := g.CheckLevel("execform", psgen.Level2); err != nil {
		return err
	}
	g.Writeln(name + " execform")
	return g.Err
}

// CheckName verifies that name can be used as a PostScript name without
// quoting.
func CheckName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c <= ' ' || c >= 0x7f {
			return fmt.Errorf("form: invalid name %q", name)
		}
		switch c {
		case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
			return fmt.Errorf("form: invalid name %q", name)
		}
	}
	return nil
}
