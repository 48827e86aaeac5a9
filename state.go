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

package psgen

import (
	"errors"

	"seehuhn.de/go/geom/matrix"
)

// State is the part of the PostScript graphics state which the Generator
// keeps track of.
type State struct {
	// CTM is the transformation applied by the Generator since the
	// start of the output.
	CTM matrix.Matrix
}

// SaveGraphicsState saves the current graphics state.
//
// This writes the PostScript operator "gsave".
func (g *Generator) SaveGraphicsState() {
	if g.Err != nil {
		return
	}
	g.stack = append(g.stack, g.State)
	g.Writeln(g.MapCommand("gsave"))
}

// RestoreGraphicsState restores the graphics state saved by the
// matching call to SaveGraphicsState.
//
// This writes the PostScript operator "grestore".
func (g *Generator) RestoreGraphicsState() {
	if g.Err != nil {
		return
	}
	n := len(g.stack) - 1
	if n < 0 {
		g.Err = errors.New("RestoreGraphicsState: no matching SaveGraphicsState")
		return
	}
	g.State = g.stack[n]
	g.stack = g.stack[:n]
	g.Writeln(g.MapCommand("grestore"))
}

// ConcatMatrix applies an additional transformation to the user
// coordinates.  Nothing is written if M is the identity.
//
// This writes the PostScript operator "concat".
func (g *Generator) ConcatMatrix(M matrix.Matrix) {
	if g.Err != nil || M == matrix.Identity {
		return
	}
	g.CTM = M.Mul(g.CTM)
	g.Writeln(FormatArray(M[:]) + " " + g.MapCommand("concat"))
}
