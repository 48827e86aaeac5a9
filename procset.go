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

// StdProcSet is the procset which defines the abbreviations used by
// [Generator.MapCommand].
var StdProcSet = Resource{Type: TypeProcSet, Name: "PSGenStd", Version: "1.0 0"}

// abbreviations maps PostScript operators to the names defined in the
// standard procset.
var abbreviations = map[string]string{
	"gsave":    "GS",
	"grestore": "GR",
	"moveto":   "M",
	"lineto":   "L",
	"rmoveto":  "RM",
	"rlineto":  "RL",
	"concat":   "CT",
}

const stdProcSetBody = `/bd{bind def}bind def
/ld{load def}bd
/GS/gsave ld
/GR/grestore ld
/M/moveto ld
/L/lineto ld
/RM/rmoveto ld
/RL/rlineto ld
/CT/concat ld
`

// MapCommand returns the abbreviation for the PostScript operator op,
// or op itself if there is no abbreviation.
//
// Output which uses abbreviations must include the standard procset,
// see [Generator.WriteProcSet].
func (g *Generator) MapCommand(op string) string {
	if abbr, ok := abbreviations[op]; ok {
		return abbr
	}
	return op
}

// WriteProcSet writes the standard procset as a DSC resource.
// This is normally done in the prolog of a document.
func (g *Generator) WriteProcSet() {
	if g.Err != nil {
		return
	}
	g.WriteDSCComment(DSCBeginResource, StdProcSet)
	g.WriteString(stdProcSetBody)
	g.WriteDSCComment(DSCEndResource)
	g.res.RegisterSupplied(StdProcSet)
}
