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
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/postscript"
)

// Names of frequently used DSC comments.
const (
	DSCBeginResource    = "BeginResource"
	DSCEndResource      = "EndResource"
	DSCTitle            = "Title"
	DSCLanguageLevel    = "LanguageLevel"
	DSCSuppliedResource = "DocumentSuppliedResources"
	DSCNeededResource   = "DocumentNeededResources"
)

// AtEnd can be used as an argument for [Generator.WriteDSCComment] to
// indicate that the value is given in the trailer.
const AtEnd = atEnd(0)

type atEnd int

// WriteDSCComment writes a comment following the Adobe Document
// Structuring Conventions, e.g. "%%Title: (my document)".
//
// Arguments can be strings, integers, floating point numbers, [Resource]
// values, or [AtEnd].  Strings which contain white space or special
// characters are written as PostScript string literals.
func (g *Generator) WriteDSCComment(name string, args ...any) {
	if g.Err != nil {
		return
	}

	var b strings.Builder
	b.WriteString("%%")
	b.WriteString(name)
	for i, arg := range args {
		if i == 0 {
			b.WriteString(":")
		}
		b.WriteString(" ")
		b.WriteString(dscValue(arg))
	}
	g.Writeln(b.String())
}

func dscValue(arg any) string {
	switch arg := arg.(type) {
	case string:
		return DSCText(arg)
	case atEnd:
		return "(atend)"
	case int:
		return strconv.Itoa(arg)
	case LanguageLevel:
		return strconv.Itoa(int(arg))
	case float64:
		return FormatNumber(arg)
	case Resource:
		return arg.String()
	case fmt.Stringer:
		return DSCText(arg.String())
	default:
		return DSCText(fmt.Sprint(arg))
	}
}

var latin1 = encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())

// DSCText converts s into a form suitable for use in DSC comments.
// The text is transcoded to ISO 8859-1.  If the result contains white space
// or PostScript delimiters, it is written as a PostScript string literal.
func DSCText(s string) string {
	s = norm.NFC.String(s)
	enc, err := latin1.String(s)
	if err != nil {
		enc = s
	}
	if !needsQuoting(enc) {
		return enc
	}
	x := postscript.String(enc)
	return x.PS()
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c >= 0x7f {
			return true
		}
		switch c {
		case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
			return true
		}
	}
	return false
}
