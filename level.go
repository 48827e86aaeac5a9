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
	"strconv"
)

// LanguageLevel is a PostScript language level.
type LanguageLevel int

// PostScript language levels.
const (
	Level1 LanguageLevel = 1
	Level2 LanguageLevel = 2
	Level3 LanguageLevel = 3
)

var errLevel = errors.New("unsupported PostScript language level")

// ParseLevel parses a language level string, e.g. "3".
func ParseLevel(s string) (LanguageLevel, error) {
	switch s {
	case "1":
		return Level1, nil
	case "2":
		return Level2, nil
	case "3":
		return Level3, nil
	}
	return 0, errLevel
}

// IsValid reports whether l is one of the known language levels.
func (l LanguageLevel) IsValid() bool {
	return l >= Level1 && l <= Level3
}

func (l LanguageLevel) String() string {
	if l.IsValid() {
		return strconv.Itoa(int(l))
	}
	return "psgen.LanguageLevel(" + strconv.Itoa(int(l)) + ")"
}

// LevelError is returned when an operation is not available in the
// language level of the output.
type LevelError struct {
	Operation string
	Needed    LanguageLevel
}

func (err *LevelError) Error() string {
	return err.Operation + " requires PostScript language level " +
		strconv.Itoa(int(err.Needed))
}
