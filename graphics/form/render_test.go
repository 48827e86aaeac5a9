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
	"image"
	gocolor "image/color"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/psgen"
	"seehuhn.de/go/psgen/internal/ghostscript"
)

// TestGhostscript checks that Ghostscript paints image forms with the
// correct orientation.
func TestGhostscript(t *testing.T) {
	red := gocolor.NRGBA{R: 255, A: 255}
	blue := gocolor.NRGBA{B: 255, A: 255}

	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			if y < 2 {
				src.Set(x, y, red)
			} else {
				src.Set(x, y, blue)
			}
		}
	}

	for _, level := range []psgen.LanguageLevel{psgen.Level2, psgen.Level3} {
		t.Run(level.String(), func(t *testing.T) {
			img := ghostscript.Render(t, 40, 40, level, func(g *psgen.Generator) error {
				f := NewImageForm("test", "", vec.Vec2{X: 40, Y: 40}, src, false)
				err := f.Generate(g)
				if err != nil {
					return err
				}
				return Paint(g, "test")
			})

			checks := []struct {
				x, y int
				r, b uint32
			}{
				{20, 5, 0xffff, 0},
				{20, 35, 0, 0xffff},
			}
			for _, c := range checks {
				r, _, b, _ := img.At(c.x, c.y).RGBA()
				if r != c.r || b != c.b {
					t.Errorf("pixel (%d,%d) has r=%04x b=%04x", c.x, c.y, r, b)
				}
			}
		})
	}
}
