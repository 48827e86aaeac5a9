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

// Package ghostscript allows unit tests to check generated PostScript code
// by rendering it with the Ghostscript interpreter.
package ghostscript

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sync"
	"testing"

	"seehuhn.de/go/psgen"
)

// Render can be used in unit tests to render a PostScript page to an image.
//
// The function f is called to write the page content.  The result is
// rendered by the gs command-line tool, at one pixel per PostScript
// point, on a page of the given size.  The test is skipped if Ghostscript
// is not available.
func Render(t *testing.T, width, height int, level psgen.LanguageLevel, f func(g *psgen.Generator) error) image.Image {
	t.Helper()

	if !isAvailable() {
		t.Skip("ghostscript not found")
	}

	dir := t.TempDir()
	psName := filepath.Join(dir, "test.ps")
	pngName := filepath.Join(dir, "test.png")

	err := writePage(psName, width, height, level, f)
	if err != nil {
		t.Fatal(err)
	}

	cmd := exec.Command(
		"gs", "-q", "-dSAFER", "-dFIXEDMEDIA",
		fmt.Sprintf("-dDEVICEWIDTHPOINTS=%d", width),
		fmt.Sprintf("-dDEVICEHEIGHTPOINTS=%d", height),
		"-sDEVICE=png16m", "-r72",
		"-o", pngName,
		psName)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("ghostscript failed: %v\n%s", err, out)
	}
	if len(out) > 0 {
		t.Logf("unexpected ghostscript output:\n%s", out)
	}

	fd, err := os.Open(pngName)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()

	img, err := png.Decode(fd)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func writePage(fname string, width, height int, level psgen.LanguageLevel, f func(g *psgen.Generator) error) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fd)

	g := psgen.NewGenerator(w, &psgen.Options{Level: level})
	g.Writeln("%!PS-Adobe-3.0")
	g.WriteDSCComment("BoundingBox", 0, 0, width, height)
	g.WriteDSCComment(psgen.DSCLanguageLevel, level)
	g.WriteDSCComment("EndComments")
	g.WriteProcSet()
	err = f(g)
	if err == nil {
		g.Writeln("showpage")
		g.WriteDSCComment("EOF")
		err = g.Err
	}

	if err == nil {
		err = w.Flush()
	}
	closeErr := fd.Close()
	if err == nil {
		err = closeErr
	}
	return err
}

// isAvailable returns true if the ghostscript command-line tool is available.
func isAvailable() bool {
	gsOnce.Do(func() {
		out, err := exec.Command("gs", "-h").Output()
		if err != nil {
			return
		}
		gsFound = gsPNGRe.Match(out)
	})
	return gsFound
}

var (
	gsOnce  sync.Once
	gsPNGRe = regexp.MustCompile(`\bpng16m\b`)
	gsFound bool
)
