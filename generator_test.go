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
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
)

func TestLevel(t *testing.T) {
	cases := []struct {
		in  string
		out LanguageLevel
		ok  bool
	}{
		{"1", Level1, true},
		{"2", Level2, true},
		{"3", Level3, true},
		{"", 0, false},
		{"0", 0, false},
		{"4", 0, false},
		{"3.0", 0, false},
	}
	for _, test := range cases {
		l, err := ParseLevel(test.in)
		if (err == nil) != test.ok {
			t.Errorf("%q: unexpected err = %v", test.in, err)
			continue
		}
		if l != test.out {
			t.Errorf("wrong level %d != %d", int(l), int(test.out))
			continue
		}
		if test.ok && l.String() != test.in {
			t.Errorf("wrong level string %q != %q", l.String(), test.in)
		}
	}

	if s := LanguageLevel(7).String(); s != "psgen.LanguageLevel(7)" {
		t.Errorf("unexpected string %q", s)
	}
}

func TestDefaults(t *testing.T) {
	g := NewGenerator(&bytes.Buffer{}, nil)
	if g.Level() != Level3 {
		t.Errorf("default level is %d", g.Level())
	}
	if g.Logger() == nil {
		t.Error("missing default logger")
	}
	if g.CTM != matrix.Identity {
		t.Errorf("initial CTM is %v", g.CTM)
	}

	g = NewGenerator(&bytes.Buffer{}, &Options{Level: 5})
	if g.Err == nil {
		t.Error("invalid level not detected")
	}
}

func TestCheckLevel(t *testing.T) {
	g := NewGenerator(&bytes.Buffer{}, &Options{Level: Level2})
	if err := g.CheckLevel("test", Level2); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := g.CheckLevel("FlateDecode filter", Level3)
	var levelErr *LevelError
	if !errors.As(err, &levelErr) {
		t.Fatalf("expected a LevelError, got %v", err)
	}
	if levelErr.Needed != Level3 {
		t.Errorf("wrong level %d", levelErr.Needed)
	}
	want := "FlateDecode filter requires PostScript language level 3"
	if err.Error() != want {
		t.Errorf("wrong message %q", err.Error())
	}

	g.SetLevel(Level3)
	if err := g.CheckLevel("FlateDecode filter", Level3); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "0"},
		{300, "300"},
		{1.5, "1.5"},
		{0.25, ".25"},
		{-2, "-2"},
		{1.0 / 3.0, ".333"},
		{12.0004, "12"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.out {
			t.Errorf("FormatNumber(%g) = %q, want %q", c.in, got, c.out)
		}
	}

	if got := FormatArray([]float64{0, 1, 0, 1}); got != "[0 1 0 1]" {
		t.Errorf("FormatArray: %q", got)
	}
}

func TestGraphicsState(t *testing.T) {
	buf := &bytes.Buffer{}
	g := NewGenerator(buf, nil)

	g.SaveGraphicsState()
	g.ConcatMatrix(matrix.Identity)
	g.ConcatMatrix(matrix.Scale(300, 500))
	if g.CTM != matrix.Scale(300, 500) {
		t.Errorf("wrong CTM %v", g.CTM)
	}
	g.RestoreGraphicsState()
	if g.CTM != matrix.Identity {
		t.Errorf("CTM not restored: %v", g.CTM)
	}
	if g.Err != nil {
		t.Fatal(g.Err)
	}

	want := "GS\n[300 0 0 500 0 0] CT\nGR\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
	if g.Pos() != int64(len(want)) {
		t.Errorf("wrong position %d", g.Pos())
	}

	g.RestoreGraphicsState()
	if g.Err == nil {
		t.Error("unbalanced grestore not detected")
	}
}

type failingWriter struct {
	n int
}

var errTest = errors.New("test error")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errTest
	}
	w.n--
	return len(p), nil
}

func TestStickyError(t *testing.T) {
	w := &failingWriter{n: 1}
	g := NewGenerator(w, nil)
	g.Writeln("first")
	if g.Err != nil {
		t.Fatal(g.Err)
	}
	g.Writeln("second")
	if !errors.Is(g.Err, errTest) {
		t.Fatalf("expected test error, got %v", g.Err)
	}
	g.Writef("%d", 3)
	if _, err := io.WriteString(g, "x"); !errors.Is(err, errTest) {
		t.Errorf("expected test error, got %v", err)
	}
	if _, err := g.Write([]byte("x")); !errors.Is(err, errTest) {
		t.Errorf("expected test error, got %v", err)
	}
	if g.Pos() != int64(len("first\n")) {
		t.Errorf("wrong position %d", g.Pos())
	}
}

func TestDSCComment(t *testing.T) {
	buf := &bytes.Buffer{}
	g := NewGenerator(buf, nil)
	g.WriteDSCComment("EndComments")
	g.WriteDSCComment(DSCTitle, "hello world")
	g.WriteDSCComment(DSCBeginResource, Resource{Type: TypeForm, Name: "form"})
	g.WriteDSCComment("BoundingBox", AtEnd)
	g.WriteDSCComment(DSCLanguageLevel, g.Level())
	g.WriteDSCComment("HiResBoundingBox", 0, 0, 1.5, 20.0)
	if g.Err != nil {
		t.Fatal(g.Err)
	}

	want := strings.Join([]string{
		"%%EndComments",
		"%%Title: (hello world)",
		"%%BeginResource: form form",
		"%%BoundingBox: (atend)",
		"%%LanguageLevel: 3",
		"%%HiResBoundingBox: 0 0 1.5 20",
		"",
	}, "\n")
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
}

func TestDSCText(t *testing.T) {
	cases := []struct {
		in     string
		quoted bool
	}{
		{"form", false},
		{"form:Data", false},
		{"", true},
		{"a b", true},
		{"a/b", true},
		{"(x", true},
		{"café", true},
	}
	for _, c := range cases {
		out := DSCText(c.in)
		quoted := out != c.in
		if quoted != c.quoted {
			t.Errorf("DSCText(%q) = %q", c.in, out)
		}
	}
}

func TestResourceTracker(t *testing.T) {
	tr := NewResourceTracker()
	a := Resource{Type: TypeForm, Name: "b"}
	b := Resource{Type: TypeForm, Name: "a"}
	c := Resource{Type: "font", Name: "Times-Roman"}

	tr.RegisterNeeded(c)
	tr.RegisterNeeded(a)
	tr.RegisterSupplied(a)
	tr.RegisterSupplied(b)
	tr.RegisterNeeded(b)

	if d := cmp.Diff([]Resource{b, a}, tr.Supplied()); d != "" {
		t.Errorf("supplied (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]Resource{c}, tr.Needed()); d != "" {
		t.Errorf("needed (-want +got):\n%s", d)
	}
	if !tr.IsSupplied(a) || tr.IsSupplied(c) {
		t.Error("IsSupplied is wrong")
	}
}

func TestResourceComments(t *testing.T) {
	buf := &bytes.Buffer{}
	g := NewGenerator(buf, nil)
	g.WriteProcSet()
	g.Resources().RegisterSupplied(Resource{Type: TypeForm, Name: "logo"})
	g.Resources().RegisterNeeded(Resource{Type: "font", Name: "Courier"})
	buf.Reset()

	g.WriteResourceComments()
	if g.Err != nil {
		t.Fatal(g.Err)
	}
	want := strings.Join([]string{
		"%%DocumentNeededResources: font Courier",
		"%%DocumentSuppliedResources: form logo",
		"%%+ procset PSGenStd 1.0 0",
		"",
	}, "\n")
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
}

func TestProcSet(t *testing.T) {
	buf := &bytes.Buffer{}
	g := NewGenerator(buf, nil)
	g.WriteProcSet()
	if g.Err != nil {
		t.Fatal(g.Err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "%%BeginResource: procset PSGenStd 1.0 0\n") {
		t.Errorf("missing resource header:\n%s", out)
	}
	if !strings.HasSuffix(out, "%%EndResource\n") {
		t.Errorf("missing resource trailer:\n%s", out)
	}
	for op, abbr := range abbreviations {
		if g.MapCommand(op) != abbr {
			t.Errorf("MapCommand(%q) = %q", op, g.MapCommand(op))
		}
		if !strings.Contains(out, "/"+abbr+"/"+op+" ld\n") {
			t.Errorf("procset does not define %s", abbr)
		}
	}
	if g.MapCommand("image") != "image" {
		t.Error("unknown operators must not be mapped")
	}
	if !g.Resources().IsSupplied(StdProcSet) {
		t.Error("procset not registered")
	}
}

func TestResourceOrder(t *testing.T) {
	tr := NewResourceTracker()
	if len(tr.Supplied()) != 0 || len(tr.Needed()) != 0 {
		t.Fatal("new tracker is not empty")
	}

	want := []Resource{
		{Type: "font", Name: "Courier"},
		{Type: TypeForm, Name: "a"},
		{Type: TypeForm, Name: "b"},
		{Type: TypeProcSet, Name: "P", Version: "1.0 0"},
		{Type: TypeProcSet, Name: "P", Version: "2.0 0"},
	}
	for _, i := range []int{3, 0, 4, 2, 1} {
		tr.RegisterSupplied(want[i])
		tr.RegisterNeeded(want[i])
	}
	for range 3 {
		if d := cmp.Diff(want, tr.Supplied()); d != "" {
			t.Fatalf("supplied (-want +got):\n%s", d)
		}
	}
	if len(tr.Needed()) != 0 {
		t.Errorf("supplied resources listed as needed: %v", tr.Needed())
	}
}

func TestWriteString(t *testing.T) {
	buf := &bytes.Buffer{}
	g := NewGenerator(buf, nil)

	var w io.StringWriter = g
	n, err := w.WriteString("1 2 add\n")
	if err != nil {
		t.Fatal(err)
	}
	if n != 8 || g.Pos() != 8 {
		t.Errorf("wrong count n=%d, pos=%d", n, g.Pos())
	}
	if _, err := io.WriteString(g, "pop\n"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "1 2 add\npop\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
