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

package image

import (
	"bytes"
	"compress/zlib"
	"errors"
	"image"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/psgen"
	"seehuhn.de/go/psgen/ascii85"
	"seehuhn.de/go/psgen/graphics/color"
	"seehuhn.de/go/psgen/internal/filter/runlength"
)

func TestWriteImageCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	g := psgen.NewGenerator(buf, nil)
	d := &Dict{
		Width:            100,
		Height:           75,
		BitsPerComponent: 8,
		ImageMatrix:      BottomUp(100, 75),
		DataSource:       "form:Data",
	}
	err := WriteImageCommand(g, d, color.DeviceRGB)
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"/DeviceRGB setcolorspace",
		"<<",
		"  /ImageType 1",
		"  /Width 100",
		"  /Height 75",
		"  /BitsPerComponent 8",
		"  /Decode [0 1 0 1 0 1]",
		"  /ImageMatrix [100 0 0 75 0 0]",
		"  /DataSource form:Data",
		">> image",
		"",
	}, "\n")
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
}

func TestDictCheck(t *testing.T) {
	valid := Dict{
		Width:            1,
		Height:           1,
		BitsPerComponent: 8,
		DataSource:       "currentfile",
	}
	if err := valid.Check(color.DeviceGray); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	d := valid
	d.BitsPerComponent = 16
	err := d.Check(color.DeviceGray)
	if !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("expected ErrUnsupportedBitDepth, got %v", err)
	}

	d = valid
	d.Width = 0
	if d.Check(color.DeviceGray) == nil {
		t.Error("empty image not detected")
	}

	d = valid
	d.Decode = []float64{0, 1}
	if d.Check(color.DeviceRGB) == nil {
		t.Error("wrong decode array length not detected")
	}

	d = valid
	d.DataSource = ""
	if d.Check(color.DeviceGray) == nil {
		t.Error("missing data source not detected")
	}

	g := psgen.NewGenerator(&bytes.Buffer{}, nil)
	d = valid
	d.BitsPerComponent = 3
	err = WriteImageCommand(g, &d, color.DeviceGray)
	if !errors.Is(err, ErrUnsupportedBitDepth) || !errors.Is(g.Err, ErrUnsupportedBitDepth) {
		t.Errorf("expected ErrUnsupportedBitDepth, got %v", err)
	}
}

func TestApplyFilters(t *testing.T) {
	got := ApplyFilters("currentfile", FilterASCII85, "", FilterFlate)
	want := "currentfile /ASCII85Decode filter /FlateDecode filter"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if ApplyFilters("form:Data") != "form:Data" {
		t.Error("data source without filters was modified")
	}
}

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 7, 5))
	for i := range img.Pix {
		img.Pix[i] = byte(i / 5)
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}

func TestWriteData(t *testing.T) {
	enc := NewEncoder(testImage())
	want := samples(t, enc)

	decoders := map[string]func(io.Reader) (io.Reader, error){
		"": func(r io.Reader) (io.Reader, error) {
			return r, nil
		},
		FilterFlate: func(r io.Reader) (io.Reader, error) {
			return zlib.NewReader(r)
		},
		FilterRunLength: func(r io.Reader) (io.Reader, error) {
			return runlength.Decode(r), nil
		},
	}
	for filter, decode := range decoders {
		buf := &bytes.Buffer{}
		err := WriteData(buf, enc, filter)
		if err != nil {
			t.Fatalf("%q: %v", filter, err)
		}
		if !bytes.HasSuffix(buf.Bytes(), []byte("~>\n")) {
			t.Errorf("%q: missing end-of-data marker", filter)
		}

		r, err := decode(ascii85.Decode(buf))
		if err != nil {
			t.Fatalf("%q: %v", filter, err)
		}
		got, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("%q: %v", filter, err)
		}
		if !bytes.Equal(want, got) {
			t.Errorf("%q: round trip failed", filter)
		}
	}

	err := WriteData(&bytes.Buffer{}, enc, "/LZWDecode")
	if err == nil {
		t.Error("unsupported filter not detected")
	}
	err = WriteData(&bytes.Buffer{}, nil, "")
	if !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}

func TestImageMatrix(t *testing.T) {
	if m := TopDown(100, 75); m != (matrix.Matrix{100, 0, 0, -75, 0, 75}) {
		t.Errorf("TopDown: %v", m)
	}
	if m := BottomUp(100, 75); m != (matrix.Matrix{100, 0, 0, 75, 0, 0}) {
		t.Errorf("BottomUp: %v", m)
	}
}

func TestRender(t *testing.T) {
	cases := []struct {
		level  psgen.LanguageLevel
		source string
	}{
		{psgen.Level3, "currentfile /ASCII85Decode filter /FlateDecode filter"},
		{psgen.Level2, "currentfile /ASCII85Decode filter /RunLengthDecode filter"},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		g := psgen.NewGenerator(buf, &psgen.Options{Level: c.level})
		dst := rect.Rect{LLx: 5, LLy: 5, URx: 25, URy: 15}
		err := Render(g, NewEncoder(testImage()), dst)
		if err != nil {
			t.Fatal(err)
		}
		if g.CTM != matrix.Identity {
			t.Errorf("CTM not restored: %v", g.CTM)
		}

		head := strings.Join([]string{
			"GS",
			"[20 0 0 10 5 5] CT",
			"/DeviceRGB setcolorspace",
			"<<",
			"  /ImageType 1",
			"  /Width 7",
			"  /Height 5",
			"  /BitsPerComponent 8",
			"  /Decode [0 1 0 1 0 1]",
			"  /ImageMatrix [7 0 0 -5 0 5]",
			"  /DataSource " + c.source,
			">> image",
			"",
		}, "\n")
		out := buf.String()
		if !strings.HasPrefix(out, head) {
			t.Errorf("level %s: unexpected output:\n%s", c.level, out)
		}
		if !strings.HasSuffix(out, "~>\nGR\n") {
			t.Errorf("level %s: unexpected end of output:\n%s", c.level, out)
		}
	}
}

func TestRenderJPEG(t *testing.T) {
	enc, err := NewJPEGEncoder(encodeJPEG(t, image.NewGray(image.Rect(0, 0, 8, 8))))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	g := psgen.NewGenerator(buf, &psgen.Options{Level: psgen.Level2})
	err = Render(g, enc, rect.Rect{URx: 1, URy: 1})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	want := "  /DataSource currentfile /ASCII85Decode filter /DCTDecode filter\n"
	if !strings.Contains(out, want) {
		t.Errorf("missing DCTDecode filter:\n%s", out)
	}
	if strings.Contains(out, " CT\n") {
		t.Error("unexpected concat for the unit square")
	}
}

func TestRenderLevel1(t *testing.T) {
	buf := &bytes.Buffer{}
	g := psgen.NewGenerator(buf, &psgen.Options{Level: psgen.Level1})
	err := Render(g, NewEncoder(testImage()), rect.Rect{URx: 1, URy: 1})
	var levelErr *psgen.LevelError
	if !errors.As(err, &levelErr) {
		t.Fatalf("expected a LevelError, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}
