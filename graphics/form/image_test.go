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
	"bytes"
	"errors"
	"image"
	gocolor "image/color"
	"image/jpeg"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/psgen"
	"seehuhn.de/go/psgen/ascii85"
	"seehuhn.de/go/psgen/graphics/color"
	psimage "seehuhn.de/go/psgen/graphics/image"
)

func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestPaintProcLevel3(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 75))
	f := NewImageForm("form", "title", vec.Vec2{X: 300, Y: 500}, img, false)

	buf := &bytes.Buffer{}
	g := psgen.NewGenerator(buf, nil)
	err := f.WritePaintProc(g)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"    form:Data 0 setfileposition\n[300 0 0 500 0 0] CT\n/DeviceRGB setcolorspace\n<<\n",
		"  /DataSource form:Data",
		"  /ImageMatrix [100 0 0 75 0 0]\n",
		"  /BitsPerComponent 8\n",
		"  /Height 75\n",
		"  /ImageType 1\n",
		"  /Decode [0 1 0 1 0 1]\n",
		">> image\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
	newGolden(t).Assert(t, "paintproc-level3", buf.Bytes())

	if d := cmp.Diff([]psgen.Resource{psgen.StdProcSet}, g.Resources().Needed()); d != "" {
		t.Errorf("needed resources (-want +got):\n%s", d)
	}
}

func TestPaintProcLevel2(t *testing.T) {
	cs := color.Named("myColor", gocolor.RGBA{B: 255, A: 255})
	f := NewEncodedImageForm("form", "title", vec.Vec2{X: 300, Y: 500},
		image.Pt(200, 400), nil, cs, false)

	buf := &bytes.Buffer{}
	g := psgen.NewGenerator(buf, &psgen.Options{Level: psgen.Level2})
	err := f.WritePaintProc(g)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"    userdict /i 0 put\n[300 0 0 500 0 0] CT\n/DeviceGray setcolorspace\n<<\n",
		"  /DataSource { form:Data i get /i i 1 add store } bind\n",
		"  /ImageMatrix [200 0 0 400 0 0]\n",
		"  /Height 400\n",
		"  /BitsPerComponent 8\n",
		"  /ImageType 1\n",
		"  /Decode [0 1]\n",
		"  /Width 200\n",
		">> image\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
	newGolden(t).Assert(t, "paintproc-level2", buf.Bytes())
}

func TestFlateDecodeCommand(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 75))
	f := NewImageForm("form", "title", vec.Vec2{X: 300, Y: 500}, img, false)

	buf := &bytes.Buffer{}
	g := psgen.NewGenerator(buf, nil)
	err := f.Generate(g)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "/ASCII85Decode filter\n") {
		t.Error("missing ASCII85Decode filter")
	}
	if !strings.Contains(out, "/DataSource form:Data /FlateDecode filter\n") {
		t.Error("FlateDecode must be applied in the data source")
	}
	if !strings.Contains(out, "/form:Data currentfile\n/ASCII85Decode filter\n/ReusableStreamDecode filter\n") {
		t.Error("missing reusable stream")
	}
	if !strings.HasSuffix(out, "~>\ndef\n%%EndResource\n") {
		t.Errorf("unexpected end of output:\n%s", out[max(0, len(out)-100):])
	}
}

func buildForm(t *testing.T, img image.Image, level psgen.LanguageLevel) string {
	t.Helper()
	f := NewImageForm("form", "title", vec.Vec2{X: 1, Y: 1}, img, false)
	buf := &bytes.Buffer{}
	g := psgen.NewGenerator(buf, &psgen.Options{Level: level})
	err := f.Generate(g)
	if err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

// A fully transparent image must produce the same output as an opaque
// white image.
func TestAlphaImage(t *testing.T) {
	transparent := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	transparent.SetNRGBA(0, 0, gocolor.NRGBA{})

	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	white.SetRGBA(0, 0, gocolor.RGBA{R: 255, G: 255, B: 255, A: 255})

	for _, level := range []psgen.LanguageLevel{psgen.Level2, psgen.Level3} {
		a := buildForm(t, transparent, level)
		b := buildForm(t, white, level)
		if d := cmp.Diff(b, a); d != "" {
			t.Errorf("level %s (-white +transparent):\n%s", level, d)
		}
	}

	white2 := buildForm(t, white, psgen.Level2)
	newGolden(t).Assert(t, "white-level2", []byte(white2))
}

// readChunks extracts the image data from the string array written for
// language level 2.
func readChunks(t *testing.T, out string) ([]byte, int) {
	t.Helper()
	_, rest, ok := strings.Cut(out, "/form:Data [\n")
	if !ok {
		t.Fatal("missing data array")
	}
	body, _, ok := strings.Cut(rest, "] def\n")
	if !ok {
		t.Fatal("unterminated data array")
	}

	var data []byte
	parts := strings.Split(body, "<~\n")
	for _, part := range parts[1:] {
		chunk, err := io.ReadAll(ascii85.Decode(strings.NewReader(part)))
		if err != nil {
			t.Fatal(err)
		}
		if len(chunk) > chunkSize {
			t.Errorf("chunk of %d bytes is too long", len(chunk))
		}
		data = append(data, chunk...)
	}
	return data, len(parts) - 1
}

func TestLevel2Data(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 200, 200))
	for i := range img.Pix {
		img.Pix[i] = byte(i * 13)
	}
	out := buildForm(t, img, psgen.Level2)

	data, n := readChunks(t, out)
	if n != 2 {
		t.Errorf("expected 2 chunks, got %d", n)
	}
	if !bytes.Equal(data, img.Pix) {
		t.Error("image data was not preserved")
	}
	if strings.Contains(out, "FlateDecode") || strings.Contains(out, "ReusableStreamDecode") {
		t.Error("level 3 filter used in level 2 output")
	}
}

func TestJPEGForm(t *testing.T) {
	buf := &bytes.Buffer{}
	err := jpeg.Encode(buf, image.NewRGBA(image.Rect(0, 0, 8, 8)), nil)
	if err != nil {
		t.Fatal(err)
	}
	jpegData := buf.Bytes()
	enc, err := psimage.NewJPEGEncoder(jpegData)
	if err != nil {
		t.Fatal(err)
	}

	for _, level := range []psgen.LanguageLevel{psgen.Level2, psgen.Level3} {
		f := NewEncodedImageForm("form", "", vec.Vec2{X: 72, Y: 72}, enc.Size(),
			enc, enc.ColorSpace(), enc.Invert())
		out := &bytes.Buffer{}
		g := psgen.NewGenerator(out, &psgen.Options{Level: level})
		err := f.Generate(g)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out.String(), " /DCTDecode filter\n") {
			t.Errorf("level %s: missing DCTDecode filter", level)
		}
		if strings.Contains(out.String(), "FlateDecode") {
			t.Errorf("level %s: JPEG data must not be compressed again", level)
		}
		if level == psgen.Level2 {
			data, _ := readChunks(t, out.String())
			if !bytes.Equal(data, jpegData) {
				t.Error("JPEG data was modified")
			}
		}
	}
}

func TestImageFormErrors(t *testing.T) {
	f := NewEncodedImageForm("form", "title", vec.Vec2{X: 1, Y: 1},
		image.Pt(1, 1), nil, color.DeviceGray, false)
	g := psgen.NewGenerator(&bytes.Buffer{}, nil)
	err := f.Generate(g)
	if !errors.Is(err, psimage.ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}

	f = NewImageForm("", "title", vec.Vec2{X: 1, Y: 1},
		image.NewGray(image.Rect(0, 0, 1, 1)), false)
	g = psgen.NewGenerator(&bytes.Buffer{}, nil)
	err = f.Generate(g)
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}

	f = NewImageForm("form", "title", vec.Vec2{X: 1, Y: 1},
		image.NewGray(image.Rect(0, 0, 1, 1)), false)
	f.BitsPerComponent = 16
	g = psgen.NewGenerator(&bytes.Buffer{}, nil)
	err = f.Generate(g)
	if !errors.Is(err, psimage.ErrUnsupportedBitDepth) {
		t.Errorf("expected ErrUnsupportedBitDepth, got %v", err)
	}

	g = psgen.NewGenerator(&bytes.Buffer{}, &psgen.Options{Level: psgen.Level1})
	err = f.WritePaintProc(g)
	var levelErr *psgen.LevelError
	if !errors.As(err, &levelErr) {
		t.Errorf("expected a LevelError, got %v", err)
	}
}

func TestInvert(t *testing.T) {
	f := NewEncodedImageForm("form", "", vec.Vec2{X: 1, Y: 1},
		image.Pt(1, 1), nil, color.DeviceCMYK, true)
	buf := &bytes.Buffer{}
	g := psgen.NewGenerator(buf, nil)
	err := f.WritePaintProc(g)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "  /Decode [1 0 1 0 1 0 1 0]\n") {
		t.Errorf("decode array not inverted:\n%s", buf.String())
	}
}
