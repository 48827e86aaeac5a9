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

package flavor

// NamespaceSVG is the XML namespace of SVG documents.
const NamespaceSVG = "http://www.w3.org/2000/svg"

// Decoded images.
var (
	// RenderedImage is a decoded raster image, i.e. a Go [image.Image].
	RenderedImage = New("RenderedImage")

	// BufferedImage is a decoded raster image whose pixels are held in
	// memory.
	BufferedImage = NewNamed(RenderedImage, "BufferedImage")

	// Graphics2D is an image which paints itself using drawing operations.
	Graphics2D = New("Graphics2DImage")
)

// XML documents.
var (
	DOM    = New("DOM")
	XMLDOM = NewMIME(DOM, "text/xml")
	SVGDOM = NewXMLNamespace(XMLDOM, NamespaceSVG)
)

// Undecoded image files.
var (
	Raw         = New("Raw")
	RawPNG      = NewMIME(Raw, "image/png")
	RawJPEG     = NewMIME(Raw, "image/jpeg")
	RawGIF      = NewMIME(Raw, "image/gif")
	RawBMP      = NewMIME(Raw, "image/bmp")
	RawTIFF     = NewMIME(Raw, "image/tiff")
	RawWebP     = NewMIME(Raw, "image/webp")
	RawEMF      = NewMIME(Raw, "image/x-emf")
	RawEPS      = NewMIME(Raw, "application/postscript")
	RawLZW      = NewMIME(Raw, "image/x-lzw")
	RawCCITTFax = NewMIME(Raw, "image/x-ccittfax")
)

var rawByMIME = map[string]Flavor{}

func init() {
	for _, f := range []*MIME{
		RawPNG, RawJPEG, RawGIF, RawBMP, RawTIFF, RawWebP,
		RawEMF, RawEPS, RawLZW, RawCCITTFax,
	} {
		rawByMIME[f.MIMEType()] = f
	}
}

// ForMIMEType returns the predefined flavor for undecoded image files of
// the given MIME type.  The second return value is false if the MIME type
// is not known.
func ForMIMEType(mimeType string) (Flavor, bool) {
	f, ok := rawByMIME[mimeType]
	return f, ok
}
