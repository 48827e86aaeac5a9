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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/psgen/flavor"
	psimage "seehuhn.de/go/psgen/graphics/image"
)

// loadSource chooses an encoder for the image file data.  JPEG files are
// passed through unchanged where possible, all other files are decoded.
// The second return value is the size of the image file in pixels, before
// any scaling.
func loadSource(data []byte, cfg *Config, log *zap.Logger) (psimage.Source, image.Point, error) {
	imgCfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, image.Point{}, err
	}
	size := image.Pt(imgCfg.Width, imgCfg.Height)

	supported := []flavor.Flavor{flavor.BufferedImage}
	if raw, ok := flavor.ForMIMEType("image/" + format); ok {
		supported = append([]flavor.Flavor{raw}, supported...)
	}
	var wanted []flavor.Flavor
	if cfg.Passthrough && !tooLarge(imgCfg.Width, imgCfg.Height, cfg.MaxSize) {
		wanted = append(wanted, flavor.RawJPEG)
	}
	wanted = append(wanted, flavor.RenderedImage)

	chosen, ok := flavor.Negotiate(supported, wanted)
	if !ok {
		return nil, size, errors.New("no suitable image representation")
	}
	log.Debug("input image",
		zap.String("format", format),
		zap.Int("width", imgCfg.Width),
		zap.Int("height", imgCfg.Height),
		zap.String("flavor", chosen.Name()))

	if flavor.Equal(chosen, flavor.RawJPEG) {
		enc, err := psimage.NewJPEGEncoder(data)
		return enc, size, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, size, fmt.Errorf("decoding %s image: %w", format, err)
	}
	if tooLarge(imgCfg.Width, imgCfg.Height, cfg.MaxSize) {
		img = scaleDown(img, cfg.MaxSize)
		log.Debug("scaled image", zap.Stringer("size", img.Bounds().Size()))
	}
	if log.Core().Enabled(zap.DebugLevel) && psimage.HasAlpha(img) {
		log.Debug("compositing transparent pixels onto white")
	}
	return psimage.NewEncoder(img), size, nil
}

func tooLarge(width, height, maxSize int) bool {
	return maxSize > 0 && max(width, height) > maxSize
}

// scaleDown returns a copy of img, scaled so that neither width nor
// height exceed maxSize.
func scaleDown(img image.Image, maxSize int) image.Image {
	b := img.Bounds()
	scale := float64(maxSize) / float64(max(b.Dx(), b.Dy()))
	r := image.Rect(0, 0,
		max(1, int(math.Round(float64(b.Dx())*scale))),
		max(1, int(math.Round(float64(b.Dy())*scale))))

	var dst draw.Image
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		dst = image.NewGray(r)
	case *image.CMYK:
		dst = image.NewCMYK(r)
	default:
		dst = image.NewNRGBA(r)
	}
	draw.CatmullRom.Scale(dst, r, img, b, draw.Src, nil)
	return dst
}
