// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// CloneAsRGBA returns an RGBA copy of the supplied image.
func CloneAsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	bounds := src.Bounds()
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, src, bounds.Min, draw.Src)
	return img
}

// AsRGBA returns the image as an RGBA: if it already is one, then
// it returns that image directly. Otherwise it returns a clone.
func AsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	return CloneAsRGBA(src)
}

// Resize returns a resized version of the source image,
// using linear filtering. A nil source or empty size returns nil.
func Resize(src image.Image, size image.Point) *image.RGBA {
	if src == nil || size.X <= 0 || size.Y <= 0 {
		return nil
	}
	if src.Bounds().Size() == size {
		return CloneAsRGBA(src)
	}
	return transform.Resize(src, size.X, size.Y, transform.Linear)
}

// AverageColor returns the mean color of all pixels in the image.
func AverageColor(src image.Image) color.RGBA {
	rgba := AsRGBA(src)
	if rgba == nil {
		return color.RGBA{}
	}
	b := rgba.Bounds()
	n := b.Dx() * b.Dy()
	if n == 0 {
		return color.RGBA{}
	}
	var r, g, bl, a int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := rgba.RGBAAt(x, y)
			r += int(c.R)
			g += int(c.G)
			bl += int(c.B)
			a += int(c.A)
		}
	}
	return color.RGBA{uint8(r / n), uint8(g / n), uint8(bl / n), uint8(a / n)}
}
