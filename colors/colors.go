// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color conversions between [color.RGBA],
// packed 0xRRGGBB integers as used in scene files, and color names.
package colors

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// FromRGB makes a new opaque RGBA color from the given
// RGB uint8 values.
func FromRGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// FromPacked returns the opaque color for the given packed 0xRRGGBB integer.
// Bits above the low 24 are ignored.
func FromPacked(v int) color.RGBA {
	return FromRGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

// AsPacked returns the given color as a packed 0xRRGGBB integer,
// ignoring alpha.
func AsPacked(c color.Color) int {
	rc := AsRGBA(c)
	return int(rc.R)<<16 | int(rc.G)<<8 | int(rc.B)
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromString returns a color value from the given string:
// a CSS / SVG color name (e.g., "skyblue") or a hex value
// ("#rgb", "#rrggbb", "#rrggbbaa").
func FromString(str string) (color.RGBA, error) {
	if str == "" {
		return color.RGBA{}, fmt.Errorf("colors.FromString: empty color string")
	}
	if str[0] == '#' {
		return FromHex(str)
	}
	low := strings.ToLower(str)
	switch low {
	case "none", "off":
		return color.RGBA{}, nil
	case "transparent":
		return color.RGBA{0xFF, 0xFF, 0xFF, 0}, nil
	}
	nc, ok := colornames.Map[low]
	if !ok {
		return color.RGBA{}, fmt.Errorf("colors.FromString: name not found: %q", str)
	}
	return nc, nil
}

// FromHex parses the given hex color string
// and returns the resulting color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q", hex)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %q: %w", hex, err)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// Scale returns the color with its RGB components multiplied by the
// given factor, clamped to the valid range; alpha is unchanged.
func Scale(c color.RGBA, factor float32) color.RGBA {
	sc := func(v uint8) uint8 {
		f := float32(v) * factor
		if f > 255 {
			return 255
		}
		if f < 0 {
			return 0
		}
		return uint8(f)
	}
	return color.RGBA{sc(c.R), sc(c.G), sc(c.B), c.A}
}

// Uniform returns a new [image.Uniform] filled completely with the given color.
func Uniform(c color.Color) image.Image {
	return image.NewUniform(c)
}
