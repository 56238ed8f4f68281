/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package dye wraps the external color libraries behind a small
// processed-color type with named transforms.
package dye

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// AlphaThreshold is the value below which alpha is included in CSS output.
// Values >= 0.999 are treated as fully opaque to avoid unnecessary alpha channels.
const AlphaThreshold = 0.999

// Color is a processed color value. The zero value is invalid.
// Transforms on an invalid Color return an invalid Color.
type Color struct {
	col   colorful.Color
	alpha float64
	raw   string
	valid bool
}

// Parse parses a CSS color string (hex, rgb(a), hsl(a), hwb, named, …).
// Parse never fails outright: an unparseable value yields an invalid
// Color that retains the raw input for later display.
func Parse(value string) Color {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return Color{raw: value}
	}
	return Color{
		col:   colorful.Color{R: c.R, G: c.G, B: c.B},
		alpha: c.A,
		raw:   value,
		valid: true,
	}
}

// New constructs a Color from sRGB channels and alpha, all in [0,1].
func New(r, g, b, a float64) Color {
	return Color{
		col:   colorful.Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)},
		alpha: clamp01(a),
		valid: true,
	}
}

// Invalid returns an invalid Color carrying raw as its display value.
func Invalid(raw string) Color {
	return Color{raw: raw}
}

// Valid reports whether the color parsed (or was constructed) successfully.
func (c Color) Valid() bool {
	return c.valid
}

// Raw returns the original input string, if any.
func (c Color) Raw() string {
	return c.raw
}

// Alpha returns the alpha channel in [0,1]. Invalid colors report 0.
func (c Color) Alpha() float64 {
	if !c.valid {
		return 0
	}
	return c.alpha
}

// RGB255 returns the 8-bit sRGB channels, clamped to gamut.
func (c Color) RGB255() (r, g, b uint8) {
	return c.col.Clamped().RGB255()
}

// Hex returns the #rrggbb representation. Alpha is not included.
// Invalid colors return the raw input unchanged.
func (c Color) Hex() string {
	if !c.valid {
		return c.raw
	}
	return c.col.Clamped().Hex()
}

// CSS returns an rgb() representation, with alpha when it is below
// AlphaThreshold. Invalid colors return the raw input unchanged.
func (c Color) CSS() string {
	if !c.valid {
		return c.raw
	}
	r, g, b := c.RGB255()
	if c.alpha < AlphaThreshold {
		return fmt.Sprintf("rgb(%d %d %d / %.4g)", r, g, b, c.alpha)
	}
	return fmt.Sprintf("rgb(%d %d %d)", r, g, b)
}

// Lighten raises HSL lightness by amount (in [0,1]), keeping hue and
// saturation.
func (c Color) Lighten(amount float64) Color {
	return c.shiftLightness(amount)
}

// Darken lowers HSL lightness by amount (in [0,1]).
func (c Color) Darken(amount float64) Color {
	return c.shiftLightness(-amount)
}

// Saturate raises HSL saturation by amount (in [0,1]).
func (c Color) Saturate(amount float64) Color {
	return c.shiftSaturation(amount)
}

// Desaturate lowers HSL saturation by amount (in [0,1]).
func (c Color) Desaturate(amount float64) Color {
	return c.shiftSaturation(-amount)
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	if !c.valid {
		return c
	}
	c.alpha = clamp01(a)
	return c
}

func (c Color) shiftLightness(delta float64) Color {
	if !c.valid {
		return c
	}
	h, s, l := c.col.Hsl()
	next := colorful.Hsl(h, s, clamp01(l+delta)).Clamped()
	return Color{col: next, alpha: c.alpha, raw: c.raw, valid: true}
}

func (c Color) shiftSaturation(delta float64) Color {
	if !c.valid {
		return c
	}
	h, s, l := c.col.Hsl()
	next := colorful.Hsl(h, clamp01(s+delta), l).Clamped()
	return Color{col: next, alpha: c.alpha, raw: c.raw, valid: true}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
