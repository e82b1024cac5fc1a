package habit

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a fixed RGBA record. Habits store the raw channels rather than a
// runtime color object so state stays a plain comparable value.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// DefaultColor is the teal the new-habit form starts with.
var DefaultColor = MustColorFromHex("#2a9d8f")

// ColorFromHex parses "#rrggbb" into a fully opaque Color.
func ColorFromHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// MustColorFromHex is ColorFromHex for trusted literals.
func MustColorFromHex(hex string) Color {
	c, err := ColorFromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders the color as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}
