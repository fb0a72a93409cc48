package core

import "fmt"

// Color is a 24-bit terminal color for a screen cell.
// The zero value means "terminal default" and is never emitted as a style.
type Color struct {
	R, G, B uint8
	set     bool
}

// ColorNone is the terminal default color.
var ColorNone = Color{}

// RGB creates a color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// IsSet reports whether the color overrides the terminal default.
func (c Color) IsSet() bool {
	return c.set
}

// Hex returns the color as "#rrggbb", or "" for ColorNone.
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
