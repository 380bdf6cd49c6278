package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBToVec3 converts 8-bit RGB channels into a linear [0,1] color vector
func RGBToVec3(r, g, b uint8) Vec3 {
	return NewVec3(float64(r)/255, float64(g)/255, float64(b)/255)
}

// HexToVec3 converts a packed 0xRRGGBB value into a color vector
func HexToVec3(hex uint32) Vec3 {
	c, err := colorful.Hex(fmt.Sprintf("#%06x", hex&0xffffff))
	if err != nil {
		// unreachable: the format above always yields a valid hex string
		return Vec3{}
	}
	return FromColorful(c)
}

// ParseHexColor parses "#rrggbb" or "#rgb" into a color vector
func ParseHexColor(s string) (Vec3, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Vec3{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return FromColorful(c), nil
}

// FromColorful converts a colorful.Color into a color vector
func FromColorful(c colorful.Color) Vec3 {
	return NewVec3(c.R, c.G, c.B)
}

// HCLToVec3 converts a hue/chroma/luminance color into a clamped RGB vector.
// h is in degrees, c and l are roughly in [0,1].
func HCLToVec3(h, c, l float64) Vec3 {
	return FromColorful(colorful.Hcl(h, c, l).Clamped())
}

// Luminance returns the perceptual luminance of an RGB color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (v Vec3) Luminance() float64 {
	return 0.299*v.X + 0.587*v.Y + 0.114*v.Z
}

// Hex formats the color as "#rrggbb", clamping channels to [0,1]
func (v Vec3) Hex() string {
	return colorful.Color{R: v.X, G: v.Y, B: v.Z}.Clamped().Hex()
}
