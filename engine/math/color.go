package math

import (
	"fmt"
	"image/color"
)

// Color is a 32-bit RGBA color packed with R in the lowest byte and A in
// the highest.
type Color struct {
	PackedValue uint32
}

func NewColor(r, g, b, a uint8) Color {
	return Color{PackedValue: uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24}
}

// ColorFromFloats clamps every channel to [0, 1] and scales it to 0..255.
func ColorFromFloats(r, g, b, a float32) Color {
	return NewColor(unitToByte(r), unitToByte(g), unitToByte(b), unitToByte(a))
}

// ColorFromVector3 builds an opaque color from xyz as rgb.
func ColorFromVector3(v Vector3) Color {
	return ColorFromFloats(v.X, v.Y, v.Z, 1)
}

// ColorFromVector4 builds a color from xyzw as rgba.
func ColorFromVector4(v Vector4) Color {
	return ColorFromFloats(v.X, v.Y, v.Z, v.W)
}

// ColorFromNonPremultiplied multiplies rgb by alpha.
func ColorFromNonPremultiplied(r, g, b, a uint8) Color {
	return NewColor(
		uint8(uint32(r)*uint32(a)/255),
		uint8(uint32(g)*uint32(a)/255),
		uint8(uint32(b)*uint32(a)/255),
		a,
	)
}

// ColorFromNRGBA converts a non-premultiplied image color.
func ColorFromNRGBA(c color.NRGBA) Color {
	return NewColor(c.R, c.G, c.B, c.A)
}

func unitToByte(v float32) uint8 {
	// NaN fails both comparisons in Clamp and is mapped to 0.
	if IsNaN(v) {
		return 0
	}
	return uint8(Clamp(v, 0, 1)*255 + 0.5)
}

func (c Color) R() uint8 { return uint8(c.PackedValue) }
func (c Color) G() uint8 { return uint8(c.PackedValue >> 8) }
func (c Color) B() uint8 { return uint8(c.PackedValue >> 16) }
func (c Color) A() uint8 { return uint8(c.PackedValue >> 24) }

// ToVector3 returns rgb scaled to [0, 1].
func (c Color) ToVector3() Vector3 {
	return Vector3{float32(c.R()) / 255, float32(c.G()) / 255, float32(c.B()) / 255}
}

// ToVector4 returns rgba scaled to [0, 1].
func (c Color) ToVector4() Vector4 {
	return Vector4{float32(c.R()) / 255, float32(c.G()) / 255, float32(c.B()) / 255, float32(c.A()) / 255}
}

// MulScalar scales every channel, alpha included, clamping the result.
func (c Color) MulScalar(scale float32) Color {
	return ColorFromVector4(c.ToVector4().MulScalar(scale))
}

// NRGBA returns c as an image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color, treating c as non-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("{R:%d G:%d B:%d A:%d}", c.R(), c.G(), c.B(), c.A())
}

// ColorLerp interpolates every channel, clamping amount to [0, 1].
func ColorLerp(a, b Color, amount float32) Color {
	amount = Clamp(amount, 0, 1)
	return ColorFromVector4(Vector4Lerp(a.ToVector4(), b.ToVector4(), amount))
}
