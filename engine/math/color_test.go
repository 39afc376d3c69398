package math

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorPacking(t *testing.T) {
	c := NewColor(0x11, 0x22, 0x33, 0x44)
	assert.Equal(t, uint32(0x44332211), c.PackedValue)
	assert.Equal(t, uint8(0x11), c.R())
	assert.Equal(t, uint8(0x22), c.G())
	assert.Equal(t, uint8(0x33), c.B())
	assert.Equal(t, uint8(0x44), c.A())
	assert.Equal(t, "{R:17 G:34 B:51 A:68}", c.String())
}

func TestColorFromFloatsClamps(t *testing.T) {
	tests := []struct {
		name     string
		in       Vector4
		expected Color
	}{
		{"in range", NewVector4(1, 0.5, 0, 1), NewColor(255, 128, 0, 255)},
		{"above one", NewVector4(2, 1.5, 10, 3), NewColor(255, 255, 255, 255)},
		{"below zero", NewVector4(-1, -0.5, -10, -3), NewColor(0, 0, 0, 0)},
		{"nan", NewVector4(NaN(), 1, 1, 1), NewColor(0, 255, 255, 255)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ColorFromVector4(tt.in))
		})
	}

	assert.Equal(t, NewColor(255, 0, 0, 255), ColorFromVector3(NewVector3(4, -1, 0)))
}

func TestColorConversions(t *testing.T) {
	c := NewColor(255, 0, 51, 255)
	assert.Equal(t, NewVector4(1, 0, 0.2, 1), c.ToVector4())
	assert.Equal(t, NewVector3(1, 0, 0.2), c.ToVector3())
	assert.Equal(t, c, ColorFromVector4(c.ToVector4()))

	nrgba := c.NRGBA()
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 51, A: 255}, nrgba)
	assert.Equal(t, c, ColorFromNRGBA(nrgba))

	r, _, _, a := c.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
}

func TestColorBlending(t *testing.T) {
	assert.Equal(t, NewColor(100, 50, 0, 128), ColorFromNonPremultiplied(200, 100, 0, 128))

	black := NewColor(0, 0, 0, 255)
	white := NewColor(255, 255, 255, 255)
	assert.Equal(t, black, ColorLerp(black, white, -1))
	assert.Equal(t, white, ColorLerp(black, white, 2))
	assert.Equal(t, NewColor(128, 128, 128, 255), ColorLerp(black, white, 0.5))

	assert.Equal(t, NewColor(255, 255, 255, 255), NewColor(200, 200, 200, 200).MulScalar(2))
}
