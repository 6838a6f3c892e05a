// pkg/render/color.go
package render

import "image/color"

// FloatSource is the random capability color generation depends on.
// Satisfied by utils.PRNGService.
type FloatSource interface {
	Float64() float64
}

// RGB is a normalized color triple in [0, 1), three floats per disk as laid
// out in the static color buffer.
type RGB struct {
	R, G, B float32
}

// RandomBuffer returns a flat color buffer of n*3 independently randomized
// floats in [0, 1). The buffer is generated once at setup and never mutated
// afterwards.
func RandomBuffer(n int, src FloatSource) []float32 {
	buf := make([]float32, n*3)
	for i := range buf {
		buf[i] = float32(src.Float64())
	}
	return buf
}

// At reads the color triple for disk i out of a flat color buffer.
func At(buf []float32, i int) RGB {
	return RGB{R: buf[i*3], G: buf[i*3+1], B: buf[i*3+2]}
}

// RGBA8 converts a normalized triple to an 8-bit opaque color.
func (c RGB) RGBA8() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: 255,
	}
}

// Darken reduces the brightness of a color triple.
func (c RGB) Darken() RGB {
	return RGB{R: c.R * 0.5, G: c.G * 0.5, B: c.B * 0.5}
}
