// internal/config/config.go
package config

import "image/color"

const (
	DefaultDiskNum  = 100
	DefaultWidth    = 500
	DefaultHeight   = 500
	DefaultDiskSize = 32.0

	// MaxDiskNum keeps the quad index buffer inside the uint16 range
	// (4 vertices per disk, indices up to 4*n-1 < 65536).
	MaxDiskNum = 16000

	HUDMarginX  = 8
	HUDBaseline = 20
	HUDFontSize = 14
)

var (
	// ClearColor is the black clear issued before every draw.
	ClearColor = color.RGBA{0, 0, 0, 255}

	HUDTextColor = color.RGBA{240, 240, 240, 255}
)
