// internal/app/hud.go
package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"go-bouncing-disks/internal/config"
)

// HUD draws the diagnostic overlay (tick/frame rates and population size)
// on top of the rendered frame.
type HUD struct {
	face font.Face
}

// NewHUD parses the bundled Go Regular face.
func NewHUD() (*HUD, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HUD font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    config.HUDFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build HUD font face: %w", err)
	}
	return &HUD{face: face}, nil
}

// Draw renders the overlay text.
func (h *HUD) Draw(dst *ebiten.Image, diskNum int) {
	msg := fmt.Sprintf("TPS %.0f  FPS %.0f  disks %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), diskNum)
	text.Draw(dst, msg, h.face, config.HUDMarginX, config.HUDBaseline, config.HUDTextColor)
}
