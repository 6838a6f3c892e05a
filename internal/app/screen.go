// internal/app/screen.go
package app

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"go-bouncing-disks/internal/config"
	"go-bouncing-disks/internal/render"
	"go-bouncing-disks/internal/sim"
	"go-bouncing-disks/internal/utils"
)

// Screen composes the viewport, the disk population and the render pipeline.
// It owns both exclusively: the disks are mutated only inside DoFrame and
// the GPU resources are never touched from anywhere else.
type Screen struct {
	width    int
	height   int
	diskSize float64

	disks    sim.DiskSet
	pipeline *render.Pipeline
}

// NewScreen initializes the simulation and the pipeline from a validated
// options record. Construction either yields a usable Screen or an error;
// there is no partial result and no retry.
func NewScreen(opts config.Options, rng *utils.PRNGService) (*Screen, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("screen setup: %w", err)
	}

	disks := sim.NewDiskSet(opts.DiskNum, float64(opts.Width), float64(opts.Height), rng)
	pipeline, err := render.NewPipeline(opts.DiskNum, opts.Width, opts.Height, opts.DiskSize, rng)
	if err != nil {
		return nil, fmt.Errorf("screen setup: %w", err)
	}

	return &Screen{
		width:    opts.Width,
		height:   opts.Height,
		diskSize: opts.DiskSize,
		disks:    disks,
		pipeline: pipeline,
	}, nil
}

// DoFrame is the single per-tick entry point: advance the simulation by one
// step, then upload the updated positions and draw. Called once per
// animation tick by the host; it cannot fail.
func (s *Screen) DoFrame(dst *ebiten.Image) {
	s.advance()
	s.pipeline.Upload(s.disks)
	s.pipeline.Draw(dst)
}

func (s *Screen) advance() {
	s.disks.Step(float64(s.width), float64(s.height), s.diskSize)
}

// Disks exposes the current population.
func (s *Screen) Disks() sim.DiskSet { return s.disks }

// Size returns the viewport dimensions.
func (s *Screen) Size() (int, int) { return s.width, s.height }

// Greet logs the startup greeting for the named surface.
func Greet(name string) {
	log.Infof("Hello %s", name)
}
