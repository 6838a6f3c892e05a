// internal/render/pipeline.go
package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"go-bouncing-disks/internal/config"
	"go-bouncing-disks/internal/sim"
	prender "go-bouncing-disks/pkg/render"
)

// Pipeline owns everything GPU-facing: the compiled point-sprite shader, the
// flat coordinate buffer rewritten every frame, the static per-disk color
// buffer filled once at setup, and the scratch vertex/index slices handed to
// the draw call. It lives for the lifetime of the Screen.
//
// Each disk is one point sprite: a point-size-sized quad (4 vertices,
// 6 indices) whose fragment shader masks it to a circle. The quads'
// sprite-local coordinates and colors are written once here; only the
// destination coordinates change per frame.
type Pipeline struct {
	shader *ebiten.Shader

	coords []float32 // 2 per disk, contents change every frame
	colors []float32 // 3 per disk, written once, never mutated

	vertices []ebiten.Vertex
	indices  []uint16

	diskNum   int
	width     int
	height    int
	pointSize float64
}

// NewPipeline compiles the shader and allocates all buffers. A shader
// compile failure is unrecoverable: no partial pipeline is returned.
// The color buffer draws diskNum*3 floats in [0,1) from src.
func NewPipeline(diskNum, width, height int, pointSize float64, src prender.FloatSource) (*Pipeline, error) {
	shader, err := newPointSpriteShader()
	if err != nil {
		return nil, fmt.Errorf("failed to compile point sprite shader: %w", err)
	}

	p := &Pipeline{
		shader:    shader,
		coords:    make([]float32, 2*diskNum),
		colors:    prender.RandomBuffer(diskNum, src),
		vertices:  make([]ebiten.Vertex, 4*diskNum),
		indices:   make([]uint16, 6*diskNum),
		diskNum:   diskNum,
		width:     width,
		height:    height,
		pointSize: pointSize,
	}

	for i := 0; i < diskNum; i++ {
		c := prender.At(p.colors, i)
		for j := 0; j < 4; j++ {
			v := &p.vertices[i*4+j]
			v.SrcX = float32(j % 2)
			v.SrcY = float32(j / 2)
			v.ColorR = c.R
			v.ColorG = c.G
			v.ColorB = c.B
			v.ColorA = 1
		}
		base := uint16(i * 4)
		copy(p.indices[i*6:], []uint16{base, base + 1, base + 2, base + 1, base + 3, base + 2})
	}
	return p, nil
}

// Upload flattens the set's current (x, y) pairs, in set order and cast to
// single precision, into the coordinate buffer, then rewrites the quads'
// destination coordinates from it. The population size is fixed at setup;
// disks must have the pipeline's disk count.
func (p *Pipeline) Upload(disks sim.DiskSet) {
	for i, d := range disks {
		p.coords[2*i] = float32(d.X)
		p.coords[2*i+1] = float32(d.Y)
	}
	half := float32(p.pointSize) / 2
	for i := 0; i < p.diskNum; i++ {
		x := p.coords[2*i]
		y := p.coords[2*i+1]
		quad := p.vertices[i*4 : i*4+4]
		quad[0].DstX, quad[0].DstY = x-half, y-half
		quad[1].DstX, quad[1].DstY = x+half, y-half
		quad[2].DstX, quad[2].DstY = x-half, y+half
		quad[3].DstX, quad[3].DstY = x+half, y+half
	}
}

// Draw clears the destination and issues the single draw call covering all
// disks. Zero disks is valid: the clear still happens and nothing fails.
func (p *Pipeline) Draw(dst *ebiten.Image) {
	dst.Fill(config.ClearColor)
	if p.diskNum == 0 {
		return
	}
	op := &ebiten.DrawTrianglesShaderOptions{}
	op.Uniforms = map[string]any{
		"PointSize": float32(p.pointSize),
	}
	dst.DrawTrianglesShader(p.vertices, p.indices, p.shader, op)
}

// Coords exposes the flattened coordinate buffer (for tests and viewers).
func (p *Pipeline) Coords() []float32 { return p.coords }

// Colors exposes the static color buffer (for tests and viewers).
func (p *Pipeline) Colors() []float32 { return p.colors }

// Size returns the viewport dimensions the pipeline was set up with.
func (p *Pipeline) Size() (int, int) { return p.width, p.height }
