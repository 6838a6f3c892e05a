// internal/render/shader.go
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// pointSpriteShaderSrc is the fixed, embedded shader program. The runtime
// owns the pixel-to-NDC vertex transform; this fragment stage only masks the
// point sprite to a disk: every fragment farther than 0.5 from the sprite
// center (in sprite-local coordinates, carried through the source position
// channel) is discarded, and the rim is softened over roughly one pixel
// using the point-size uniform.
const pointSpriteShaderSrc = `//kage:unit pixels

package main

var PointSize float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	d := distance(srcPos, vec2(0.5, 0.5))
	if d >= 0.5 {
		discard()
	}
	edge := 0.5 - 1.0/PointSize
	a := 1.0 - smoothstep(edge, 0.5, d)
	return vec4(color.rgb*a, color.a*a)
}
`

func newPointSpriteShader() (*ebiten.Shader, error) {
	return ebiten.NewShader([]byte(pointSpriteShaderSrc))
}
