// cmd/viewer_raylib/main.go

// viewer_raylib draws the same disk simulation with raylib circles instead
// of the ebiten shader pipeline. Handy for eyeballing the physics without
// the point-sprite path in between.
package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-bouncing-disks/internal/config"
	"go-bouncing-disks/internal/sim"
	"go-bouncing-disks/internal/utils"
	prender "go-bouncing-disks/pkg/render"
)

func main() {
	opts := config.DefaultOptions()
	opts.Title = "Disks | Raylib Viewer"

	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	rng := utils.NewPRNGService(0)
	disks := sim.NewDiskSet(opts.DiskNum, float64(opts.Width), float64(opts.Height), rng)
	colors := prender.RandomBuffer(opts.DiskNum, rng)

	for !rl.WindowShouldClose() {
		disks.Step(float64(opts.Width), float64(opts.Height), opts.DiskSize)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		for i, d := range disks {
			c := prender.At(colors, i).RGBA8()
			rl.DrawCircle(int32(d.X), int32(d.Y), float32(opts.DiskSize)/2, rl.NewColor(c.R, c.G, c.B, c.A))
		}
		rl.DrawFPS(8, 8)
		rl.EndDrawing()
	}
}
