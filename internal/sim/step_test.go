package sim

import (
	"testing"

	"go-bouncing-disks/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepReflectsLeftWall(t *testing.T) {
	// x=10, r=15, vx=-8: after the move x=2, x-r=-13 < 0, so the overshoot
	// is mirrored back: x = 15-(2-15) = 28 and vx flips to +8.
	disks := DiskSet{{X: 10, Y: 250, VX: -8, VY: 0}}
	disks.Step(500, 500, 15)
	assert.Equal(t, 28.0, disks[0].X)
	assert.Equal(t, 8.0, disks[0].VX)
}

func TestStepReflectsRightWall(t *testing.T) {
	disks := DiskSet{{X: 495, Y: 250, VX: 10, VY: 0}}
	disks.Step(500, 500, 15)
	// post-move x=505, overshoot x+r-w=20, mirrored: 500-20-15 = 465
	assert.Equal(t, 465.0, disks[0].X)
	assert.Equal(t, -10.0, disks[0].VX)
}

func TestStepReflectsVerticalWalls(t *testing.T) {
	disks := DiskSet{
		{X: 250, Y: 10, VX: 0, VY: -8},
		{X: 250, Y: 495, VX: 0, VY: 10},
	}
	disks.Step(500, 500, 15)
	assert.Equal(t, 28.0, disks[0].Y)
	assert.Equal(t, 8.0, disks[0].VY)
	assert.Equal(t, 465.0, disks[1].Y)
	assert.Equal(t, -10.0, disks[1].VY)
}

func TestStepCornerBounce(t *testing.T) {
	disks := DiskSet{{X: 20, Y: 20, VX: -10, VY: -12}}
	disks.Step(500, 500, 15)
	assert.Greater(t, disks[0].VX, 0.0)
	assert.Greater(t, disks[0].VY, 0.0)
	assert.GreaterOrEqual(t, disks[0].X, 15.0)
	assert.GreaterOrEqual(t, disks[0].Y, 15.0)
}

func TestStepStationaryCenterDiskStaysPut(t *testing.T) {
	disks := DiskSet{{X: 250, Y: 250}}
	for i := 0; i < 1000; i++ {
		disks.Step(500, 500, 32)
	}
	assert.Equal(t, 250.0, disks[0].X)
	assert.Equal(t, 250.0, disks[0].Y)
}

func TestStepContainmentInvariant(t *testing.T) {
	const (
		width  = 500.0
		height = 500.0
		radius = 32.0
	)
	disks := NewDiskSet(100, width, height, utils.NewPRNGService(12345))
	for tick := 0; tick < 2000; tick++ {
		disks.Step(width, height, radius)
		for i, d := range disks {
			require.GreaterOrEqual(t, d.X, radius, "tick %d disk %d", tick, i)
			require.LessOrEqual(t, d.X, width-radius, "tick %d disk %d", tick, i)
			require.GreaterOrEqual(t, d.Y, radius, "tick %d disk %d", tick, i)
			require.LessOrEqual(t, d.Y, height-radius, "tick %d disk %d", tick, i)
		}
	}
}

func TestStepPreservesSpeed(t *testing.T) {
	disks := NewDiskSet(100, 500, 500, utils.NewPRNGService(6))
	before := make([]float64, len(disks))
	for i, d := range disks {
		before[i] = d.Speed()
	}
	for tick := 0; tick < 2000; tick++ {
		disks.Step(500, 500, 32)
	}
	for i, d := range disks {
		assert.InDelta(t, before[i], d.Speed(), 1e-9, "disk %d", i)
	}
}

func TestStepWithoutWallsIsPlainEuler(t *testing.T) {
	disks := DiskSet{{X: 250, Y: 250, VX: 3, VY: -2}}
	disks.Step(500, 500, 32)
	assert.Equal(t, 253.0, disks[0].X)
	assert.Equal(t, 248.0, disks[0].Y)
	assert.Equal(t, 3.0, disks[0].VX)
	assert.Equal(t, -2.0, disks[0].VY)
}
