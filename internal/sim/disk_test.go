package sim

import (
	"testing"

	"go-bouncing-disks/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiskSetStartsAtCenter(t *testing.T) {
	rng := utils.NewPRNGService(1)
	disks := NewDiskSet(100, 500, 500, rng)
	require.Len(t, disks, 100)
	for i, d := range disks {
		assert.Equal(t, 250.0, d.X, "disk %d", i)
		assert.Equal(t, 250.0, d.Y, "disk %d", i)
	}
}

func TestNewDiskSetSpeedsInRange(t *testing.T) {
	rng := utils.NewPRNGService(2)
	disks := NewDiskSet(200, 500, 500, rng)
	for i, d := range disks {
		s := d.Speed()
		assert.GreaterOrEqual(t, s, 1.0, "disk %d", i)
		assert.Less(t, s, 4.0, "disk %d", i)
	}
}

func TestNewDiskSetEmpty(t *testing.T) {
	rng := utils.NewPRNGService(3)
	disks := NewDiskSet(0, 500, 500, rng)
	assert.Len(t, disks, 0)
}

func TestNewDiskSetDeterministicUnderSeed(t *testing.T) {
	a := NewDiskSet(50, 640, 480, utils.NewPRNGService(99))
	b := NewDiskSet(50, 640, 480, utils.NewPRNGService(99))
	assert.Equal(t, a, b)
}

func TestNewDiskSetFansOut(t *testing.T) {
	// Disk 0 always has angle 0 regardless of the random draw, so it moves
	// straight along +x. Later disks should not all share that direction.
	disks := NewDiskSet(50, 500, 500, utils.NewPRNGService(4))
	assert.Equal(t, 0.0, disks[0].VY)
	assert.Greater(t, disks[0].VX, 0.0)

	var offAxis int
	for _, d := range disks[1:] {
		if d.VY != 0 {
			offAxis++
		}
	}
	assert.Greater(t, offAxis, 0)
}
