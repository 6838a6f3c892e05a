// internal/sim/disk.go
package sim

import (
	"math"

	"go-bouncing-disks/internal/utils"
	"go-bouncing-disks/pkg/geom"
)

// Disk is a single moving point: a position and a 2D velocity, advanced once
// per animation tick and rendered as a circular point sprite.
type Disk struct {
	X, Y   float64
	VX, VY float64
}

// DiskSet is the ordered disk population. The order is render-significant
// (it fixes the flat-buffer layout) but not simulation-significant: disks
// never interact with each other. The population is fixed after creation.
type DiskSet []Disk

// NewDiskSet creates num disks, all emitted from the viewport center.
// Velocity for disk i is a fan: magnitude 1 + 3*random in [1, 4), angle
// pi * 0.1 * i * random, so later indices sweep wider angles while the
// random factor spreads each spoke.
func NewDiskSet(num int, boundX, boundY float64, rng *utils.PRNGService) DiskSet {
	disks := make(DiskSet, 0, num)
	for i := 0; i < num; i++ {
		random := rng.Float64()
		velocity := 1 + 3*random
		angle := math.Pi * (0.1 * float64(i) * random)
		v := geom.Polar(velocity, angle)
		disks = append(disks, Disk{
			X:  boundX / 2,
			Y:  boundY / 2,
			VX: v.X,
			VY: v.Y,
		})
	}
	return disks
}

// Velocity returns the disk's velocity vector.
func (d Disk) Velocity() geom.Vec2 {
	return geom.Vec2{X: d.VX, Y: d.VY}
}

// Speed returns the velocity magnitude.
func (d Disk) Speed() float64 {
	return d.Velocity().Len()
}
