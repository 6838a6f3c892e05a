// internal/sim/step.go
package sim

import "math"

// Step advances every disk by one tick (Euler integration, unit time step)
// and reflects it off the four viewport edges. Reflection mirrors the
// overshoot distance back across the boundary instead of clamping, so the
// velocity magnitude is preserved and a disk never sticks to a wall across
// frames. The x and y checks are independent: a disk can bounce off both
// axes in the same tick (corner bounce).
//
// Disks are processed independently; iteration order does not matter.
func (s DiskSet) Step(width, height, radius float64) {
	for i := range s {
		d := &s[i]
		d.X += d.VX
		d.Y += d.VY
		if d.X-radius < 0 {
			d.X = radius - (d.X - radius)
			d.VX = math.Abs(d.VX)
		} else if d.X+radius > width {
			d.X = width - (d.X + radius - width) - radius
			d.VX = -math.Abs(d.VX)
		}
		if d.Y-radius < 0 {
			d.Y = radius - (d.Y - radius)
			d.VY = math.Abs(d.VY)
		} else if d.Y+radius > height {
			d.Y = height - (d.Y + radius - height) - radius
			d.VY = -math.Abs(d.VY)
		}
	}
}
