package gamemath

import "math"

// SteerToward returns the displacement that moves (x, y) toward the target by
// at most step, without overshooting.
func SteerToward(x, y, targetX, targetY, step float64) (dx, dy float64) {
	dirX := targetX - x
	dirY := targetY - y
	dist := math.Hypot(dirX, dirY)
	if dist == 0 || step <= 0 {
		return 0, 0
	}
	if step >= dist {
		return dirX, dirY
	}
	return dirX / dist * step, dirY / dist * step
}

// CirclesOverlap is the sum-of-radii contact test.
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	dx := bx - ax
	dy := by - ay
	rr := ar + br
	return dx*dx+dy*dy < rr*rr
}

// Distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}
