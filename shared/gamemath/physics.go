package gamemath

import "math"

// ApplyFriction scales a velocity by a per-tick friction multiplier.
func ApplyFriction(vx, vy, friction float64) (float64, float64) {
	return vx * friction, vy * friction
}

// ClampSpeed rescales (vx, vy) so its magnitude does not exceed max.
func ClampSpeed(vx, vy, max float64) (float64, float64) {
	if max <= 0 {
		return 0, 0
	}
	speed := math.Hypot(vx, vy)
	if speed <= max {
		return vx, vy
	}
	scale := max / speed
	vx, vy = vx*scale, vy*scale
	// Rounding can leave the product a hair above max
	if math.Hypot(vx, vy) > max {
		vx = math.Nextafter(vx, 0)
		vy = math.Nextafter(vy, 0)
	}
	return vx, vy
}

// ClampToBounds clamps a circle of radius r inside [0,w]x[0,h] and zeroes the
// velocity component that pushed into the wall.
func ClampToBounds(x, y, vx, vy, r, w, h float64) (float64, float64, float64, float64) {
	if x < r {
		x = r
		if vx < 0 {
			vx = 0
		}
	} else if x > w-r {
		x = w - r
		if vx > 0 {
			vx = 0
		}
	}
	if y < r {
		y = r
		if vy < 0 {
			vy = 0
		}
	} else if y > h-r {
		y = h - r
		if vy > 0 {
			vy = 0
		}
	}
	return x, y, vx, vy
}

// NormalizeAngle maps a into (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// SanitizeAxis zeroes non-finite values and clamps to [-1, 1].
func SanitizeAxis(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
