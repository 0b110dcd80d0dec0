package vmath

import "math"

func sqrt(x float64) float64 { return math.Sqrt(x) }

// Clamp01 limits x to [0,1]
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// SmoothStep is the cubic Hermite ease 3t^2 - 2t^3, monotonic on [0,1]
func SmoothStep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// EaseInOutSine is a sine-shaped ease, monotonic on [0,1]
func EaseInOutSine(t float64) float64 {
	t = Clamp01(t)
	return 0.5 - 0.5*math.Cos(math.Pi*t)
}

// Approach moves current toward target by an exponential-decay step.
// rate is the per-second convergence rate; frame-rate independent for small dt
func Approach(current, target, rate, dt float64) float64 {
	k := 1 - math.Exp(-rate*dt)
	return current + (target-current)*k
}

// Lerp interpolates between a and b, t unclamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
