package harmonics

import (
	"math"

	"github.com/lixenwraith/orbfolio/vmath"
)

// NumCoeffs is the size of the truncated real spherical-harmonic basis:
// degree 0 (1 term), degree 1 (3 terms), degree 2 (5 terms) and three
// degree-3 terms kept for high-frequency detail
const NumCoeffs = 12

// Coeffs holds one orb's displacement weights. Index 0 is the DC/size term
type Coeffs [NumCoeffs]float64

// Orthonormal constants of the real spherical harmonics, precomputed.
// Runtime never derives these; the basis is fixed. The DC basis is unity:
// the size term rides in c[0] directly, so a coefficient set [R, 0, ...]
// is a pure sphere of radius exactly R
const (
	y1x  = 0.4886025119029199 // sqrt(3/(4pi))
	y2xy = 1.0925484305920792  // 1/2 sqrt(15/pi)
	y20  = 0.31539156525252005 // 1/4 sqrt(5/pi)
	y22  = 0.5462742152960396  // 1/4 sqrt(15/pi)
	y3m2 = 2.890611442640554   // 1/2 sqrt(105/pi)
	y30  = 0.3731763325901154  // 1/4 sqrt(7/pi)
	y33  = 0.5900435899266435  // 1/4 sqrt(35/(2pi))
)

// Eval returns the scalar radial displacement at (theta, phi) for the given
// coefficients. theta is the polar angle measured from +Y (0..pi), phi the
// azimuth atan2(z, x) (-pi..pi), matching the factory's angle cache.
//
// Pure and allocation-free: it runs once per vertex per morph
func Eval(theta, phi float64, c *Coeffs) float64 {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)

	// Unit direction with Y up
	dx := st * cp
	dy := ct
	dz := st * sp

	r := c[0]

	// Degree 1
	r += c[1] * y1x * dz
	r += c[2] * y1x * dy
	r += c[3] * y1x * dx

	// Degree 2
	r += c[4] * y2xy * dx * dz
	r += c[5] * y2xy * dz * dy
	r += c[6] * y20 * (3*dy*dy - 1)
	r += c[7] * y2xy * dx * dy
	r += c[8] * y22 * (dx*dx - dz*dz)

	// Degree 3 (sectoral/zonal picks, kept subtle by the generator bands)
	r += c[9] * y3m2 * dx * dz * dy
	r += c[10] * y30 * dy * (5*dy*dy - 3)
	r += c[11] * y33 * dx * (dx*dx - 3*dz*dz)

	return r
}

// Band half-ranges for Random: draws are centered at zero with total range
// amp*factor, so magnitudes stay within amp*factor/2. Higher bands get
// smaller factors to keep high frequencies visually subtler
const (
	BandLow  = 0.45 // indices 1..3
	BandMid  = 0.60 // indices 4..8
	BandHigh = 0.35 // indices 9..11
)

// Random produces a coefficient set for one morph target. Index 0 is exactly
// base (the DC/size term); the rest are centered draws scaled per band
func Random(base, amp float64, rng *vmath.FastRand) Coeffs {
	var c Coeffs
	c[0] = base
	for i := 1; i <= 3; i++ {
		c[i] = rng.Centered(BandLow * amp / 2)
	}
	for i := 4; i <= 8; i++ {
		c[i] = rng.Centered(BandMid * amp / 2)
	}
	for i := 9; i <= 11; i++ {
		c[i] = rng.Centered(BandHigh * amp / 2)
	}
	return c
}

// LerpEased writes the component-wise interpolation of a toward b into dst,
// with a smooth monotonic ease applied to t. dst may alias a or b
func LerpEased(dst, a, b *Coeffs, t float64) {
	e := vmath.SmoothStep(t)
	for i := range dst {
		dst[i] = a[i] + (b[i]-a[i])*e
	}
}
