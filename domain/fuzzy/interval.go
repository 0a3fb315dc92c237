package fuzzy

// Interval arithmetic kernel shared by Mul and Div. A trapezoid is treated
// as two nested intervals (support and core) and each operation is applied
// endpoint-wise per level; the trapezoidal shape interpolates linearly in
// between.

// intervalMul returns the exact interval product [lo1,hi1] * [lo2,hi2].
func intervalMul(lo1, hi1, lo2, hi2 float64) (float64, float64) {
	return minMax4(lo1*lo2, lo1*hi2, hi1*lo2, hi1*hi2)
}

// intervalDiv returns the exact interval quotient [lo1,hi1] / [lo2,hi2].
// The divisor interval must not contain zero; callers check before calling.
func intervalDiv(lo1, hi1, lo2, hi2 float64) (float64, float64) {
	return minMax4(lo1/lo2, lo1/hi2, hi1/lo2, hi1/hi2)
}

func minMax4(p, q, r, s float64) (lo, hi float64) {
	lo, hi = p, p
	for _, v := range [...]float64{q, r, s} {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
