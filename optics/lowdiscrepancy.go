package optics

const oneMinusEpsilon = 0x1.fffffffffffffp-1

// radicalInverse returns the base-b radical inverse of a: the digits of a
// mirrored about the radix point. With bases 2 and 3 this yields the
// deterministic low-discrepancy 2D sequence used to sample the rear lens
// plane.
func radicalInverse(base uint64, a uint64) float64 {
	invBase := 1.0 / float64(base)
	var reversed uint64
	invBaseN := 1.0
	for a > 0 {
		next := a / base
		digit := a - next*base
		reversed = reversed*base + digit
		invBaseN *= invBase
		a = next
	}
	v := float64(reversed) * invBaseN
	if v > oneMinusEpsilon {
		v = oneMinusEpsilon
	}
	return v
}
