package asce

import "math"

// Slope factor curve breakpoints from ASCE 7-22 Figure 7.4-1.
// Each regime holds Cs = 1.0 up to the flat limit, then decays linearly
// over the decay span, reaching zero at flatLimit + decaySpan.
const (
	warmPlainFlatLimit = 26.57 // warm roof (Ct ≤ 1.1), non-slippery; zero at 69.99°
	warmPlainDecaySpan = 43.43

	warmSlickFlatLimit = 3.58 // warm roof, slippery; zero at 70°
	warmSlickDecaySpan = 66.42

	coldPlainFlatLimit = 37.76 // cold roof (Ct ≥ 1.2), non-slippery; zero at 70°
	coldPlainDecaySpan = 32.24

	coldSlickFlatLimit = 8.53 // cold roof, slippery; zero at 70°
	coldSlickDecaySpan = 61.47
)

// SlopeFactor calculates Cs per ASCE 7-22 Figure 7.4-1.
//
// The regime is selected by thermal condition and surface type. A warm
// roof is Ct ≤ 1.1; Ct strictly between 1.1 and 1.2 (the
// heated-unventilated case) is treated as a cold roof, the conservative
// reading of the figure. The slope angle is clamped to [0°, 90°] and
// never rejected.
func SlopeFactor(thetaDeg, ct float64, slippery bool) float64 {
	theta := math.Min(math.Max(thetaDeg, 0), 90)
	warm := ct <= 1.1

	var flat, span float64
	switch {
	case warm && slippery:
		flat, span = warmSlickFlatLimit, warmSlickDecaySpan
	case warm:
		flat, span = warmPlainFlatLimit, warmPlainDecaySpan
	case slippery:
		flat, span = coldSlickFlatLimit, coldSlickDecaySpan
	default:
		flat, span = coldPlainFlatLimit, coldPlainDecaySpan
	}

	if theta <= flat {
		return 1.0
	}
	cs := 1.0 - (theta-flat)/span
	return math.Max(cs, 0.0)
}
