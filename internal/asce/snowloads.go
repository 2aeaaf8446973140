package asce

import "math"

// ASCE 7-22 Chapter 7 Snow Load Constants

const (
	// Snow density cap
	// Eq. 7.7-1
	MaxSnowDensity = 30.0 // pcf

	// Upwind fetch cap for drift calculations (Section 7.6)
	MaxFetchLength = 500.0 // ft

	// Drift applicability slope-ratio limits (Section 7.6.1)
	MinDriftSlopeRatio = 0.5 / 12.0
	MaxDriftSlopeRatio = 7.0 / 12.0

	// Ground-to-flat-roof conversion factor (Eq. 7.3-1)
	GroundToRoofFactor = 0.7

	// Snow factor for the ASD load combination D + 0.7S
	// (ASCE 7-22 Section 2.4.1)
	SnowASDFactor = 0.7

	// Load duration factor for snow (NDS Table 2.3.2)
	SnowDurationFactor = 1.15

	// Assumed wood unit weight for beam self-weight
	WoodUnitWeight = 35.0 // pcf

	// Slope below which the low-slope minimum load applies (Section 7.3.4)
	MinimumLoadSlopeLimit = 15.0 // degrees

	// Eave-to-ridge span at or below which the narrow-roof drift
	// substitution of Section 7.6.1 applies
	NarrowRoofSpanLimit = 20.0 // ft
)

// SnowDensity calculates the snow density from the ground snow load.
// ASCE 7-22 Eq. 7.7-1: γ = 0.13·pg + 14, not to exceed 30 pcf.
func SnowDensity(pg float64) float64 {
	return math.Min(0.13*pg+14.0, MaxSnowDensity)
}

// FlatRoofLoad calculates the flat roof snow load.
// ASCE 7-22 Eq. 7.3-1: pf = 0.7·Ce·Ct·Is·pg
func FlatRoofLoad(pg, ce, ct, is float64) float64 {
	return GroundToRoofFactor * ce * ct * is * pg
}

// SlopedRoofLoad calculates the sloped (balanced) roof snow load.
// ASCE 7-22 Eq. 7.4-1: ps = Cs·pf
func SlopedRoofLoad(pf, cs float64) float64 {
	return pf * cs
}

// MinimumRoofLoad calculates the low-slope minimum snow load pm.
// ASCE 7-22 Section 7.3.4: pm = Is·pg for pg ≤ 20 psf, otherwise 20·Is.
// The minimum applies only to roofs with slope below MinimumLoadSlopeLimit;
// that gate belongs to the caller since it depends on both roof planes.
func MinimumRoofLoad(pg, is float64) float64 {
	if pg <= 20 {
		return is * pg
	}
	return is * 20
}
