package snow

import (
	"math"

	"github.com/alexiusacademia/govalley/internal/asce"
	"github.com/alexiusacademia/govalley/internal/geometry"
)

// DriftResult holds the drift calculation output for one roof plane.
// All fields are derived and non-negative; a zero result means the
// drift provisions do not apply to the plane, not a failed formula.
type DriftResult struct {
	// Height is the drift height hd (ft), rounded to 0.01 ft
	Height float64 `json:"height"`

	// MaxSurcharge is the peak drift surcharge intensity pd_max (psf)
	MaxSurcharge float64 `json:"max_surcharge"`

	// Width is the drift width w (ft)
	Width float64 `json:"width"`

	// Density is the snow density γ used (pcf)
	Density float64 `json:"density"`

	// Uniform reports the narrow-roof substitution: the surcharge is
	// the full ground load applied uniformly instead of a triangular
	// drift, so no taper applies along the valley.
	Uniform bool `json:"uniform,omitempty"`
}

// GableDrift calculates the intersecting-gable drift for one roof plane
// per ASCE 7-22 Section 7.6.1.
//
// The drift height is
//
//	hd = 1.5·√(pg^0.74 · lu^0.70 · W2^1.7 / γ)
//
// with lu capped at 500 ft. The peak surcharge is pd_max = 2·hd·γ/√S and
// the drift width is w = 8·hd·√S/3, where S = 12/pitch.
//
// Drifts form only for slope ratios within [0.5/12, 7/12]; outside that
// range, or for lu ≤ 0 or pg ≤ 0, the result is zero by definition.
// For a narrow simply supported plane (eave-to-ridge span ≤ 20 ft) the
// triangular drift is replaced by the full ground load applied
// uniformly on the leeward side.
func GableDrift(pg, w2 float64, plane geometry.RoofPlane) DriftResult {
	gamma := asce.SnowDensity(pg)
	result := DriftResult{Density: gamma}

	if pg <= 0 {
		return result
	}

	if plane.Narrow() {
		result.MaxSurcharge = pg
		result.Height = pg / gamma
		result.Width = plane.EaveToRidge
		result.Uniform = true
		return result
	}

	s := plane.SlopeRatio()
	if s < asce.MinDriftSlopeRatio || s > asce.MaxDriftSlopeRatio {
		return result
	}

	lu := plane.CappedFetch()
	if lu <= 0 {
		return result
	}

	hd := 1.5 * math.Sqrt(math.Pow(pg, 0.74)*math.Pow(lu, 0.70)*math.Pow(w2, 1.7)/gamma)
	hd = math.Round(hd*100) / 100

	slopeParam := 12.0 / plane.Pitch // S

	result.Height = hd
	result.MaxSurcharge = 2.0 * hd * gamma / math.Sqrt(slopeParam)
	result.Width = 8.0 * hd * math.Sqrt(slopeParam) / 3.0
	return result
}
