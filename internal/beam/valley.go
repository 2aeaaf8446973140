package beam

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/govalley/internal/asce"
	"github.com/alexiusacademia/govalley/internal/loads"
)

// CalculationError reports an input that would drive the beam
// arithmetic through a division by zero or a non-finite result. It is
// always raised instead of coercing the offending ratio to zero, so an
// invalid section can never "pass" silently.
type CalculationError struct {
	Param string
	Value float64
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("beam calculation aborted: %s is invalid (%.4g)", e.Param, e.Value)
}

// Station is one sample of the shear and moment envelope.
type Station struct {
	X      float64 `json:"x"`      // ft from the eave support
	Shear  float64 `json:"shear"`  // lb
	Moment float64 `json:"moment"` // lb-ft
}

// DesignResult holds the complete valley beam check. Every intermediate
// quantity behind the pass/fail booleans is exposed so a report can
// show the governing arithmetic, not just the verdicts. The record is
// recomputed wholesale on every call.
type DesignResult struct {
	// Spans (ft)
	HorizontalSpan float64 `json:"horizontal_span"`
	SlopedSpan     float64 `json:"sloped_span"`

	// Load totals (lb) and self-weight (lb/ft, equivalent horizontal)
	TotalSnowLoad float64 `json:"total_snow_load"`
	TotalDeadLoad float64 `json:"total_dead_load"`
	SelfWeight    float64 `json:"self_weight"`

	// Combined D + 0.7S point loads used for the strength checks
	CombinedLoads []loads.PointLoad `json:"combined_loads"`

	// Reactions (lb)
	ReactionEave  float64 `json:"reaction_eave"`
	ReactionRidge float64 `json:"reaction_ridge"`

	// Envelope
	MaxMoment         float64   `json:"max_moment"` // lb-ft
	MaxMomentLocation float64   `json:"max_moment_location"`
	MaxShear          float64   `json:"max_shear"` // lb
	Stations          []Station `json:"stations,omitempty"`

	// Bending check (psi)
	BendingStress    float64 `json:"bending_stress"`
	AllowableBending float64 `json:"allowable_bending"`
	BendingRatio     float64 `json:"bending_ratio"`

	// Shear check (psi)
	ShearStress    float64 `json:"shear_stress"`
	AllowableShear float64 `json:"allowable_shear"`
	ShearRatio     float64 `json:"shear_ratio"`

	// Deflection checks (in)
	SnowDeflection       float64 `json:"snow_deflection"`
	SnowDeflectionLimit  float64 `json:"snow_deflection_limit"`
	SnowDeflectionRatio  float64 `json:"snow_deflection_ratio"`
	TotalDeflection      float64 `json:"total_deflection"`
	TotalDeflectionLimit float64 `json:"total_deflection_limit"`
	TotalDeflectionRatio float64 `json:"total_deflection_ratio"`

	// Status
	BendingOK         bool   `json:"bending_ok"`
	ShearOK           bool   `json:"shear_ok"`
	SnowDeflectionOK  bool   `json:"snow_deflection_ok"`
	TotalDeflectionOK bool   `json:"total_deflection_ok"`
	Adequate          bool   `json:"adequate"`
	Message           string `json:"message"`
}

// Analyze runs the simply supported valley beam statics and the four
// ASD checks against the trial section.
//
// The analysis runs in the horizontal projection over span lv, with the
// jack point loads at their plan positions. Self-weight accumulates
// along the sloped rafter length and is converted to an equivalent
// horizontal distributed load by the ratio L/lv. Moment and shear come
// from direct summation at sample points rather than superposition
// formulas, since the point-load set is irregular. Deflections use the
// equivalent-UDL midspan formula 5wL⁴/(384EI).
func Analyze(snowLoads, deadLoads []loads.PointLoad, lv, slopedLength float64, sec TrialSection) (*DesignResult, error) {
	if err := checkInputs(lv, slopedLength, sec); err != nil {
		return nil, err
	}

	result := &DesignResult{
		HorizontalSpan: lv,
		SlopedSpan:     slopedLength,
		TotalSnowLoad:  loads.Total(snowLoads),
		TotalDeadLoad:  loads.Total(deadLoads),
	}

	// Self-weight: wood density times section area, per sloped foot,
	// spread over the horizontal span
	swSloped := asce.WoodUnitWeight * sec.Area() / 144.0
	w := swSloped * slopedLength / lv
	result.SelfWeight = w

	combined := combineASD(deadLoads, snowLoads)
	result.CombinedLoads = combined

	// Reactions by moment balance about the eave support
	var sumP, sumPx float64
	for _, p := range combined {
		sumP += p.Magnitude
		sumPx += p.Magnitude * p.Position
	}
	result.ReactionRidge = (sumPx + w*lv*lv/2.0) / lv
	result.ReactionEave = sumP + w*lv - result.ReactionRidge

	sampleEnvelope(result, combined, w, lv)

	// Bending: fb = 12·M/S against Fb adjusted for snow duration
	sectionModulus := sec.SectionModulus()
	result.BendingStress = result.MaxMoment * 12.0 / sectionModulus
	result.AllowableBending = sec.Fb * asce.SnowDurationFactor
	result.BendingRatio = result.BendingStress / result.AllowableBending

	// Shear: fv = 1.5·V/A for a rectangular section
	result.ShearStress = 1.5 * result.MaxShear / sec.Area()
	result.AllowableShear = sec.Fv * asce.SnowDurationFactor
	result.ShearRatio = result.ShearStress / result.AllowableShear

	// Deflections via equivalent uniform loads
	spanIn := lv * 12.0
	inertia := sec.MomentOfInertia()

	wSnow := asce.SnowASDFactor * result.TotalSnowLoad / lv / 12.0 // lb/in
	result.SnowDeflection = 5.0 * wSnow * math.Pow(spanIn, 4) / (384.0 * sec.E * inertia)
	result.SnowDeflectionLimit = spanIn / sec.SnowDeflectionDenominator
	result.SnowDeflectionRatio = result.SnowDeflection / result.SnowDeflectionLimit

	wTotal := (result.TotalDeadLoad + asce.SnowASDFactor*result.TotalSnowLoad + w*lv) / lv / 12.0
	result.TotalDeflection = 5.0 * wTotal * math.Pow(spanIn, 4) / (384.0 * sec.E * inertia)
	result.TotalDeflectionLimit = spanIn / sec.TotalDeflectionDenominator
	result.TotalDeflectionRatio = result.TotalDeflection / result.TotalDeflectionLimit

	result.BendingOK = result.BendingRatio <= 1.0
	result.ShearOK = result.ShearRatio <= 1.0
	result.SnowDeflectionOK = result.SnowDeflectionRatio <= 1.0
	result.TotalDeflectionOK = result.TotalDeflectionRatio <= 1.0
	result.Adequate = result.BendingOK && result.ShearOK && result.SnowDeflectionOK && result.TotalDeflectionOK

	result.Message = buildMessage(result)
	return result, nil
}

func checkInputs(lv, slopedLength float64, sec TrialSection) error {
	switch {
	case lv <= 0:
		return &CalculationError{Param: "horizontal span", Value: lv}
	case slopedLength < lv:
		return &CalculationError{Param: "sloped span (must be >= horizontal span)", Value: slopedLength}
	case sec.Width <= 0:
		return &CalculationError{Param: "beam width", Value: sec.Width}
	case sec.Depth <= 0:
		return &CalculationError{Param: "beam depth", Value: sec.Depth}
	case sec.E <= 0:
		return &CalculationError{Param: "modulus of elasticity", Value: sec.E}
	case sec.Fb <= 0:
		return &CalculationError{Param: "allowable bending stress", Value: sec.Fb}
	case sec.Fv <= 0:
		return &CalculationError{Param: "allowable shear stress", Value: sec.Fv}
	case sec.SnowDeflectionDenominator <= 0:
		return &CalculationError{Param: "snow deflection denominator", Value: sec.SnowDeflectionDenominator}
	case sec.TotalDeflectionDenominator <= 0:
		return &CalculationError{Param: "total deflection denominator", Value: sec.TotalDeflectionDenominator}
	}
	return nil
}

// combineASD merges the dead and 0.7-factored snow series into one
// point-load set. The two series normally share positions; unmatched
// positions are kept as separate loads.
func combineASD(dead, snowLoads []loads.PointLoad) []loads.PointLoad {
	combined := make(map[float64]float64, len(dead)+len(snowLoads))
	for _, p := range dead {
		combined[p.Position] += p.Magnitude
	}
	for _, p := range snowLoads {
		combined[p.Position] += asce.SnowASDFactor * p.Magnitude
	}

	merged := make([]loads.PointLoad, 0, len(combined))
	for pos, mag := range combined {
		merged = append(merged, loads.PointLoad{Position: pos, Magnitude: mag})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Position < merged[j].Position })
	return merged
}

// sampleEnvelope fills in the shear/moment envelope by direct summation.
// Moments are sampled at a fine uniform grid plus every load point.
// Shear is piecewise linear between loads (constant but for the UDL),
// so it only needs evaluation at the supports and just left and right
// of each load point.
func sampleEnvelope(result *DesignResult, combined []loads.PointLoad, w, lv float64) {
	n := 50
	if fine := int(10.0 * lv); fine > n {
		n = fine
	}

	xs := make([]float64, 0, n+1+len(combined))
	step := lv / float64(n)
	for i := 0; i <= n; i++ {
		xs = append(xs, float64(i)*step)
	}
	for _, p := range combined {
		xs = append(xs, p.Position)
	}
	sort.Float64s(xs)

	momentAt := func(x float64) float64 {
		m := result.ReactionEave*x - w*x*x/2.0
		for _, p := range combined {
			if p.Position >= x {
				break
			}
			m -= p.Magnitude * (x - p.Position)
		}
		return m
	}

	stations := make([]Station, 0, len(xs))
	moments := make([]float64, 0, len(xs))
	var prev float64 = math.NaN()
	for _, x := range xs {
		if x == prev {
			continue
		}
		prev = x
		v := result.ReactionEave - w*x
		for _, p := range combined {
			if p.Position > x {
				break
			}
			v -= p.Magnitude
		}
		m := momentAt(x)
		stations = append(stations, Station{X: x, Shear: v, Moment: m})
		moments = append(moments, math.Abs(m))
	}
	result.Stations = stations

	idx := floats.MaxIdx(moments)
	result.MaxMoment = moments[idx]
	result.MaxMomentLocation = stations[idx].X

	// shear candidates: supports plus both sides of each load
	maxShear := math.Max(math.Abs(result.ReactionEave), math.Abs(result.ReactionRidge))
	for _, p := range combined {
		left := result.ReactionEave - w*p.Position
		for _, q := range combined {
			if q.Position >= p.Position {
				break
			}
			left -= q.Magnitude
		}
		right := left - p.Magnitude
		maxShear = math.Max(maxShear, math.Max(math.Abs(left), math.Abs(right)))
	}
	result.MaxShear = maxShear
}

func buildMessage(result *DesignResult) string {
	if result.Adequate {
		return "Design OK - all checks satisfied"
	}
	msg := "Section inadequate:"
	if !result.BendingOK {
		msg += fmt.Sprintf(" bending ratio %.2f > 1.0;", result.BendingRatio)
	}
	if !result.ShearOK {
		msg += fmt.Sprintf(" shear ratio %.2f > 1.0;", result.ShearRatio)
	}
	if !result.SnowDeflectionOK {
		msg += fmt.Sprintf(" snow deflection ratio %.2f > 1.0;", result.SnowDeflectionRatio)
	}
	if !result.TotalDeflectionOK {
		msg += fmt.Sprintf(" total deflection ratio %.2f > 1.0;", result.TotalDeflectionRatio)
	}
	return msg[:len(msg)-1]
}
