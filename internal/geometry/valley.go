package geometry

import (
	"fmt"
	"math"
)

// ValleyPlan holds the plan (horizontal) parameterization of the valley.
// The canonical convention is span-and-offset; the plan valley angle is
// the angle subtended at the building corner and defaults to 90° for a
// rectangular plan. Supplying Angle directly supports the legacy
// angle-based input convention.
type ValleyPlan struct {
	// Span is the building span crossed by the valley line (ft)
	Span float64 `json:"span"`

	// Offset is the plan offset of the valley intersection (ft)
	Offset float64 `json:"offset"`

	// Angle is the plan valley angle φ in degrees; 0 means "use 90°"
	Angle float64 `json:"angle,omitempty"`
}

// ValleyResult holds the resolved valley geometry.
type ValleyResult struct {
	// HorizontalLength is the plan projection lv of the valley line (ft)
	HorizontalLength float64 `json:"horizontal_length"`

	// SlopedLength is the valley rafter length L along the slope (ft).
	// Always ≥ HorizontalLength.
	SlopedLength float64 `json:"sloped_length"`

	// PlanAngle is the plan valley angle φ (degrees)
	PlanAngle float64 `json:"plan_angle"`
}

// GeometryError reports derived geometry that is degenerate even though
// each input is individually plausible (zero-length valley, zero jack
// count and the like).
type GeometryError struct {
	msg string
}

func (e *GeometryError) Error() string {
	return e.msg
}

// NewGeometryError builds a GeometryError with a formatted message.
func NewGeometryError(format string, args ...any) *GeometryError {
	return &GeometryError{msg: fmt.Sprintf(format, args...)}
}

// ResolveValley resolves the plan inputs and the two roof planes into
// the valley geometry used by every downstream calculation.
//
// lv = √(span² + offset²). The rafter sloped length uses a rise term
// averaged across the two plane pitches:
//
//	L = √(lv² + ((deN·pitchN + deW·pitchW)/24)²)
//
// which is exact for symmetric pitches and an accepted approximation
// when they diverge; true 3D line-plane intersection is not attempted.
func ResolveValley(plan ValleyPlan, north, west RoofPlane) (*ValleyResult, error) {
	lv := math.Hypot(plan.Span, plan.Offset)
	if lv <= 0 {
		return nil, NewGeometryError("valley has zero plan length: span=%.2f, offset=%.2f", plan.Span, plan.Offset)
	}

	rise := (north.EaveToRidge*north.Pitch + west.EaveToRidge*west.Pitch) / 24.0
	slopedLength := math.Sqrt(lv*lv + rise*rise)

	angle := plan.Angle
	if angle == 0 {
		angle = 90.0
	}
	if angle <= 0 || angle >= 180 {
		return nil, NewGeometryError("plan valley angle must be within (0°, 180°): got %.2f°", angle)
	}

	return &ValleyResult{
		HorizontalLength: lv,
		SlopedLength:     slopedLength,
		PlanAngle:        angle,
	}, nil
}

// DerivedPlanAngle returns the valley-line angle implied by the plan
// span and offset, atan(span/offset) in degrees. This is the legacy
// derived convention; ResolveValley itself uses the subtended corner
// angle.
func DerivedPlanAngle(span, offset float64) float64 {
	return math.Atan2(span, offset) * 180.0 / math.Pi
}
