package geometry

import (
	"math"

	"github.com/alexiusacademia/govalley/internal/asce"
)

// RoofPlane represents one of the two intersecting gable roof planes.
// It is a value object built once per analysis run and never mutated.
type RoofPlane struct {
	// Name identifies the plane in reports (e.g. "north", "west")
	Name string `json:"name,omitempty"`

	// Pitch is the roof slope as rise per 12 units of run
	Pitch float64 `json:"pitch"`

	// EaveToRidge is the horizontal eave-to-ridge span (ft)
	EaveToRidge float64 `json:"eave_to_ridge"`

	// Fetch is the upwind fetch length lu for drift formation (ft).
	// Values beyond asce.MaxFetchLength are capped, not rejected.
	Fetch float64 `json:"fetch"`

	// SimplySupported reports whether the plane's roof members are
	// simply supported; together with a short span this triggers the
	// narrow-roof drift substitution.
	SimplySupported bool `json:"simply_supported,omitempty"`
}

// SlopeAngle returns the plane's slope angle in degrees.
func (p RoofPlane) SlopeAngle() float64 {
	return math.Atan2(p.Pitch, 12.0) * 180.0 / math.Pi
}

// SlopeRatio returns the slope as a dimensionless rise/run ratio.
func (p RoofPlane) SlopeRatio() float64 {
	return p.Pitch / 12.0
}

// CappedFetch returns the upwind fetch with the 500 ft cap applied.
func (p RoofPlane) CappedFetch() float64 {
	return math.Min(p.Fetch, asce.MaxFetchLength)
}

// Narrow reports whether the narrow-roof drift substitution applies:
// eave-to-ridge span of 20 ft or less on a simply supported member.
func (p RoofPlane) Narrow() bool {
	return p.EaveToRidge <= asce.NarrowRoofSpanLimit && p.SimplySupported
}
