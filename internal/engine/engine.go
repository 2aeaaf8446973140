// Package engine ties the snow-load, geometry, discretization and beam
// packages into the single analysis entry point. It is pure and
// synchronous: well-formed input produces a complete result, malformed
// input produces a typed error, and nothing in between.
package engine

import (
	"math"

	"github.com/alexiusacademia/govalley/internal/asce"
	"github.com/alexiusacademia/govalley/internal/beam"
	"github.com/alexiusacademia/govalley/internal/geometry"
	"github.com/alexiusacademia/govalley/internal/loads"
	"github.com/alexiusacademia/govalley/internal/snow"
)

// PlaneResult exposes the per-plane intermediate values used in the
// governing-load selection.
type PlaneResult struct {
	SlopeAngle   float64          `json:"slope_angle"`  // degrees
	SlopeFactor  float64          `json:"slope_factor"` // Cs
	BalancedLoad float64          `json:"balanced_load"` // ps (psf)
	Drift        snow.DriftResult `json:"drift"`
}

// Result is the full analysis output. Every intermediate quantity that
// feeds the final pass/fail decision is carried, since the report's
// value is showing the governing-check arithmetic.
type Result struct {
	SnowDensity  float64 `json:"snow_density"`   // γ (pcf)
	FlatRoofLoad float64 `json:"flat_roof_load"` // pf (psf)

	North PlaneResult `json:"north"`
	West  PlaneResult `json:"west"`

	// GoverningBalanced is the balanced load used for the valley design
	// (the minimum ps across planes, raised to the low-slope minimum
	// when that applies)
	GoverningBalanced float64 `json:"governing_balanced"`
	MinimumLoad       float64 `json:"minimum_load,omitempty"` // pm (psf)
	MinimumApplied    bool    `json:"minimum_applied,omitempty"`

	Drift    snow.Envelope          `json:"drift"`
	Geometry geometry.ValleyResult  `json:"geometry"`

	SnowLoads []loads.PointLoad `json:"snow_loads"`
	DeadLoads []loads.PointLoad `json:"dead_loads"`

	Beam beam.DesignResult `json:"beam"`
}

// Analyze runs the complete pipeline: validation, balanced loads per
// plane, gable drifts, the valley drift envelope, valley geometry,
// jack-rafter discretization and the beam design checks. Any
// ValidationError, GeometryError or CalculationError is terminal; no
// partial result is ever returned.
func Analyze(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		SnowDensity:  asce.SnowDensity(in.Site.GroundSnowLoad),
		FlatRoofLoad: asce.FlatRoofLoad(in.Site.GroundSnowLoad, in.Site.ExposureFactor, in.Site.ThermalFactor, in.Site.ImportanceFactor),
	}

	result.North = planeResult(in, in.North)
	result.West = planeResult(in, in.West)

	// The lower-capacity plane governs the valley design load
	result.GoverningBalanced = math.Min(result.North.BalancedLoad, result.West.BalancedLoad)

	// Low-slope minimum: roofs at 15° or steeper never apply pm
	if math.Min(result.North.SlopeAngle, result.West.SlopeAngle) < asce.MinimumLoadSlopeLimit {
		result.MinimumLoad = asce.MinimumRoofLoad(in.Site.GroundSnowLoad, in.Site.ImportanceFactor)
		if result.MinimumLoad > result.GoverningBalanced {
			result.GoverningBalanced = result.MinimumLoad
			result.MinimumApplied = true
		}
	}

	valley, err := geometry.ResolveValley(in.Plan, in.North, in.West)
	if err != nil {
		return nil, err
	}
	result.Geometry = *valley

	result.Drift = snow.NewEnvelope(result.North.Drift, result.West.Drift, valley.HorizontalLength, valley.PlanAngle)

	northBalanced, westBalanced := result.GoverningBalanced, result.GoverningBalanced
	if in.UsePerPlaneBalanced {
		northBalanced = result.North.BalancedLoad
		westBalanced = result.West.BalancedLoad
	}

	series, err := loads.JackRafterLoads(
		loads.PlaneLoading{Plane: in.North, BalancedLoad: northBalanced},
		loads.PlaneLoading{Plane: in.West, BalancedLoad: westBalanced},
		result.Drift,
		in.JackSpacing,
		in.DeadLoad,
	)
	if err != nil {
		return nil, err
	}
	result.SnowLoads = series.Snow
	result.DeadLoads = series.Dead

	design, err := beam.Analyze(series.Snow, series.Dead, valley.HorizontalLength, valley.SlopedLength, in.Section)
	if err != nil {
		return nil, err
	}
	result.Beam = *design

	return result, nil
}

func planeResult(in Input, plane geometry.RoofPlane) PlaneResult {
	theta := plane.SlopeAngle()
	cs := asce.SlopeFactor(theta, in.Site.ThermalFactor, in.Site.SlipperySurface)
	pf := asce.FlatRoofLoad(in.Site.GroundSnowLoad, in.Site.ExposureFactor, in.Site.ThermalFactor, in.Site.ImportanceFactor)

	return PlaneResult{
		SlopeAngle:   theta,
		SlopeFactor:  cs,
		BalancedLoad: asce.SlopedRoofLoad(pf, cs),
		Drift:        snow.GableDrift(in.Site.GroundSnowLoad, in.Site.WinterWindParameter, plane),
	}
}
