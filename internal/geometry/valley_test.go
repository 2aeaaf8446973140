package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestRoofPlane_SlopeAngle(t *testing.T) {
	tests := []struct {
		name  string
		pitch float64
		want  float64
	}{
		{name: "10:12 pitch", pitch: 10, want: 39.8056},
		{name: "12:12 pitch", pitch: 12, want: 45.0},
		{name: "4:12 pitch", pitch: 4, want: 18.4349},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := RoofPlane{Pitch: tt.pitch}
			if got := p.SlopeAngle(); math.Abs(got-tt.want) > 0.001 {
				t.Errorf("SlopeAngle() = %.4f, want %.4f", got, tt.want)
			}
		})
	}
}

func TestResolveValley_RegressionCase(t *testing.T) {
	north := RoofPlane{Pitch: 10, EaveToRidge: 20}
	west := RoofPlane{Pitch: 10, EaveToRidge: 20}
	plan := ValleyPlan{Span: 20, Offset: 20, Angle: 90}

	result, err := ResolveValley(plan, north, west)
	if err != nil {
		t.Fatalf("ResolveValley returned error: %v", err)
	}

	if math.Abs(result.HorizontalLength-20*math.Sqrt2) > 1e-9 {
		t.Errorf("lv = %.4f, want %.4f", result.HorizontalLength, 20*math.Sqrt2)
	}
	// rise = (20·10 + 20·10)/24 = 16.667 ft
	wantL := math.Sqrt(800 + math.Pow(400.0/24.0, 2))
	if math.Abs(result.SlopedLength-wantL) > 1e-9 {
		t.Errorf("L = %.4f, want %.4f", result.SlopedLength, wantL)
	}
	if result.PlanAngle != 90 {
		t.Errorf("φ = %.2f, want 90", result.PlanAngle)
	}
}

// L ≥ lv for every positive combination of inputs.
func TestResolveValley_SlopedNeverShorterThanPlan(t *testing.T) {
	for _, span := range []float64{5, 12, 20, 45} {
		for _, offset := range []float64{1, 10, 20, 60} {
			for _, pitchN := range []float64{1, 4, 8, 12, 18} {
				for _, pitchW := range []float64{1, 6, 12} {
					north := RoofPlane{Pitch: pitchN, EaveToRidge: span}
					west := RoofPlane{Pitch: pitchW, EaveToRidge: offset}
					result, err := ResolveValley(ValleyPlan{Span: span, Offset: offset}, north, west)
					if err != nil {
						t.Fatalf("unexpected error for span=%.0f offset=%.0f: %v", span, offset, err)
					}
					if result.SlopedLength < result.HorizontalLength {
						t.Fatalf("L = %.4f < lv = %.4f (span=%.0f offset=%.0f pitches %.0f/%.0f)",
							result.SlopedLength, result.HorizontalLength, span, offset, pitchN, pitchW)
					}
				}
			}
		}
	}
}

func TestResolveValley_DefaultAngle(t *testing.T) {
	result, err := ResolveValley(ValleyPlan{Span: 10, Offset: 10}, RoofPlane{Pitch: 6, EaveToRidge: 10}, RoofPlane{Pitch: 6, EaveToRidge: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PlanAngle != 90 {
		t.Errorf("default φ = %.2f, want 90", result.PlanAngle)
	}
}

func TestResolveValley_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		plan ValleyPlan
	}{
		{name: "zero plan", plan: ValleyPlan{}},
		{name: "reflex angle", plan: ValleyPlan{Span: 10, Offset: 10, Angle: 200}},
		{name: "negative angle", plan: ValleyPlan{Span: 10, Offset: 10, Angle: -45}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveValley(tt.plan, RoofPlane{Pitch: 6, EaveToRidge: 10}, RoofPlane{Pitch: 6, EaveToRidge: 10})
			var geomErr *GeometryError
			if !errors.As(err, &geomErr) {
				t.Errorf("got %v, want a GeometryError", err)
			}
		})
	}
}

func TestDerivedPlanAngle(t *testing.T) {
	if got := DerivedPlanAngle(20, 20); math.Abs(got-45) > 1e-9 {
		t.Errorf("DerivedPlanAngle(20, 20) = %.4f, want 45", got)
	}
	if got := DerivedPlanAngle(20, 0); math.Abs(got-90) > 1e-9 {
		t.Errorf("DerivedPlanAngle(20, 0) = %.4f, want 90", got)
	}
}
