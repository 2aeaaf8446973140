package snow

import (
	"math"
	"testing"

	"github.com/alexiusacademia/govalley/internal/geometry"
)

func plane(pitch, span, fetch float64) geometry.RoofPlane {
	return geometry.RoofPlane{Pitch: pitch, EaveToRidge: span, Fetch: fetch}
}

func TestGableDrift_KnownCase(t *testing.T) {
	// pg=25, lu=100, W2=1, 6:12 plane:
	// γ = 17.25, hd = 1.5·√(25^0.74·100^0.70/17.25) ≈ 5.96 ft
	// S = 2, pd = 2·hd·γ/√2, w = 8·hd·√2/3
	result := GableDrift(25, 1.0, plane(6, 30, 100))

	if math.Abs(result.Density-17.25) > 1e-9 {
		t.Errorf("density = %.4f, want 17.25", result.Density)
	}
	if math.Abs(result.Height-5.96) > 0.011 {
		t.Errorf("drift height = %.4f, want ≈5.96", result.Height)
	}
	wantPd := 2 * result.Height * result.Density / math.Sqrt2
	if math.Abs(result.MaxSurcharge-wantPd) > 1e-9 {
		t.Errorf("pd,max = %.4f, want %.4f", result.MaxSurcharge, wantPd)
	}
	wantWidth := 8 * result.Height * math.Sqrt2 / 3
	if math.Abs(result.Width-wantWidth) > 1e-9 {
		t.Errorf("width = %.4f, want %.4f", result.Width, wantWidth)
	}
	if result.Uniform {
		t.Error("triangular drift flagged as uniform")
	}
}

// Slopes outside [0.5:12, 7:12] never produce a drift, whatever the
// other inputs are.
func TestGableDrift_SlopeGate(t *testing.T) {
	pitches := []float64{0.1, 0.25, 0.49, 7.01, 9, 12, 18}
	for _, pitch := range pitches {
		for _, pg := range []float64{10, 50, 100} {
			result := GableDrift(pg, 1.0, plane(pitch, 40, 300))
			if result.Height != 0 || result.MaxSurcharge != 0 || result.Width != 0 {
				t.Fatalf("pitch %.2f, pg %.0f: drift = %+v, want zero", pitch, pg, result)
			}
		}
	}
}

func TestGableDrift_ZeroInputs(t *testing.T) {
	tests := []struct {
		name   string
		pg, lu float64
	}{
		{name: "zero ground load", pg: 0, lu: 100},
		{name: "negative ground load", pg: -5, lu: 100},
		{name: "zero fetch", pg: 30, lu: 0},
		{name: "negative fetch", pg: 30, lu: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GableDrift(tt.pg, 0.6, plane(6, 30, tt.lu))
			if result.Height != 0 || result.MaxSurcharge != 0 || result.Width != 0 {
				t.Errorf("drift = %+v, want zero", result)
			}
		})
	}
}

func TestGableDrift_FetchCap(t *testing.T) {
	capped := GableDrift(30, 0.6, plane(6, 30, 500))
	beyond := GableDrift(30, 0.6, plane(6, 30, 2000))
	if capped.Height != beyond.Height {
		t.Errorf("fetch beyond 500 ft changed hd: %.4f vs %.4f", capped.Height, beyond.Height)
	}
}

func TestGableDrift_NarrowRoofSubstitution(t *testing.T) {
	p := geometry.RoofPlane{Pitch: 6, EaveToRidge: 18, Fetch: 100, SimplySupported: true}
	result := GableDrift(30, 0.6, p)

	if !result.Uniform {
		t.Fatal("narrow simply supported plane did not trigger the substitution")
	}
	if result.MaxSurcharge != 30 {
		t.Errorf("surcharge = %.2f, want the full ground load 30", result.MaxSurcharge)
	}

	// not simply supported: ordinary triangular drift
	p.SimplySupported = false
	result = GableDrift(30, 0.6, p)
	if result.Uniform {
		t.Error("continuous member must not trigger the narrow-roof case")
	}
}
