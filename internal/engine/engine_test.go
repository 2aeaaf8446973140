package engine

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/govalley/internal/beam"
	"github.com/alexiusacademia/govalley/internal/geometry"
)

// regressionInput is the hand-verifiable scenario: pg = 50 psf, cold
// roof, symmetric 10:12 planes with 20 ft spans meeting over a 20x20
// plan, checked against a 5.125x11.875 glulam.
func regressionInput() Input {
	return Input{
		Site: Site{
			GroundSnowLoad:      50,
			ExposureFactor:      1.0,
			ThermalFactor:       1.2,
			ImportanceFactor:    1.0,
			WinterWindParameter: 0.5,
		},
		North: geometry.RoofPlane{Name: "north", Pitch: 10, EaveToRidge: 20, Fetch: 50, SimplySupported: true},
		West:  geometry.RoofPlane{Name: "west", Pitch: 10, EaveToRidge: 20, Fetch: 50, SimplySupported: true},
		Plan:  geometry.ValleyPlan{Span: 20, Offset: 20, Angle: 90},
		JackSpacing: 24,
		DeadLoad:    15,
		Section: beam.TrialSection{
			Width:                      5.125,
			Depth:                      11.875,
			Fb:                         2400,
			Fv:                         265,
			E:                          1800000,
			SnowDeflectionDenominator:  360,
			TotalDeflectionDenominator: 240,
		},
	}
}

func TestAnalyze_RegressionScenario(t *testing.T) {
	result, err := Analyze(regressionInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(result.FlatRoofLoad-42.0) > 1e-9 {
		t.Errorf("pf = %.4f, want 42.0", result.FlatRoofLoad)
	}
	if math.Abs(result.SnowDensity-20.5) > 1e-9 {
		t.Errorf("γ = %.4f, want 20.5", result.SnowDensity)
	}
	if math.Abs(result.North.SlopeAngle-39.8056) > 0.001 {
		t.Errorf("θ = %.4f, want 39.8056", result.North.SlopeAngle)
	}

	// 39.8° sits just past the cold non-slippery breakpoint of 37.76°
	if result.North.SlopeFactor >= 1.0 || result.North.SlopeFactor < 0.9 {
		t.Errorf("Cs = %.4f, want slightly below 1.0", result.North.SlopeFactor)
	}
	wantPs := 42.0 * result.North.SlopeFactor
	if math.Abs(result.North.BalancedLoad-wantPs) > 1e-9 {
		t.Errorf("ps = %.4f, want %.4f", result.North.BalancedLoad, wantPs)
	}

	// symmetric planes: the governing load is the common ps, and the
	// slope is too steep for the low-slope minimum
	if result.GoverningBalanced != result.North.BalancedLoad {
		t.Errorf("governing = %.4f, want %.4f", result.GoverningBalanced, result.North.BalancedLoad)
	}
	if result.MinimumApplied {
		t.Error("low-slope minimum applied to a 39.8° roof")
	}

	// 20 ft simply supported planes trigger the narrow-roof drift
	if !result.North.Drift.Uniform {
		t.Error("narrow-roof substitution not applied")
	}
	if result.Drift.MaxSurcharge != 50 {
		t.Errorf("governing drift surcharge = %.2f, want the ground load 50", result.Drift.MaxSurcharge)
	}

	if math.Abs(result.Geometry.HorizontalLength-20*math.Sqrt2) > 1e-9 {
		t.Errorf("lv = %.4f, want %.4f", result.Geometry.HorizontalLength, 20*math.Sqrt2)
	}
	if result.Geometry.SlopedLength < result.Geometry.HorizontalLength {
		t.Error("sloped length shorter than plan length")
	}

	if len(result.SnowLoads) == 0 || len(result.DeadLoads) == 0 {
		t.Fatal("no point loads produced")
	}
	if result.Beam.MaxMoment <= 0 {
		t.Error("beam envelope not computed")
	}
	if result.Beam.ReactionEave <= 0 || result.Beam.ReactionRidge <= 0 {
		t.Error("reactions not computed")
	}
}

func TestAnalyze_PerPlaneBalancedFlag(t *testing.T) {
	in := regressionInput()
	in.West.Pitch = 6 // shallower plane: larger Cs, larger ps

	governing, err := Analyze(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in.UsePerPlaneBalanced = true
	perPlane, err := Analyze(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if perPlane.West.BalancedLoad <= governing.GoverningBalanced {
		t.Fatalf("test setup broken: west ps %.2f should exceed governing %.2f",
			perPlane.West.BalancedLoad, governing.GoverningBalanced)
	}

	// with the west plane loaded by its own larger ps, the total snow
	// on the beam must increase
	if perPlane.Beam.TotalSnowLoad <= governing.Beam.TotalSnowLoad {
		t.Errorf("per-plane balanced load did not increase the beam snow: %.1f vs %.1f",
			perPlane.Beam.TotalSnowLoad, governing.Beam.TotalSnowLoad)
	}
}

func TestAnalyze_LowSlopeMinimum(t *testing.T) {
	in := regressionInput()
	in.North.Pitch = 2 // 9.46°, below the 15° limit
	in.West.Pitch = 2
	in.Site.GroundSnowLoad = 10
	in.Site.ThermalFactor = 1.0

	result, err := Analyze(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// pf = 0.7·10 = 7 psf with Cs = 1, so pm = Is·pg = 10 governs
	if !result.MinimumApplied {
		t.Fatal("low-slope minimum not applied")
	}
	if result.GoverningBalanced != 10 {
		t.Errorf("governing = %.2f, want pm = 10", result.GoverningBalanced)
	}
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	in := regressionInput()
	in.Site.GroundSnowLoad = -5
	in.Site.ExposureFactor = 2.5
	in.North.Pitch = 0
	in.Section.Depth = 0

	err := in.Validate()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("got %v, want a ValidationError", err)
	}
	if len(vErr.Violations) != 4 {
		t.Errorf("collected %d violations, want 4: %v", len(vErr.Violations), vErr.Violations)
	}
}

func TestValidate_AcceptsGoodInput(t *testing.T) {
	if err := regressionInput().Validate(); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}
}

func TestAnalyze_NoPartialResultOnError(t *testing.T) {
	in := regressionInput()
	in.Section.E = 0

	result, err := Analyze(in)
	if err == nil {
		t.Fatal("expected an error for E = 0")
	}
	if result != nil {
		t.Error("partial result returned alongside the error")
	}
}

func TestLoadFromFile_RoundTrip(t *testing.T) {
	in := regressionInput()
	path := filepath.Join(t.TempDir(), "valley.json")

	if err := in.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}
	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if *loaded != in {
		t.Errorf("round trip changed the input:\n got %+v\nwant %+v", *loaded, in)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
