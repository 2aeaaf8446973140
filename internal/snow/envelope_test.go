package snow

import (
	"math"
	"testing"
)

func TestNewEnvelope_GoverningSelection(t *testing.T) {
	north := DriftResult{Height: 2.0, MaxSurcharge: 40, Width: 10}
	west := DriftResult{Height: 3.0, MaxSurcharge: 30, Width: 14}

	env := NewEnvelope(north, west, 28.28, 90)

	if env.MaxSurcharge != 40 {
		t.Errorf("governing pd,max = %.2f, want 40", env.MaxSurcharge)
	}
	if env.Height != 3.0 {
		t.Errorf("governing hd = %.2f, want 3.0", env.Height)
	}
	// width follows the plane with the larger surcharge
	if env.Width != 10 {
		t.Errorf("governing width = %.2f, want 10 (north)", env.Width)
	}
}

func TestNewEnvelope_WidthTieTakesNorth(t *testing.T) {
	north := DriftResult{MaxSurcharge: 40, Width: 10}
	west := DriftResult{MaxSurcharge: 40, Width: 14}
	env := NewEnvelope(north, west, 20, 90)
	if env.Width != 10 {
		t.Errorf("tie width = %.2f, want north's 10", env.Width)
	}
}

func TestSurchargeAt_PeaksAtRidge(t *testing.T) {
	north := DriftResult{MaxSurcharge: 40, Width: 10}
	west := DriftResult{MaxSurcharge: 30, Width: 14}
	lv := 28.28
	env := NewEnvelope(north, west, lv, 90)

	if got := env.SurchargeAt(lv); math.Abs(got-40) > 1e-9 {
		t.Errorf("surcharge at the ridge end = %.4f, want the peak 40", got)
	}

	// decays moving toward the eave
	prev := env.SurchargeAt(lv)
	for x := lv; x >= 0; x -= lv / 20 {
		got := env.SurchargeAt(x)
		if got > prev+1e-9 {
			t.Fatalf("surcharge increased toward the eave at x=%.2f", x)
		}
		prev = got
	}

	// far enough from the ridge both tapers are exhausted
	if got := env.SurchargeAt(0); got != 0 {
		t.Errorf("surcharge at the eave = %.4f, want 0", got)
	}
}

func TestSurchargeAt_PointwiseMaximum(t *testing.T) {
	// west has the smaller peak but the wider taper, so it governs
	// far from the ridge while north governs near it
	north := DriftResult{MaxSurcharge: 40, Width: 5}
	west := DriftResult{MaxSurcharge: 25, Width: 40}
	lv := 30.0
	env := NewEnvelope(north, west, lv, 90)

	sin45 := math.Sin(45 * math.Pi / 180)

	nearRidge := env.SurchargeAt(lv)
	if math.Abs(nearRidge-40) > 1e-9 {
		t.Errorf("near ridge = %.4f, want north's 40", nearRidge)
	}

	// at 15 ft from the ridge (plan), dist = 15·sin45 ≈ 10.6 ft:
	// north's taper is exhausted, west still contributes
	x := lv - 15
	dist := 15 * sin45
	want := 25 * (1 - dist/40)
	if got := env.SurchargeAt(x); math.Abs(got-want) > 1e-9 {
		t.Errorf("surcharge at x=%.1f = %.4f, want west's %.4f", x, got, want)
	}
}

func TestSurchargeAt_UniformPlane(t *testing.T) {
	north := DriftResult{MaxSurcharge: 30, Width: 18, Uniform: true}
	west := DriftResult{MaxSurcharge: 20, Width: 8}
	env := NewEnvelope(north, west, 25, 90)

	for _, x := range []float64{0, 5, 12.5, 20, 25} {
		if got := env.SurchargeAt(x); got != 30 {
			t.Errorf("uniform surcharge at x=%.1f = %.4f, want 30", x, got)
		}
	}
}

func TestProfile(t *testing.T) {
	north := DriftResult{MaxSurcharge: 40, Width: 10}
	env := NewEnvelope(north, DriftResult{}, 20, 90)

	profile := env.Profile(100)
	if len(profile) != 100 {
		t.Fatalf("profile has %d points, want 100", len(profile))
	}
	if profile[0].Position != 0 {
		t.Errorf("first sample at %.4f, want 0", profile[0].Position)
	}
	if math.Abs(profile[len(profile)-1].Position-20) > 1e-9 {
		t.Errorf("last sample at %.4f, want 20", profile[len(profile)-1].Position)
	}
	for i, p := range profile {
		if got := env.SurchargeAt(p.Position); got != p.Surcharge {
			t.Fatalf("sample %d disagrees with SurchargeAt: %.4f vs %.4f", i, p.Surcharge, got)
		}
	}
}
