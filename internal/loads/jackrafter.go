package loads

import (
	"math"
	"sort"

	"github.com/alexiusacademia/govalley/internal/geometry"
	"github.com/alexiusacademia/govalley/internal/snow"
)

// PointLoad is a discrete load on the valley beam.
type PointLoad struct {
	Position  float64 `json:"position"`  // ft from the eave support
	Magnitude float64 `json:"magnitude"` // lb
}

// PlaneLoading pairs a roof plane with the balanced snow load applied
// to it. The balanced load may be the plane's own ps or the governing
// value across both planes, per the caller's design decision.
type PlaneLoading struct {
	Plane        geometry.RoofPlane
	BalancedLoad float64 // psf on the horizontal projection
}

// Series carries the two parallel point-load sets. Snow and dead loads
// stay separate until the ASD combination because the 0.7 snow factor
// applies to the stress checks but not to the snow-only deflection
// check. Both slices are sorted by strictly increasing position.
type Series struct {
	Snow []PointLoad `json:"snow"`
	Dead []PointLoad `json:"dead"`
}

// jack positions from the two planes are merged when they coincide
// within this fraction of the valley length
const mergeTolerance = 1e-9

// JackRafterLoads discretizes the distributed roof loads into one point
// load per jack rafter on the valley beam.
//
// Jacks are placed along each plane at the given spacing; the jack at
// the building corner carries the full eave-to-ridge length and jacks
// shorten linearly toward the ridge intersection. Each jack's tributary
// area is its horizontal length times the spacing; half of its total
// load reacts onto the valley beam at the jack's plan position along
// the valley. Jacks from the two planes at matching positions are
// summed into a single point load.
func JackRafterLoads(north, west PlaneLoading, env snow.Envelope, spacingInches, deadPSF float64) (*Series, error) {
	spacing := spacingInches / 12.0
	if spacing <= 0 {
		return nil, geometry.NewGeometryError("jack spacing must be positive: got %.2f in", spacingInches)
	}
	lv := env.ValleyLength
	if lv <= 0 {
		return nil, geometry.NewGeometryError("valley length must be positive: got %.2f ft", lv)
	}

	var entries []jackEntry
	for _, loading := range []PlaneLoading{north, west} {
		planeEntries, err := planeJacks(loading, env, spacing, deadPSF)
		if err != nil {
			return nil, err
		}
		entries = append(entries, planeEntries...)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].position < entries[j].position })

	series := &Series{}
	tol := mergeTolerance * lv
	for _, e := range entries {
		last := len(series.Snow) - 1
		if last >= 0 && e.position-series.Snow[last].Position <= tol {
			series.Snow[last].Magnitude += e.snow
			series.Dead[last].Magnitude += e.dead
			continue
		}
		series.Snow = append(series.Snow, PointLoad{Position: e.position, Magnitude: e.snow})
		series.Dead = append(series.Dead, PointLoad{Position: e.position, Magnitude: e.dead})
	}

	return series, nil
}

type jackEntry struct {
	position   float64
	snow, dead float64
}

func planeJacks(loading PlaneLoading, env snow.Envelope, spacing, deadPSF float64) ([]jackEntry, error) {
	span := loading.Plane.EaveToRidge
	if span <= 0 {
		return nil, geometry.NewGeometryError("plane %q has no eave-to-ridge span to place jacks on", loading.Plane.Name)
	}

	count := int(math.Floor(span/spacing)) + 1
	entries := make([]jackEntry, 0, count)
	for j := 0; j < count; j++ {
		frac := float64(j) * spacing / span
		if frac > 1 {
			frac = 1
		}
		horizLength := span * (1 - frac)
		if horizLength <= 0 {
			continue
		}

		position := frac * env.ValleyLength
		area := horizLength * spacing

		balanced := loading.BalancedLoad * area
		drift := env.SurchargeAt(position) * area
		dead := deadPSF * area

		// simply supported jack: half the load reacts on the valley beam
		entries = append(entries, jackEntry{
			position: position,
			snow:     (balanced + drift) / 2.0,
			dead:     dead / 2.0,
		})
	}
	return entries, nil
}

// Total sums the magnitudes of a point-load series.
func Total(series []PointLoad) float64 {
	var sum float64
	for _, p := range series {
		sum += p.Magnitude
	}
	return sum
}
