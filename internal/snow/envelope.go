package snow

import "math"

// Envelope combines the drift results of the two intersecting planes
// into the governing valley drift and a surcharge profile along the
// horizontal valley length.
type Envelope struct {
	North DriftResult `json:"north"`
	West  DriftResult `json:"west"`

	// Governing scalars: maxima across the two planes. Width comes
	// from the plane with the larger peak surcharge (tie: north).
	MaxSurcharge float64 `json:"max_surcharge"`
	Height       float64 `json:"height"`
	Width        float64 `json:"width"`

	// ValleyLength is the horizontal valley length lv (ft)
	ValleyLength float64 `json:"valley_length"`

	// PlanAngle is the plan valley angle φ (degrees)
	PlanAngle float64 `json:"plan_angle"`

	bisectorSin float64
}

// ProfilePoint is one sample of the surcharge profile.
type ProfilePoint struct {
	Position  float64 `json:"position"`  // ft from the eave end of the valley
	Surcharge float64 `json:"surcharge"` // psf
}

// NewEnvelope combines the two plane drifts over a valley of horizontal
// length lv with plan angle φ. The governing surcharge and height are
// the maxima across the planes; the governing width belongs to the
// plane with the larger peak surcharge.
func NewEnvelope(north, west DriftResult, lv, planAngleDeg float64) Envelope {
	e := Envelope{
		North:        north,
		West:         west,
		ValleyLength: lv,
		PlanAngle:    planAngleDeg,
		bisectorSin:  math.Sin(planAngleDeg / 2.0 * math.Pi / 180.0),
	}

	e.MaxSurcharge = math.Max(north.MaxSurcharge, west.MaxSurcharge)
	e.Height = math.Max(north.Height, west.Height)
	if north.MaxSurcharge >= west.MaxSurcharge {
		e.Width = north.Width
	} else {
		e.Width = west.Width
	}
	return e
}

// SurchargeAt evaluates the envelope surcharge at plan position x along
// the valley, measured from the eave end. A point at distance (lv − x)
// from the ridge intersection lies at perpendicular distance
// (lv − x)·sin(φ/2) from each plane's ridge; each plane's triangular
// drift tapers linearly over its own width and the pointwise maximum
// governs. The surcharge therefore peaks at the ridge end of the valley.
func (e Envelope) SurchargeAt(x float64) float64 {
	pos := math.Min(math.Max(x, 0), e.ValleyLength)
	dist := (e.ValleyLength - pos) * e.bisectorSin
	return math.Max(e.North.taperAt(dist), e.West.taperAt(dist))
}

// Profile samples the surcharge envelope at n evenly spaced positions
// from the eave end (x=0) to the ridge end (x=lv) inclusive. Fewer than
// two samples are promoted to two.
func (e Envelope) Profile(n int) []ProfilePoint {
	if n < 2 {
		n = 2
	}
	points := make([]ProfilePoint, n)
	step := e.ValleyLength / float64(n-1)
	for i := range points {
		x := float64(i) * step
		points[i] = ProfilePoint{Position: x, Surcharge: e.SurchargeAt(x)}
	}
	return points
}

func (d DriftResult) taperAt(dist float64) float64 {
	if d.MaxSurcharge <= 0 {
		return 0
	}
	if d.Uniform {
		return d.MaxSurcharge
	}
	if d.Width <= 0 {
		return 0
	}
	return d.MaxSurcharge * math.Max(0, 1.0-dist/d.Width)
}
