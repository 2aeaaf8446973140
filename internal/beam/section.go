package beam

// TrialSection represents the rectangular wood section being checked.
// It is user-supplied and typically iterated by the engineer; nothing
// here is derived.
type TrialSection struct {
	// Geometry (in)
	Width float64 `json:"width"` // b
	Depth float64 `json:"depth"` // d

	// Allowable stresses and stiffness (psi)
	Fb float64 `json:"fb"` // allowable bending
	Fv float64 `json:"fv"` // allowable shear
	E  float64 `json:"e"`  // modulus of elasticity

	// Deflection limit denominators: the limit is span/denominator
	SnowDeflectionDenominator  float64 `json:"snow_deflection_denominator"`  // e.g. 360
	TotalDeflectionDenominator float64 `json:"total_deflection_denominator"` // e.g. 240
}

// Area returns the cross-sectional area b·d (in²).
func (s TrialSection) Area() float64 {
	return s.Width * s.Depth
}

// SectionModulus returns S = b·d²/6 (in³).
func (s TrialSection) SectionModulus() float64 {
	return s.Width * s.Depth * s.Depth / 6.0
}

// MomentOfInertia returns I = b·d³/12 (in⁴).
func (s TrialSection) MomentOfInertia() float64 {
	return s.Width * s.Depth * s.Depth * s.Depth / 12.0
}
