package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/govalley/internal/beam"
	"github.com/alexiusacademia/govalley/internal/geometry"
)

// Site holds the site snow parameters per ASCE 7-22 Chapter 7. The set
// is immutable for one analysis run.
type Site struct {
	GroundSnowLoad      float64 `json:"ground_snow_load"`     // pg (psf)
	ExposureFactor      float64 `json:"exposure_factor"`      // Ce
	ThermalFactor       float64 `json:"thermal_factor"`       // Ct
	ImportanceFactor    float64 `json:"importance_factor"`    // Is
	WinterWindParameter float64 `json:"winter_wind_parameter"` // W2
	SlipperySurface     bool    `json:"slippery_surface,omitempty"`
	Heated              bool    `json:"heated,omitempty"`
}

// Input is the complete input record for one valley beam analysis.
// Every field is a plain serializable value; the engine owns no
// ambient state.
type Input struct {
	Site  Site               `json:"site"`
	North geometry.RoofPlane `json:"north"`
	West  geometry.RoofPlane `json:"west"`
	Plan  geometry.ValleyPlan `json:"plan"`

	// JackSpacing is the jack rafter spacing (in, on center)
	JackSpacing float64 `json:"jack_spacing"`

	// DeadLoad is the roof dead load on the horizontal projection (psf)
	DeadLoad float64 `json:"dead_load"`

	Section beam.TrialSection `json:"section"`

	// UsePerPlaneBalanced applies each plane's own balanced load ps to
	// its jacks instead of the governing (minimum) value across both
	// planes. Default false keeps the governing-value behavior.
	UsePerPlaneBalanced bool `json:"use_per_plane_balanced,omitempty"`
}

// ValidationError collects every input violation found; validation
// never stops at the first bad field so a front end can flag them all
// at once.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Violations, "; "))
}

// Published code table ranges for the site factors. Values outside
// these are physically meaningless or a data-entry mistake.
const (
	minExposureFactor   = 0.7
	maxExposureFactor   = 1.3
	minThermalFactor    = 0.85
	maxThermalFactor    = 1.3
	minImportanceFactor = 0.8
	maxImportanceFactor = 1.2
)

// Validate checks every input against its physically meaningful domain
// and returns a ValidationError carrying all violations, or nil.
func (in Input) Validate() error {
	var v []string
	add := func(format string, args ...any) {
		v = append(v, fmt.Sprintf(format, args...))
	}

	if in.Site.GroundSnowLoad < 0 {
		add("ground snow load must be >= 0 psf: got %.2f", in.Site.GroundSnowLoad)
	}
	if in.Site.ExposureFactor < minExposureFactor || in.Site.ExposureFactor > maxExposureFactor {
		add("exposure factor Ce must be within [%.2f, %.2f]: got %.2f", minExposureFactor, maxExposureFactor, in.Site.ExposureFactor)
	}
	if in.Site.ThermalFactor < minThermalFactor || in.Site.ThermalFactor > maxThermalFactor {
		add("thermal factor Ct must be within [%.2f, %.2f]: got %.2f", minThermalFactor, maxThermalFactor, in.Site.ThermalFactor)
	}
	if in.Site.ImportanceFactor < minImportanceFactor || in.Site.ImportanceFactor > maxImportanceFactor {
		add("importance factor Is must be within [%.2f, %.2f]: got %.2f", minImportanceFactor, maxImportanceFactor, in.Site.ImportanceFactor)
	}
	if in.Site.WinterWindParameter < 0 || in.Site.WinterWindParameter > 1 {
		add("winter wind parameter W2 must be within [0, 1]: got %.2f", in.Site.WinterWindParameter)
	}

	for _, plane := range []struct {
		label string
		p     geometry.RoofPlane
	}{{"north", in.North}, {"west", in.West}} {
		if plane.p.Pitch <= 0 {
			add("%s plane pitch must be positive: got %.2f", plane.label, plane.p.Pitch)
		}
		if plane.p.EaveToRidge <= 0 {
			add("%s plane eave-to-ridge span must be positive: got %.2f ft", plane.label, plane.p.EaveToRidge)
		}
		if plane.p.Fetch < 0 {
			add("%s plane upwind fetch must be >= 0 ft: got %.2f", plane.label, plane.p.Fetch)
		}
	}

	if in.Plan.Span <= 0 {
		add("plan span must be positive: got %.2f ft", in.Plan.Span)
	}
	if in.Plan.Offset < 0 {
		add("plan offset must be >= 0 ft: got %.2f", in.Plan.Offset)
	}
	if in.Plan.Angle != 0 && (in.Plan.Angle <= 0 || in.Plan.Angle >= 180) {
		add("plan valley angle must be within (0°, 180°): got %.2f°", in.Plan.Angle)
	}

	if in.JackSpacing <= 0 {
		add("jack spacing must be positive: got %.2f in", in.JackSpacing)
	}
	if in.DeadLoad < 0 {
		add("dead load must be >= 0 psf: got %.2f", in.DeadLoad)
	}

	if in.Section.Width <= 0 {
		add("section width must be positive: got %.2f in", in.Section.Width)
	}
	if in.Section.Depth <= 0 {
		add("section depth must be positive: got %.2f in", in.Section.Depth)
	}
	if in.Section.Fb <= 0 {
		add("allowable bending stress Fb must be positive: got %.2f psi", in.Section.Fb)
	}
	if in.Section.Fv <= 0 {
		add("allowable shear stress Fv must be positive: got %.2f psi", in.Section.Fv)
	}
	if in.Section.E <= 0 {
		add("modulus of elasticity E must be positive: got %.2f psi", in.Section.E)
	}
	if in.Section.SnowDeflectionDenominator <= 0 {
		add("snow deflection denominator must be positive: got %.2f", in.Section.SnowDeflectionDenominator)
	}
	if in.Section.TotalDeflectionDenominator <= 0 {
		add("total deflection denominator must be positive: got %.2f", in.Section.TotalDeflectionDenominator)
	}

	if len(v) > 0 {
		return &ValidationError{Violations: v}
	}
	return nil
}

// LoadFromFile loads an analysis input from a JSON project file.
func LoadFromFile(filename string) (*Input, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &in, nil
}

// SaveToFile writes the input as an indented JSON project file.
func (in Input) SaveToFile(filename string) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}
