package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/govalley/internal/beam"
	"github.com/alexiusacademia/govalley/internal/diagram"
	"github.com/alexiusacademia/govalley/internal/engine"
	"github.com/alexiusacademia/govalley/internal/geometry"
	"github.com/spf13/cobra"
)

var (
	// Project file input
	analyzeFile string

	// Site flags
	analyzeGroundLoad float64
	analyzeExposure   float64
	analyzeThermal    float64
	analyzeImportance float64
	analyzeWind       float64
	analyzeSlippery   bool

	// Roof flags
	analyzePitchNorth float64
	analyzePitchWest  float64
	analyzeSpanNorth  float64
	analyzeSpanWest   float64
	analyzeFetchNorth float64
	analyzeFetchWest  float64
	analyzeSimple     bool

	// Plan flags
	analyzePlanSpan   float64
	analyzePlanOffset float64
	analyzePlanAngle  float64

	// Loading flags
	analyzeSpacing  float64
	analyzeDeadLoad float64
	analyzePerPlane bool

	// Section flags
	analyzeWidth      float64
	analyzeDepth      float64
	analyzeFb         float64
	analyzeFv         float64
	analyzeE          float64
	analyzeSnowDenom  float64
	analyzeTotalDenom float64

	// Output options
	analyzeShowLoads   bool
	analyzeShowDiagram bool
	analyzeExportFile  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full valley beam snow load analysis",
	Long: `Run the complete pipeline: balanced snow loads on both roof planes,
gable drifts and the valley drift envelope, jack rafter point loads,
and the valley beam ASD checks (bending, shear and two deflection
limits) against a trial section.

Inputs come from flags or from a JSON project file (--file). The
report shows every intermediate quantity used in the governing checks.

Examples:
  # Symmetric 10:12 valley, pg = 50 psf, 5.125x11.875 glulam
  govalley analyze --pg 50 --ct 1.2 --pitch-north 10 --span-north 20 \
    --span-west 20 --lu-north 50 --lu-west 50 --plan-span 20 \
    --plan-offset 20 --spacing 24 --dead 15 \
    --width 5.125 --depth 11.875 --fb 2400 --fv 265 --e 1800000

  # From a project file, with diagrams
  govalley analyze --file valley.json --diagram -o diagrams.png`,
	Run: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to project JSON file (overrides other input flags)")

	// Site
	analyzeCmd.Flags().Float64Var(&analyzeGroundLoad, "pg", 0, "Ground snow load pg (psf)")
	analyzeCmd.Flags().Float64Var(&analyzeExposure, "ce", 1.0, "Exposure factor Ce")
	analyzeCmd.Flags().Float64Var(&analyzeThermal, "ct", 1.0, "Thermal factor Ct")
	analyzeCmd.Flags().Float64Var(&analyzeImportance, "is", 1.0, "Importance factor Is")
	analyzeCmd.Flags().Float64Var(&analyzeWind, "w2", 0.5, "Winter wind parameter W2")
	analyzeCmd.Flags().BoolVar(&analyzeSlippery, "slippery", false, "Slippery roof surface")

	// Roof planes
	analyzeCmd.Flags().Float64Var(&analyzePitchNorth, "pitch-north", 0, "North plane pitch (rise per 12)")
	analyzeCmd.Flags().Float64Var(&analyzePitchWest, "pitch-west", 0, "West plane pitch, defaults to north pitch")
	analyzeCmd.Flags().Float64Var(&analyzeSpanNorth, "span-north", 0, "North plane eave-to-ridge span (ft)")
	analyzeCmd.Flags().Float64Var(&analyzeSpanWest, "span-west", 0, "West plane eave-to-ridge span (ft)")
	analyzeCmd.Flags().Float64Var(&analyzeFetchNorth, "lu-north", 0, "North plane upwind fetch (ft)")
	analyzeCmd.Flags().Float64Var(&analyzeFetchWest, "lu-west", 0, "West plane upwind fetch (ft)")
	analyzeCmd.Flags().BoolVar(&analyzeSimple, "simple", true, "Roof members are simply supported")

	// Plan
	analyzeCmd.Flags().Float64Var(&analyzePlanSpan, "plan-span", 0, "Plan span crossed by the valley (ft)")
	analyzeCmd.Flags().Float64Var(&analyzePlanOffset, "plan-offset", 0, "Plan offset of the valley intersection (ft)")
	analyzeCmd.Flags().Float64Var(&analyzePlanAngle, "plan-angle", 0, "Plan valley angle (deg), 0 = 90°")

	// Loading
	analyzeCmd.Flags().Float64Var(&analyzeSpacing, "spacing", 24, "Jack rafter spacing (in o.c.)")
	analyzeCmd.Flags().Float64Var(&analyzeDeadLoad, "dead", 15, "Roof dead load (psf, horizontal projection)")
	analyzeCmd.Flags().BoolVar(&analyzePerPlane, "per-plane-balanced", false, "Apply each plane's own ps instead of the governing value")

	// Section
	analyzeCmd.Flags().Float64VarP(&analyzeWidth, "width", "b", 0, "Beam width (in)")
	analyzeCmd.Flags().Float64VarP(&analyzeDepth, "depth", "d", 0, "Beam depth (in)")
	analyzeCmd.Flags().Float64Var(&analyzeFb, "fb", 2400, "Allowable bending stress Fb (psi)")
	analyzeCmd.Flags().Float64Var(&analyzeFv, "fv", 265, "Allowable shear stress Fv (psi)")
	analyzeCmd.Flags().Float64Var(&analyzeE, "e", 1800000, "Modulus of elasticity E (psi)")
	analyzeCmd.Flags().Float64Var(&analyzeSnowDenom, "defl-snow", 360, "Snow deflection limit denominator (span/n)")
	analyzeCmd.Flags().Float64Var(&analyzeTotalDenom, "defl-total", 240, "Total deflection limit denominator (span/n)")

	// Output
	analyzeCmd.Flags().BoolVar(&analyzeShowLoads, "loads", false, "Print the jack rafter point load table")
	analyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII shear and moment diagrams")
	analyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export shear/moment diagrams to file (png, svg, pdf)")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	var in *engine.Input
	if analyzeFile != "" {
		loaded, err := engine.LoadFromFile(analyzeFile)
		if err != nil {
			fmt.Printf("Error loading project: %v\n", err)
			return
		}
		in = loaded
	} else {
		in = inputFromFlags()
	}

	result, err := engine.Analyze(*in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printAnalysisReport(in, result)

	if analyzeShowLoads {
		printPointLoadTable(result)
	}

	data := beamDiagramData(result)
	if analyzeShowDiagram {
		fmt.Println(diagram.DrawASCIILoadingDiagram(data))
		fmt.Println(diagram.DrawASCIIShearDiagram(data))
		fmt.Println(diagram.DrawASCIIMomentDiagram(data))
	}
	if analyzeExportFile != "" {
		if err := diagram.ExportBeamDiagrams(data, analyzeExportFile); err != nil {
			fmt.Printf("Error exporting diagrams: %v\n", err)
		} else {
			fmt.Printf("Diagrams exported to: %s\n", analyzeExportFile)
		}
	}
}

func inputFromFlags() *engine.Input {
	pitchWest := analyzePitchWest
	if pitchWest == 0 {
		pitchWest = analyzePitchNorth
	}
	return &engine.Input{
		Site: engine.Site{
			GroundSnowLoad:      analyzeGroundLoad,
			ExposureFactor:      analyzeExposure,
			ThermalFactor:       analyzeThermal,
			ImportanceFactor:    analyzeImportance,
			WinterWindParameter: analyzeWind,
			SlipperySurface:     analyzeSlippery,
		},
		North: geometry.RoofPlane{
			Name:            "north",
			Pitch:           analyzePitchNorth,
			EaveToRidge:     analyzeSpanNorth,
			Fetch:           analyzeFetchNorth,
			SimplySupported: analyzeSimple,
		},
		West: geometry.RoofPlane{
			Name:            "west",
			Pitch:           pitchWest,
			EaveToRidge:     analyzeSpanWest,
			Fetch:           analyzeFetchWest,
			SimplySupported: analyzeSimple,
		},
		Plan: geometry.ValleyPlan{
			Span:   analyzePlanSpan,
			Offset: analyzePlanOffset,
			Angle:  analyzePlanAngle,
		},
		JackSpacing:         analyzeSpacing,
		DeadLoad:            analyzeDeadLoad,
		UsePerPlaneBalanced: analyzePerPlane,
		Section: beam.TrialSection{
			Width:                      analyzeWidth,
			Depth:                      analyzeDepth,
			Fb:                         analyzeFb,
			Fv:                         analyzeFv,
			E:                          analyzeE,
			SnowDeflectionDenominator:  analyzeSnowDenom,
			TotalDeflectionDenominator: analyzeTotalDenom,
		},
	}
}

func printAnalysisReport(in *engine.Input, result *engine.Result) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     VALLEY BEAM SNOW LOAD ANALYSIS - ASCE 7-22 / NDS ASD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ground Snow Load (pg):\t%.1f psf\n", in.Site.GroundSnowLoad)
	fmt.Fprintf(w, "  Ce / Ct / Is:\t%.2f / %.2f / %.2f\n", in.Site.ExposureFactor, in.Site.ThermalFactor, in.Site.ImportanceFactor)
	fmt.Fprintf(w, "  Winter Wind Parameter (W2):\t%.2f\n", in.Site.WinterWindParameter)
	fmt.Fprintf(w, "  North Plane:\t%.2f:12, span %.1f ft, lu %.1f ft\n", in.North.Pitch, in.North.EaveToRidge, in.North.Fetch)
	fmt.Fprintf(w, "  West Plane:\t%.2f:12, span %.1f ft, lu %.1f ft\n", in.West.Pitch, in.West.EaveToRidge, in.West.Fetch)
	fmt.Fprintf(w, "  Jack Spacing:\t%.0f in o.c.\n", in.JackSpacing)
	fmt.Fprintf(w, "  Dead Load:\t%.1f psf\n", in.DeadLoad)
	fmt.Fprintf(w, "  Trial Section:\t%.3f in × %.3f in\n", in.Section.Width, in.Section.Depth)
	fmt.Fprintf(w, "  Fb / Fv / E:\t%.0f / %.0f / %.0f psi\n", in.Section.Fb, in.Section.Fv, in.Section.E)
	w.Flush()
	fmt.Println()

	fmt.Println("BALANCED SNOW LOADS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Snow Density (γ):\t%.2f pcf\n", result.SnowDensity)
	fmt.Fprintf(w, "  Flat Roof Load (pf):\t%.2f psf\n", result.FlatRoofLoad)
	fmt.Fprintf(w, "  North:\tθ = %.2f°\tCs = %.4f\tps = %.2f psf\n", result.North.SlopeAngle, result.North.SlopeFactor, result.North.BalancedLoad)
	fmt.Fprintf(w, "  West:\tθ = %.2f°\tCs = %.4f\tps = %.2f psf\n", result.West.SlopeAngle, result.West.SlopeFactor, result.West.BalancedLoad)
	fmt.Fprintf(w, "  Governing Balanced Load:\t%.2f psf\n", result.GoverningBalanced)
	w.Flush()
	if result.MinimumApplied {
		fmt.Printf("  (Section 7.3.4 minimum load pm = %.2f psf governs)\n", result.MinimumLoad)
	}
	fmt.Println()

	fmt.Println("DRIFT SURCHARGE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  North:\thd = %.2f ft\tpd,max = %.2f psf\tw = %.2f ft\n", result.North.Drift.Height, result.North.Drift.MaxSurcharge, result.North.Drift.Width)
	fmt.Fprintf(w, "  West:\thd = %.2f ft\tpd,max = %.2f psf\tw = %.2f ft\n", result.West.Drift.Height, result.West.Drift.MaxSurcharge, result.West.Drift.Width)
	fmt.Fprintf(w, "  Governing:\thd = %.2f ft\tpd,max = %.2f psf\tw = %.2f ft\n", result.Drift.Height, result.Drift.MaxSurcharge, result.Drift.Width)
	w.Flush()
	fmt.Println()

	fmt.Println("VALLEY GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Horizontal Valley Length (lv):\t%.2f ft\n", result.Geometry.HorizontalLength)
	fmt.Fprintf(w, "  Sloped Rafter Length (L):\t%.2f ft\n", result.Geometry.SlopedLength)
	fmt.Fprintf(w, "  Plan Valley Angle (φ):\t%.1f°\n", result.Geometry.PlanAngle)
	w.Flush()
	fmt.Println()

	b := result.Beam
	fmt.Println("BEAM ANALYSIS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total Snow Load:\t%.0f lb\n", b.TotalSnowLoad)
	fmt.Fprintf(w, "  Total Dead Load:\t%.0f lb\n", b.TotalDeadLoad)
	fmt.Fprintf(w, "  Self-Weight (equivalent):\t%.1f lb/ft\n", b.SelfWeight)
	fmt.Fprintf(w, "  Reaction at Eave:\t%.0f lb\n", b.ReactionEave)
	fmt.Fprintf(w, "  Reaction at Ridge:\t%.0f lb\n", b.ReactionRidge)
	fmt.Fprintf(w, "  Max Moment:\t%.0f lb-ft at x = %.2f ft\n", b.MaxMoment, b.MaxMomentLocation)
	fmt.Fprintf(w, "  Max Shear:\t%.0f lb\n", b.MaxShear)
	w.Flush()
	fmt.Println()

	fmt.Println("DESIGN CHECKS (D + 0.7S, Cd = 1.15):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Check\tActual\tAllowable\tRatio\t\n")
	fmt.Fprintf(w, "  ─────\t──────\t─────────\t─────\t\n")
	fmt.Fprintf(w, "  Bending\t%.0f psi\t%.0f psi\t%.3f\t%s\n", b.BendingStress, b.AllowableBending, b.BendingRatio, checkMark(b.BendingOK))
	fmt.Fprintf(w, "  Shear\t%.0f psi\t%.0f psi\t%.3f\t%s\n", b.ShearStress, b.AllowableShear, b.ShearRatio, checkMark(b.ShearOK))
	fmt.Fprintf(w, "  Snow Deflection\t%.3f in\t%.3f in\t%.3f\t%s\n", b.SnowDeflection, b.SnowDeflectionLimit, b.SnowDeflectionRatio, checkMark(b.SnowDeflectionOK))
	fmt.Fprintf(w, "  Total Deflection\t%.3f in\t%.3f in\t%.3f\t%s\n", b.TotalDeflection, b.TotalDeflectionLimit, b.TotalDeflectionRatio, checkMark(b.TotalDeflectionOK))
	w.Flush()
	fmt.Println()

	if b.Adequate {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  DESIGN ADEQUATE - ALL CHECKS PASS      ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
	} else {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  DESIGN NOT ADEQUATE                    ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
	}
	fmt.Println()
	fmt.Printf("  Status: %s\n", b.Message)
	fmt.Println()
}

func printPointLoadTable(result *engine.Result) {
	fmt.Println("JACK RAFTER POINT LOADS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tPosition (ft)\tSnow (lb)\tDead (lb)\n")
	fmt.Fprintf(w, "  ─\t─────────────\t─────────\t─────────\n")
	for i, p := range result.SnowLoads {
		fmt.Fprintf(w, "  %d\t%.2f\t%.1f\t%.1f\n", i+1, p.Position, p.Magnitude, result.DeadLoads[i].Magnitude)
	}
	w.Flush()
	fmt.Println()
}

func beamDiagramData(result *engine.Result) diagram.BeamDiagramData {
	b := result.Beam
	data := diagram.BeamDiagramData{
		Span:          b.HorizontalSpan,
		ReactionLeft:  b.ReactionEave,
		ReactionRight: b.ReactionRidge,
		MaxMoment:     b.MaxMoment,
		MaxMomentX:    b.MaxMomentLocation,
		MaxShear:      b.MaxShear,
	}
	for _, s := range b.Stations {
		data.Stations = append(data.Stations, diagram.Station{X: s.X, Shear: s.Shear, Moment: s.Moment})
	}
	for _, p := range b.CombinedLoads {
		data.Loads = append(data.Loads, diagram.PointLoad{Position: p.Position, Magnitude: p.Magnitude})
	}
	return data
}

func checkMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
