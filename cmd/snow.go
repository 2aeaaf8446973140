package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/govalley/internal/asce"
	"github.com/alexiusacademia/govalley/internal/geometry"
	"github.com/spf13/cobra"
)

var (
	snowGroundLoad float64
	snowExposure   float64
	snowThermal    float64
	snowImportance float64
	snowPitchNorth float64
	snowPitchWest  float64
	snowSlippery   bool
)

var snowCmd = &cobra.Command{
	Use:   "snow",
	Short: "Calculate balanced roof snow loads per ASCE 7-22",
	Long: `Calculate the flat roof snow load (pf) and the balanced sloped roof
snow load (ps) for one or two intersecting roof planes.

The calculation follows ASCE 7-22 Chapter 7:
  - Eq. 7.3-1: pf = 0.7·Ce·Ct·Is·pg
  - Figure 7.4-1: slope factor Cs
  - Eq. 7.4-1: ps = Cs·pf
  - Section 7.3.4: low-slope minimum load pm

Examples:
  # Single 10:12 roof plane, pg = 50 psf, cold roof
  govalley snow --pg 50 --ct 1.2 --pitch-north 10

  # Two planes with differing pitches on a slippery surface
  govalley snow --pg 40 --pitch-north 8 --pitch-west 6 --slippery`,
	Run: runSnow,
}

func init() {
	rootCmd.AddCommand(snowCmd)

	snowCmd.Flags().Float64Var(&snowGroundLoad, "pg", 0, "Ground snow load pg (psf) [required]")
	snowCmd.Flags().Float64Var(&snowExposure, "ce", 1.0, "Exposure factor Ce")
	snowCmd.Flags().Float64Var(&snowThermal, "ct", 1.0, "Thermal factor Ct")
	snowCmd.Flags().Float64Var(&snowImportance, "is", 1.0, "Importance factor Is")
	snowCmd.Flags().Float64Var(&snowPitchNorth, "pitch-north", 0, "North plane pitch (rise per 12) [required]")
	snowCmd.Flags().Float64Var(&snowPitchWest, "pitch-west", 0, "West plane pitch (rise per 12), defaults to north pitch")
	snowCmd.Flags().BoolVar(&snowSlippery, "slippery", false, "Slippery roof surface (metal, slate, glass)")

	snowCmd.MarkFlagRequired("pg")
	snowCmd.MarkFlagRequired("pitch-north")
}

func runSnow(cmd *cobra.Command, args []string) {
	if snowPitchWest == 0 {
		snowPitchWest = snowPitchNorth
	}

	north := geometry.RoofPlane{Name: "north", Pitch: snowPitchNorth}
	west := geometry.RoofPlane{Name: "west", Pitch: snowPitchWest}

	pf := asce.FlatRoofLoad(snowGroundLoad, snowExposure, snowThermal, snowImportance)
	gamma := asce.SnowDensity(snowGroundLoad)

	csNorth := asce.SlopeFactor(north.SlopeAngle(), snowThermal, snowSlippery)
	csWest := asce.SlopeFactor(west.SlopeAngle(), snowThermal, snowSlippery)
	psNorth := asce.SlopedRoofLoad(pf, csNorth)
	psWest := asce.SlopedRoofLoad(pf, csWest)
	governing := math.Min(psNorth, psWest)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BALANCED ROOF SNOW LOADS - ASCE 7-22 CHAPTER 7")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ground Snow Load (pg):\t%.1f psf\n", snowGroundLoad)
	fmt.Fprintf(w, "  Exposure Factor (Ce):\t%.2f\n", snowExposure)
	fmt.Fprintf(w, "  Thermal Factor (Ct):\t%.2f\n", snowThermal)
	fmt.Fprintf(w, "  Importance Factor (Is):\t%.2f\n", snowImportance)
	fmt.Fprintf(w, "  North Pitch:\t%.2f : 12\n", snowPitchNorth)
	fmt.Fprintf(w, "  West Pitch:\t%.2f : 12\n", snowPitchWest)
	fmt.Fprintf(w, "  Slippery Surface:\t%v\n", snowSlippery)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Snow Density (γ):\t%.2f pcf\n", gamma)
	fmt.Fprintf(w, "  Flat Roof Load (pf):\t%.2f psf\n", pf)
	fmt.Fprintf(w, "  North Slope Angle:\t%.2f°\tCs = %.4f\tps = %.2f psf\n", north.SlopeAngle(), csNorth, psNorth)
	fmt.Fprintf(w, "  West Slope Angle:\t%.2f°\tCs = %.4f\tps = %.2f psf\n", west.SlopeAngle(), csWest, psWest)
	w.Flush()
	fmt.Println()

	// Low-slope minimum
	minAngle := math.Min(north.SlopeAngle(), west.SlopeAngle())
	minApplied := false
	if minAngle < asce.MinimumLoadSlopeLimit {
		pm := asce.MinimumRoofLoad(snowGroundLoad, snowImportance)
		fmt.Printf("  Low-slope minimum applies (θ = %.2f° < %.0f°): pm = %.2f psf\n",
			minAngle, asce.MinimumLoadSlopeLimit, pm)
		if pm > governing {
			governing = pm
			minApplied = true
		}
		fmt.Println()
	}

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  GOVERNING BALANCED LOAD = %.2f psf     \n", governing)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	if minApplied {
		fmt.Println("  (controlled by the Section 7.3.4 minimum load)")
	}
	fmt.Println()
}
