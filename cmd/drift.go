package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/govalley/internal/asce"
	"github.com/alexiusacademia/govalley/internal/geometry"
	"github.com/alexiusacademia/govalley/internal/snow"
	"github.com/spf13/cobra"
)

var (
	driftGroundLoad float64
	driftFetch      float64
	driftWind       float64
	driftPitch      float64
	driftSpan       float64
	driftSimple     bool
)

var driftCmd = &cobra.Command{
	Use:   "drift",
	Short: "Calculate the gable roof drift for one plane",
	Long: `Calculate the drift height (hd), peak drift surcharge (pd,max) and
drift width (w) for a gable roof plane per ASCE 7-22 Section 7.6.1.

Drifts only form for roof slopes between 0.5:12 and 7:12; outside that
range the drift is zero by definition. For a narrow, simply supported
plane (eave-to-ridge span of 20 ft or less) the triangular drift is
replaced by the full ground load applied uniformly.

Examples:
  # 6:12 plane with 100 ft of upwind fetch
  govalley drift --pg 30 --lu 100 --w2 0.55 --pitch 6 --span 30

  # Narrow simply supported plane
  govalley drift --pg 30 --lu 100 --w2 0.55 --pitch 6 --span 18 --simple`,
	Run: runDrift,
}

func init() {
	rootCmd.AddCommand(driftCmd)

	driftCmd.Flags().Float64Var(&driftGroundLoad, "pg", 0, "Ground snow load pg (psf) [required]")
	driftCmd.Flags().Float64Var(&driftFetch, "lu", 0, "Upwind fetch length lu (ft) [required]")
	driftCmd.Flags().Float64Var(&driftWind, "w2", 0.5, "Winter wind parameter W2 (0 to 1)")
	driftCmd.Flags().Float64Var(&driftPitch, "pitch", 0, "Roof pitch (rise per 12) [required]")
	driftCmd.Flags().Float64Var(&driftSpan, "span", 0, "Eave-to-ridge span (ft) [required]")
	driftCmd.Flags().BoolVar(&driftSimple, "simple", false, "Roof members are simply supported")

	driftCmd.MarkFlagRequired("pg")
	driftCmd.MarkFlagRequired("lu")
	driftCmd.MarkFlagRequired("pitch")
	driftCmd.MarkFlagRequired("span")
}

func runDrift(cmd *cobra.Command, args []string) {
	plane := geometry.RoofPlane{
		Pitch:           driftPitch,
		EaveToRidge:     driftSpan,
		Fetch:           driftFetch,
		SimplySupported: driftSimple,
	}

	result := snow.GableDrift(driftGroundLoad, driftWind, plane)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     GABLE ROOF DRIFT - ASCE 7-22 SECTION 7.6.1")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ground Snow Load (pg):\t%.1f psf\n", driftGroundLoad)
	fmt.Fprintf(w, "  Upwind Fetch (lu):\t%.1f ft (capped at %.0f ft)\n", driftFetch, asce.MaxFetchLength)
	fmt.Fprintf(w, "  Winter Wind Parameter (W2):\t%.2f\n", driftWind)
	fmt.Fprintf(w, "  Pitch:\t%.2f : 12\n", driftPitch)
	fmt.Fprintf(w, "  Eave-to-Ridge Span:\t%.1f ft\n", driftSpan)
	fmt.Fprintf(w, "  Simply Supported:\t%v\n", driftSimple)
	w.Flush()
	fmt.Println()

	s := plane.SlopeRatio()
	if s < asce.MinDriftSlopeRatio || s > asce.MaxDriftSlopeRatio {
		fmt.Printf("  Slope ratio %.4f is outside [%.4f, %.4f]: drift does not apply.\n",
			s, asce.MinDriftSlopeRatio, asce.MaxDriftSlopeRatio)
		fmt.Println()
	}
	if result.Uniform {
		fmt.Println("  Narrow-roof case: full ground load applied uniformly on the")
		fmt.Println("  leeward side in place of the triangular drift.")
		fmt.Println()
	}

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Snow Density (γ):\t%.2f pcf\n", result.Density)
	fmt.Fprintf(w, "  Drift Height (hd):\t%.2f ft\n", result.Height)
	fmt.Fprintf(w, "  Peak Surcharge (pd,max):\t%.2f psf\n", result.MaxSurcharge)
	fmt.Fprintf(w, "  Drift Width (w):\t%.2f ft\n", result.Width)
	w.Flush()
	fmt.Println()
}
