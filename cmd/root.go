package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/govalley/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "govalley",
	Short: "Valley Beam Snow Load Design Tool",
	Long: `govalley - Go Valley Beam Snow Load Designer

A CLI tool for computing ASCE 7-22 Chapter 7 snow loads on
intersecting (valley) roof planes and checking the valley support
beam by allowable stress design (ASD).

This tool helps structural engineers perform:
  - Balanced and minimum roof snow load calculation
  - Gable roof drift surcharge calculation
  - Valley drift envelope and jack rafter point loads
  - Valley beam shear, moment and deflection checks (NDS ASD)

All calculations follow ASCE 7-22 Chapter 7 provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   govalley v%-46s║\n", version.Version)
		fmt.Println("  ║   Go Valley Beam Snow Load Designer                       ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for snow loads on intersecting roof planes and")
		fmt.Println("  valley beam design per ASCE 7-22 Chapter 7 and NDS ASD.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Slope factor, flat and sloped roof snow loads")
		fmt.Println("    • Gable drift height, surcharge and width")
		fmt.Println("    • Jack rafter point loads on the valley beam")
		fmt.Println("    • Beam bending, shear and deflection checks")
		fmt.Println()
		fmt.Println("  Use 'govalley --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
