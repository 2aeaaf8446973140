package cmd

import (
	"fmt"

	"github.com/alexiusacademia/govalley/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of govalley",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("govalley v%s\n", version.Version)
		fmt.Println("Valley Beam Snow Load Design Tool")
		fmt.Println("Based on ASCE 7-22 Chapter 7 (Snow Loads)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
