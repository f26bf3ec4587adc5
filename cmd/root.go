package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Indeterminate Beam Analysis Tool",
	Long: `gobeam - Go Beam Analyzer

A CLI tool for the static analysis of linear elastic beams,
including statically indeterminate configurations.

Given a span, material and section stiffness, supports and loads,
gobeam solves all support reactions and produces continuous shear,
bending moment, slope and deflection diagrams along the span.

Indeterminate systems are resolved with the force method: the
equilibrium equations are augmented with one compatibility equation
per redundant restraint, built by the unit-load method.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Beam Analyzer                                        ║")
		fmt.Printf("  ║   %s ©  %s                                 ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the static analysis of linear elastic beams,")
		fmt.Println("  determinate or indeterminate, with arbitrary supports and loads.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Support reactions, including redundant restraints")
		fmt.Println("    • Shear, moment, slope and deflection diagrams")
		fmt.Println("    • Point loads, uniform distributed loads and torques")
		fmt.Println("    • Diagram export (PNG/SVG), CSV samples and PDF reports")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
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
