package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/spf13/cobra"
)

var analyzePlot bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Solve a beam for reactions and internal force diagrams",
	Long: `Solve a beam model for all support reactions and the shear,
bending moment, slope and deflection fields along the span.

Statically indeterminate models are resolved with the force method:
compatibility equations built by the unit-load method augment the
three planar equilibrium equations.

Examples:
  # Default model: 6 m fixed-fixed span, -10 kN point load at midspan
  gobeam analyze

  # Simply supported span with a uniform load
  gobeam analyze -l 8 -s 0:pin -s 8:roller -u 0:8:-5000

  # Propped cantilever from a definition file, with terminal diagrams
  gobeam analyze --config beam.yaml --plot`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addModelFlags(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzePlot, "plot", false, "render terminal diagrams of V, M and v")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	b, err := buildModel()
	if err != nil {
		return err
	}
	res, err := analysis.Run(b)
	if err != nil {
		return err
	}
	samples, err := res.Sample(modelSamples)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BEAM ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span length (L):\t%.4g m\n", b.Length)
	fmt.Fprintf(w, "  Elastic modulus (E):\t%.4g Pa\n", b.E)
	fmt.Fprintf(w, "  Second moment of area (I):\t%.4g m⁴\n", b.I)
	fmt.Fprintf(w, "  Supports:\t%d\n", len(res.Supports()))
	fmt.Fprintf(w, "  Loads:\t%d\n", len(b.Loads()))
	fmt.Fprintf(w, "  Degree of indeterminacy:\t%d\n", res.Redundancy())
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawASCIIBeam(b.Length, res.Supports(), b.Loads()))
	fmt.Println()

	fmt.Println("REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  POSITION\tCOMPONENT\tVALUE")
	for _, re := range res.Reactions() {
		unit := "N"
		if re.Component == analysis.Mz {
			unit = "N·m"
		}
		fmt.Fprintf(w, "  %.4g m\t%s\t%.6g %s\n", re.Position, re.Component, re.Value, unit)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("FIELD EXTREMES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	printExtreme(w, "Shear V", samples.X, samples.Shear, "N")
	printExtreme(w, "Moment M", samples.X, samples.Moment, "N·m")
	printExtreme(w, "Deflection v", samples.X, samples.Deflection, "m")
	w.Flush()
	fmt.Println()

	if analyzePlot {
		fmt.Print(diagram.DrawASCIIFields(samples.Shear, samples.Moment, samples.Deflection))
		fmt.Println()
	}
	return nil
}

// printExtreme reports the largest-magnitude sampled value of a field
// and where it occurs.
func printExtreme(w *tabwriter.Writer, name string, x, vals []float64, unit string) {
	best := 0
	for i, v := range vals {
		if abs(v) > abs(vals[best]) {
			best = i
		}
	}
	fmt.Fprintf(w, "  %s:\t%.6g %s\tat x = %.4g m\n", name, vals[best], unit, x[best])
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
