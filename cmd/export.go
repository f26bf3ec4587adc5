package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sampled field values as CSV",
	Long: `Solve the beam model and write the sampled shear, moment, slope
and deflection values as CSV, to stdout or to a file.

Example:
  gobeam export --config beam.yaml -n 201 -o fields.csv`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addModelFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"x", "shear", "moment", "slope", "deflection"}); err != nil {
		return err
	}
	for i := range samples.X {
		rec := []string{
			formatFloat(samples.X[i]),
			formatFloat(samples.Shear[i]),
			formatFloat(samples.Moment[i]),
			formatFloat(samples.Slope[i]),
			formatFloat(samples.Deflection[i]),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	if exportOut != "" {
		fmt.Printf("wrote %s (%d samples)\n", exportOut, len(samples.X))
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
