package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	diagramOut    string
	diagramFormat string
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Export shear, moment, slope and deflection diagrams as images",
	Long: `Solve the beam model and export one diagram image per field
function into the output directory.

Examples:
  gobeam diagram -s 0:pin -s 6:roller -u 0:6:-5000 --out diagrams
  gobeam diagram --config beam.yaml --format svg -n 301`,
	RunE: runDiagram,
}

func init() {
	rootCmd.AddCommand(diagramCmd)
	addModelFlags(diagramCmd)
	diagramCmd.Flags().StringVarP(&diagramOut, "out", "o", ".", "output directory")
	diagramCmd.Flags().StringVar(&diagramFormat, "format", "png", "image format: png, svg or pdf")
}

func runDiagram(cmd *cobra.Command, args []string) error {
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

	files, err := diagram.ExportAll(diagramOut, "."+diagramFormat, fieldSeries(samples))
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Printf("wrote %s\n", f)
	}
	return nil
}

func fieldSeries(s *analysis.Samples) []diagram.FieldSeries {
	return []diagram.FieldSeries{
		{Name: "shear", Title: "Shear Force Diagram", YLabel: "V (N)", X: s.X, Y: s.Shear},
		{Name: "moment", Title: "Bending Moment Diagram", YLabel: "M (N·m)", X: s.X, Y: s.Moment},
		{Name: "slope", Title: "Slope Diagram", YLabel: "θ (rad)", X: s.X, Y: s.Slope},
		{Name: "deflection", Title: "Deflection Diagram", YLabel: "v (m)", X: s.X, Y: s.Deflection},
	}
}
