package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportOut     string
	reportTitle   string
	reportProject string
	reportAuthor  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a PDF analysis report",
	Long: `Solve the beam model and write a PDF report with the input data,
support reactions, field extremes and the four field diagrams.

Example:
  gobeam report --config beam.yaml --project "Warehouse B" -o beam.pdf`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	addModelFlags(reportCmd)
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "beam-report.pdf", "output PDF file")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "report title")
	reportCmd.Flags().StringVar(&reportProject, "project", "", "project name")
	reportCmd.Flags().StringVar(&reportAuthor, "author", "", "author name")
}

func runReport(cmd *cobra.Command, args []string) error {
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

	// Render the diagrams into a scratch directory so the report can
	// embed them.
	tmp, err := os.MkdirTemp("", "gobeam-report-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	files, err := diagram.ExportAll(tmp, ".png", fieldSeries(samples))
	if err != nil {
		return err
	}

	in := report.Input{
		Title:        reportTitle,
		Project:      reportProject,
		Author:       reportAuthor,
		Beam:         b,
		Result:       res,
		Samples:      samples,
		DiagramFiles: files,
	}
	if err := report.Generate(reportOut, in); err != nil {
		return err
	}
	abs, err := filepath.Abs(reportOut)
	if err != nil {
		abs = reportOut
	}
	fmt.Printf("wrote %s\n", abs)
	return nil
}
