// Package report renders an analysis run as a PDF document.
package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/beam"
)

// Input collects everything the report prints.
type Input struct {
	Title   string
	Project string
	Author  string

	Beam    *beam.Beam
	Result  *analysis.Result
	Samples *analysis.Samples

	// DiagramFiles are optional pre-rendered diagram images (PNG) to
	// embed, typically produced by the diagram package.
	DiagramFiles []string
}

// Generate writes the PDF to path.
func Generate(path string, in Input) error {
	if in.Title == "" {
		in.Title = "Beam Analysis Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if in.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
		pdf.Ln(6)
	}
	if in.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Beam")
	row(pdf, "Span length", fmt.Sprintf("%.4g m", in.Beam.Length))
	row(pdf, "Elastic modulus E", fmt.Sprintf("%.4g Pa", in.Beam.E))
	row(pdf, "Second moment of area I", fmt.Sprintf("%.4g m^4", in.Beam.I))
	pdf.Ln(4)

	section(pdf, "Supports")
	for _, s := range in.Result.Supports() {
		row(pdf, fmt.Sprintf("x = %.4g m", s.Position), restraintLabel(s))
	}
	pdf.Ln(4)

	section(pdf, "Loads")
	for _, l := range in.Beam.Loads() {
		switch ld := l.(type) {
		case beam.PointForce:
			row(pdf, fmt.Sprintf("Point force at %.4g m", ld.Position), fmt.Sprintf("%.4g N", ld.Magnitude))
		case beam.DistributedLoad:
			row(pdf, fmt.Sprintf("UDL over [%.4g, %.4g] m", ld.Start, ld.End), fmt.Sprintf("%.4g N/m", ld.Magnitude))
		case beam.PointTorque:
			row(pdf, fmt.Sprintf("Torque at %.4g m", ld.Position), fmt.Sprintf("%.4g N.m", ld.Magnitude))
		default:
			panic(fmt.Sprintf("report: unhandled load variant %T", l))
		}
	}
	pdf.Ln(4)

	section(pdf, fmt.Sprintf("Reactions (degree of indeterminacy %d)", in.Result.Redundancy()))
	for _, re := range in.Result.Reactions() {
		unit := "N"
		if re.Component == analysis.Mz {
			unit = "N.m"
		}
		row(pdf, fmt.Sprintf("%s at x = %.4g m", re.Component, re.Position), fmt.Sprintf("%.6g %s", re.Value, unit))
	}
	pdf.Ln(4)

	if in.Samples != nil {
		section(pdf, "Field extremes")
		name := []string{"Shear V", "Moment M", "Deflection v"}
		unit := []string{"N", "N.m", "m"}
		for i, vals := range [][]float64{in.Samples.Shear, in.Samples.Moment, in.Samples.Deflection} {
			lo, hi := extremes(vals)
			row(pdf, name[i], fmt.Sprintf("min %.6g %s, max %.6g %s", lo, unit[i], hi, unit[i]))
		}
	}

	for _, f := range in.DiagramFiles {
		pdf.AddPage()
		pdf.ImageOptions(f, 10, 20, 190, 0, false, gofpdf.ImageOptions{}, 0, "")
	}

	return pdf.OutputFileAndClose(path)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.Cell(90, 6, label)
	pdf.Cell(0, 6, value)
	pdf.Ln(6)
}

func restraintLabel(s beam.Support) string {
	switch {
	case s.Ux && s.Uy && s.Rz:
		return "fixed (Ux, Uy, Rz)"
	case s.Ux && s.Uy:
		return "pin (Ux, Uy)"
	case s.Uy && !s.Ux && !s.Rz:
		return "roller (Uy)"
	}
	out := ""
	if s.Ux {
		out += "Ux "
	}
	if s.Uy {
		out += "Uy "
	}
	if s.Rz {
		out += "Rz"
	}
	return out
}

func extremes(vals []float64) (lo, hi float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	lo, hi = vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
