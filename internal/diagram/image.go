package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// FieldSeries is one sampled field function ready for plotting.
type FieldSeries struct {
	Name   string // file base name, e.g. "shear"
	Title  string
	YLabel string
	X      []float64
	Y      []float64
}

// ExportFieldDiagram exports a single field diagram to an image file.
// The format follows the file extension (.png, .svg, .pdf); anything
// else falls back to PNG.
func ExportFieldDiagram(s FieldSeries, filename string) error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("diagram: %d stations but %d values", len(s.X), len(s.Y))
	}

	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = s.YLabel

	pts := make(plotter.XYs, len(s.X))
	for i := range s.X {
		pts[i] = plotter.XY{X: s.X[i], Y: s.Y[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	// Zero reference line
	if len(s.X) > 0 {
		zero, err := plotter.NewLine(plotter.XYs{
			{X: s.X[0], Y: 0},
			{X: s.X[len(s.X)-1], Y: 0},
		})
		if err != nil {
			return err
		}
		zero.LineStyle.Width = vg.Points(1)
		zero.LineStyle.Color = color.Gray{Y: 128}
		zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(zero)
	}

	width := 8 * vg.Inch
	height := 4 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// ExportAll writes one diagram per field into dir using the series
// names as file base names.
func ExportAll(dir, ext string, series []FieldSeries) ([]string, error) {
	if ext == "" {
		ext = ".png"
	}
	var files []string
	for _, s := range series {
		fn := filepath.Join(dir, s.Name+ext)
		if err := ExportFieldDiagram(s, fn); err != nil {
			return nil, err
		}
		files = append(files, fn)
	}
	return files, nil
}
