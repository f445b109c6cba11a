package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gofault/internal/fault"
)

// Formats accepted by the export functions, chosen by file extension
var Formats = []string{".png", ".svg", ".pdf", ".jpg", ".jpeg", ".eps", ".tif", ".tiff"}

// CheckFormat reports an error if filename has no supported image extension
func CheckFormat(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, f := range Formats {
		if ext == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported image format %q (use png, svg or pdf)", ext)
}

// ExportSweepPlot plots fault current and fault power against the swept
// impedance and saves it to filename
func ExportSweepPlot(t fault.Type, field fault.Field, points []fault.SweepPoint, filename string) error {
	if err := CheckFormat(filename); err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no sweep points to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s fault current vs %s", t.Description(), strings.ToUpper(field.String()))
	p.X.Label.Text = fmt.Sprintf("%s (Ω)", strings.ToUpper(field.String()))
	p.Y.Label.Text = "Fault current (kA)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(points))
	for i, pt := range points {
		pts[i] = plotter.XY{X: pt.Value, Y: pt.Result.CurrentKA}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	marks, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	marks.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	marks.GlyphStyle.Radius = vg.Points(2)
	p.Add(marks)

	p.Legend.Add("I (kA)", line, marks)
	p.Legend.Top = true

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

// ExportComparisonChart draws a bar chart of fault current per fault type
func ExportComparisonChart(results []*fault.Result, filename string) error {
	if err := CheckFormat(filename); err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no results to chart")
	}

	p := plot.New()
	p.Title.Text = "Short-circuit current by fault type"
	p.Y.Label.Text = "Fault current (kA)"

	values := make(plotter.Values, len(results))
	names := make([]string, len(results))
	for i, r := range results {
		values[i] = r.CurrentKA
		names[i] = r.Type.String()
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	bars.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(bars)
	p.NominalX(names...)

	return save(p, 6*vg.Inch, 4*vg.Inch, filename)
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return p.Save(width, height, filename)
}
