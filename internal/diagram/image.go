package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportBeamDiagrams exports the shear and moment diagrams to an image
// file. The format follows the file extension (png, svg, pdf).
func ExportBeamDiagrams(data BeamDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Valley Beam Shear and Moment Diagrams"
	p.X.Label.Text = "Position along beam (ft)"
	p.Y.Label.Text = "Shear (lb) / Moment (lb-ft)"

	shearPts := make(plotter.XYs, len(data.Stations))
	momentPts := make(plotter.XYs, len(data.Stations))
	for i, s := range data.Stations {
		shearPts[i] = plotter.XY{X: s.X, Y: s.Shear}
		momentPts[i] = plotter.XY{X: s.X, Y: s.Moment}
	}

	shearLine, err := plotter.NewLine(shearPts)
	if err != nil {
		return err
	}
	shearLine.LineStyle.Width = vg.Points(1.5)
	shearLine.LineStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	p.Add(shearLine)
	p.Legend.Add("Shear", shearLine)

	momentLine, err := plotter.NewLine(momentPts)
	if err != nil {
		return err
	}
	momentLine.LineStyle.Width = vg.Points(1.5)
	momentLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(momentLine)
	p.Legend.Add("Moment", momentLine)

	// zero reference line
	zeroLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Span, Y: 0},
	})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zeroLine)

	// mark the applied point loads on the zero line
	loadPts := make(plotter.XYs, len(data.Loads))
	for i, l := range data.Loads {
		loadPts[i] = plotter.XY{X: l.Position, Y: 0}
	}
	loadMarks, err := plotter.NewScatter(loadPts)
	if err != nil {
		return err
	}
	loadMarks.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	loadMarks.GlyphStyle.Radius = vg.Points(3)
	p.Add(loadMarks)
	p.Legend.Add("Point loads", loadMarks)

	// mark the peak moment
	peak, err := plotter.NewScatter(plotter.XYs{{X: data.MaxMomentX, Y: data.MaxMoment}})
	if err != nil {
		return err
	}
	peak.GlyphStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	peak.GlyphStyle.Radius = vg.Points(4)
	p.Add(peak)

	p.Legend.Top = true

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	return p.Save(width, height, filename)
}
