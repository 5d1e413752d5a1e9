package critplot

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	ChartWidth  = 10 * vg.Inch
	ChartHeight = 12 * vg.Inch
	ChartDPI    = 200
)

var barWidth = vg.Points(9)

var (
	baselineColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	speedupColor  = color.RGBA{R: 255, G: 127, B: 14, A: 255}
)

// Render writes the comparison chart to path, overwriting any existing
// file. The format is picked from the extension: raster formats are
// rendered at ChartDPI, vector formats go through plot.Save, and .html
// produces an interactive page.
func (c Comparison) Render(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".html":
		return c.renderHTML(path)
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		return c.renderImage(path, ext)
	default:
		p, err := c.chart()
		if err != nil {
			return err
		}
		err = p.Save(ChartWidth, ChartHeight, path)
		if err != nil {
			return fmt.Errorf("saving %s: %w", path, err)
		}
		return nil
	}
}

func (c Comparison) chart() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title()
	p.X.Label.Text = "Speedup"

	// NewBarChart rejects empty value slices, so an empty intersection
	// renders as a titled plot with no bars.
	if len(c.Categories) == 0 {
		return p, nil
	}

	baseline, err := plotter.NewBarChart(plotter.Values(c.Baseline), barWidth)
	if err != nil {
		return nil, fmt.Errorf("baseline bars: %w", err)
	}
	baseline.Horizontal = true
	baseline.Offset = -barWidth / 2
	baseline.Color = baselineColor
	baseline.LineStyle.Width = vg.Length(0)

	speedup, err := plotter.NewBarChart(plotter.Values(c.Speedup), barWidth)
	if err != nil {
		return nil, fmt.Errorf("speedup bars: %w", err)
	}
	speedup.Horizontal = true
	speedup.Offset = barWidth / 2
	speedup.Color = speedupColor
	speedup.LineStyle.Width = vg.Length(0)

	p.Add(baseline, speedup)
	p.Legend.Add(c.BaselineName, baseline)
	p.Legend.Add(c.ComparisonName, speedup)
	p.Legend.Top = true
	p.NominalY(c.Categories...)
	return p, nil
}

func (c Comparison) renderImage(path, ext string) error {
	p, err := c.chart()
	if err != nil {
		return err
	}
	canvas := vgimg.NewWith(
		vgimg.UseWH(ChartWidth, ChartHeight),
		vgimg.UseDPI(ChartDPI),
	)
	p.Draw(draw.New(canvas))
	var out io.WriterTo
	switch ext {
	case ".jpg", ".jpeg":
		out = vgimg.JpegCanvas{Canvas: canvas}
	case ".tif", ".tiff":
		out = vgimg.TiffCanvas{Canvas: canvas}
	default:
		out = vgimg.PngCanvas{Canvas: canvas}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	_, err = out.WriteTo(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	err = f.Close()
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
