package critplot

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func (c Comparison) renderHTML(path string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: c.Title()}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Speedup"}),
	)
	baseline := make([]opts.BarData, len(c.Baseline))
	for i, v := range c.Baseline {
		baseline[i] = opts.BarData{Value: v}
	}
	speedup := make([]opts.BarData, len(c.Speedup))
	for i, v := range c.Speedup {
		speedup[i] = opts.BarData{Value: v}
	}
	bar.SetXAxis(c.Categories).
		AddSeries(c.BaselineName, baseline).
		AddSeries(c.ComparisonName, speedup)
	bar.XYReversal()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	err = bar.Render(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
