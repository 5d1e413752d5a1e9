package critplot

import (
	"errors"
	"fmt"
	"sort"
)

var ErrZeroEstimate = errors.New("zero mean estimate")

// Comparison is the speedup of one benchmark run relative to another,
// per benchmark name present in both runs. Categories are sorted in
// descending lexicographic order so they read bottom-to-top on the
// rendered chart. Baseline ratios are always 1.0 and exist to render
// both series on the same scale.
type Comparison struct {
	BaselineName   string
	ComparisonName string
	Categories     []string
	Baseline       []float64
	Speedup        []float64
}

func Compare(baseline, comparison Document) (Comparison, error) {
	categories := make([]string, 0, len(baseline.Benchmarks))
	for name := range baseline.Benchmarks {
		if _, ok := comparison.Benchmarks[name]; ok {
			categories = append(categories, name)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(categories)))
	result := Comparison{
		BaselineName:   baseline.Name,
		ComparisonName: comparison.Name,
		Categories:     categories,
		Baseline:       make([]float64, 0, len(categories)),
		Speedup:        make([]float64, 0, len(categories)),
	}
	for _, name := range categories {
		b := baseline.Benchmarks[name]
		c := comparison.Benchmarks[name]
		if b == 0 {
			return Comparison{}, fmt.Errorf("%w for benchmark %q in %s", ErrZeroEstimate, name, baseline.Name)
		}
		if c == 0 {
			return Comparison{}, fmt.Errorf("%w for benchmark %q in %s", ErrZeroEstimate, name, comparison.Name)
		}
		result.Baseline = append(result.Baseline, b/b)
		result.Speedup = append(result.Speedup, b/c)
	}
	return result, nil
}

func (c Comparison) Title() string {
	return fmt.Sprintf("Speedup %s vs %s", c.BaselineName, c.ComparisonName)
}
