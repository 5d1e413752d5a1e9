package critplot_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/thiagonache/critplot"
)

func TestCompareSortsSharedCategoriesInDescendingOrder(t *testing.T) {
	t.Parallel()
	baseline := critplot.Document{
		Name:       "old",
		Benchmarks: map[string]float64{"b": 1, "a": 2, "c": 3},
	}
	comparison := critplot.Document{
		Name:       "new",
		Benchmarks: map[string]float64{"a": 1, "b": 2, "c": 3, "d": 4},
	}
	got, err := critplot.Compare(baseline, comparison)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"c", "b", "a"}
	if !cmp.Equal(want, got.Categories) {
		t.Error(cmp.Diff(want, got.Categories))
	}
}

func TestCompareWithDisjointKeySetsReturnsEmptyComparison(t *testing.T) {
	t.Parallel()
	baseline := critplot.Document{
		Name:       "old",
		Benchmarks: map[string]float64{"a": 1, "b": 2},
	}
	comparison := critplot.Document{
		Name:       "new",
		Benchmarks: map[string]float64{"c": 3, "d": 4},
	}
	got, err := critplot.Compare(baseline, comparison)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Categories) != 0 {
		t.Errorf("want no categories, got %v", got.Categories)
	}
}

func TestCompareWithIdenticalKeySetsKeepsEveryCategory(t *testing.T) {
	t.Parallel()
	benchmarks := map[string]float64{"a": 1, "b": 2, "c": 3}
	baseline := critplot.Document{Name: "old", Benchmarks: benchmarks}
	comparison := critplot.Document{Name: "new", Benchmarks: benchmarks}
	got, err := critplot.Compare(baseline, comparison)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Categories) != len(benchmarks) {
		t.Errorf("want %d categories, got %d", len(benchmarks), len(got.Categories))
	}
}

func TestCompareBaselineRatioIsAlwaysOne(t *testing.T) {
	t.Parallel()
	baseline := critplot.Document{
		Name:       "old",
		Benchmarks: map[string]float64{"tiny": 0.00003, "mid": 152340.2, "huge": 9.8e12},
	}
	comparison := critplot.Document{
		Name:       "new",
		Benchmarks: map[string]float64{"tiny": 7.0, "mid": 7.0, "huge": 7.0},
	}
	got, err := critplot.Compare(baseline, comparison)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1.0, 1.0, 1.0}
	if !cmp.Equal(want, got.Baseline) {
		t.Error(cmp.Diff(want, got.Baseline))
	}
}

func TestCompareSpeedupIsBaselineOverComparison(t *testing.T) {
	t.Parallel()
	baseline := critplot.Document{
		Name:       "old",
		Benchmarks: map[string]float64{"faster": 2.0, "slower": 2.0},
	}
	comparison := critplot.Document{
		Name:       "new",
		Benchmarks: map[string]float64{"faster": 1.0, "slower": 4.0},
	}
	got, err := critplot.Compare(baseline, comparison)
	if err != nil {
		t.Fatal(err)
	}
	// Categories sort to [slower faster].
	want := []float64{0.5, 2.0}
	if !cmp.Equal(want, got.Speedup) {
		t.Error(cmp.Diff(want, got.Speedup))
	}
}

func TestCompareErrorsIfComparisonEstimateIsZero(t *testing.T) {
	t.Parallel()
	baseline := critplot.Document{
		Name:       "old",
		Benchmarks: map[string]float64{"a": 2.0},
	}
	comparison := critplot.Document{
		Name:       "new",
		Benchmarks: map[string]float64{"a": 0},
	}
	_, err := critplot.Compare(baseline, comparison)
	if !errors.Is(err, critplot.ErrZeroEstimate) {
		t.Fatalf("want ErrZeroEstimate, got %v", err)
	}
}

func TestCompareErrorsIfBaselineEstimateIsZero(t *testing.T) {
	t.Parallel()
	baseline := critplot.Document{
		Name:       "old",
		Benchmarks: map[string]float64{"a": 0},
	}
	comparison := critplot.Document{
		Name:       "new",
		Benchmarks: map[string]float64{"a": 2.0},
	}
	_, err := critplot.Compare(baseline, comparison)
	if !errors.Is(err, critplot.ErrZeroEstimate) {
		t.Fatalf("want ErrZeroEstimate, got %v", err)
	}
}

func TestTitleInterpolatesBothDocumentNames(t *testing.T) {
	t.Parallel()
	c := critplot.Comparison{BaselineName: "old", ComparisonName: "new"}
	want := "Speedup old vs new"
	got := c.Title()
	if want != got {
		t.Errorf("want title %q, got %q", want, got)
	}
}
