package critplot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var ErrMissingField = errors.New("missing field")

// Document holds one criterion export: a run name and the mean point
// estimate of every benchmark in the run.
type Document struct {
	Name       string
	Benchmarks map[string]float64
}

type rawDocument struct {
	Name       *string                 `json:"name"`
	Benchmarks map[string]rawBenchmark `json:"benchmarks"`
}

type rawBenchmark struct {
	Estimates *rawEstimates `json:"criterion_estimates_v1"`
}

type rawEstimates struct {
	Mean *rawEstimate `json:"mean"`
}

type rawEstimate struct {
	PointEstimate *float64 `json:"point_estimate"`
}

func LoadDocument(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading benchmark file: %w", err)
	}
	defer f.Close()
	raw := rawDocument{}
	err = json.NewDecoder(f).Decode(&raw)
	if err != nil {
		return Document{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if raw.Name == nil {
		return Document{}, fmt.Errorf("%s: %w %q", path, ErrMissingField, "name")
	}
	if raw.Benchmarks == nil {
		return Document{}, fmt.Errorf("%s: %w %q", path, ErrMissingField, "benchmarks")
	}
	doc := Document{
		Name:       *raw.Name,
		Benchmarks: make(map[string]float64, len(raw.Benchmarks)),
	}
	for name, bench := range raw.Benchmarks {
		if bench.Estimates == nil {
			return Document{}, fmt.Errorf("%s: %w %q", path, ErrMissingField, fmt.Sprintf("benchmarks[%s].criterion_estimates_v1", name))
		}
		if bench.Estimates.Mean == nil {
			return Document{}, fmt.Errorf("%s: %w %q", path, ErrMissingField, fmt.Sprintf("benchmarks[%s].criterion_estimates_v1.mean", name))
		}
		if bench.Estimates.Mean.PointEstimate == nil {
			return Document{}, fmt.Errorf("%s: %w %q", path, ErrMissingField, fmt.Sprintf("benchmarks[%s].criterion_estimates_v1.mean.point_estimate", name))
		}
		doc.Benchmarks[name] = *bench.Estimates.Mean.PointEstimate
	}
	return doc, nil
}
