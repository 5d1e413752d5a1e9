package critplot

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrUsage            = errors.New("wrong number of arguments")
	ErrValueCannotBeNil = errors.New("value cannot be nil")
)

type Plotter struct {
	baselinePath   string
	comparisonPath string
	outputPath     string
	stdout, stderr io.Writer
}

type Option func(*Plotter) error

func NewPlotter(opts ...Option) (*Plotter, error) {
	plotter := &Plotter{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, o := range opts {
		err := o(plotter)
		if err != nil {
			return nil, err
		}
	}
	if plotter.baselinePath == "" || plotter.comparisonPath == "" || plotter.outputPath == "" {
		return nil, fmt.Errorf("%w: baseline, comparison and output paths are required", ErrUsage)
	}
	return plotter, nil
}

func WithInputsFromArgs(args []string) Option {
	return func(p *Plotter) error {
		if len(args) != 3 {
			return fmt.Errorf("%w: want 3 (baseline file, comparison file, output image), got %d", ErrUsage, len(args))
		}
		p.baselinePath = args[0]
		p.comparisonPath = args[1]
		p.outputPath = args[2]
		return nil
	}
}

func WithStdout(w io.Writer) Option {
	return func(p *Plotter) error {
		if w == nil {
			return ErrValueCannotBeNil
		}
		p.stdout = w
		return nil
	}
}

func WithStderr(w io.Writer) Option {
	return func(p *Plotter) error {
		if w == nil {
			return ErrValueCannotBeNil
		}
		p.stderr = w
		return nil
	}
}

func (p Plotter) BaselinePath() string {
	return p.baselinePath
}

func (p Plotter) ComparisonPath() string {
	return p.comparisonPath
}

func (p Plotter) OutputPath() string {
	return p.outputPath
}

func (p *Plotter) Run() error {
	baseline, err := LoadDocument(p.baselinePath)
	if err != nil {
		return err
	}
	comparison, err := LoadDocument(p.comparisonPath)
	if err != nil {
		return err
	}
	result, err := Compare(baseline, comparison)
	if err != nil {
		return err
	}
	if len(result.Categories) == 0 {
		fmt.Fprintf(p.stderr, "no benchmarks in common between %s and %s\n", p.baselinePath, p.comparisonPath)
	}
	err = result.Render(p.outputPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.stdout, "wrote %s\n", p.outputPath)
	return nil
}

func RunCLI(args []string) error {
	plotter, err := NewPlotter(WithInputsFromArgs(args))
	if err != nil {
		return err
	}
	return plotter.Run()
}
