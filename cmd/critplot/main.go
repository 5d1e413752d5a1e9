package main

import (
	"fmt"
	"os"

	"github.com/thiagonache/critplot"
)

var usage = fmt.Sprintf("Usage: %s <baseline.json> <comparison.json> <chart.png>", os.Args[0])

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
	if err := critplot.RunCLI(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
