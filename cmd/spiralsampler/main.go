// Command spiralsampler sweeps a grid of (curvature rate, arc length) pairs
// through the spiral evaluator and writes the sampled poses as CSV.
package main

import (
	"encoding/csv"
	"flag"
	"log/slog"
	"os"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/roadgeom/clothoid"
)

func main() {
	var (
		cdotMin   = flag.Float64("cdot-min", -0.06777398710873976, "lower bound of the curvature rate range")
		cdotMax   = flag.Float64("cdot-max", 0.012627715579067441, "upper bound of the curvature rate range")
		cdotSteps = flag.Int("cdot-steps", 100, "number of curvature rate samples")
		sMin      = flag.Float64("s-min", -5463.268, "lower bound of the arc length range")
		sMax      = flag.Float64("s-max", 38683.6, "upper bound of the arc length range")
		sSteps    = flag.Int("s-steps", 10000, "number of arc length samples")
		out       = flag.String("o", "sampled_spiral.csv", "output file")
	)
	flag.Parse()

	if *cdotSteps < 2 || *sSteps < 2 {
		slog.Error("step counts must be at least 2", "cdot-steps", *cdotSteps, "s-steps", *sSteps)
		os.Exit(2)
	}

	cdots := floats.Span(make([]float64, *cdotSteps), *cdotMin, *cdotMax)
	ss := floats.Span(make([]float64, *sSteps), *sMin, *sMax)

	f, err := os.Create(*out)
	if err != nil {
		slog.Error("creating output file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	slog.Info("sampling spiral grid",
		"cdot_samples", len(cdots),
		"s_samples", len(ss),
		"file", *out,
	)

	w := csv.NewWriter(f)
	if err := w.Write([]string{"cdot", "s", "x", "y", "t"}); err != nil {
		slog.Error("writing header", "error", err)
		os.Exit(1)
	}

	count := 0
	for _, cdot := range cdots {
		sp := clothoid.Spiral{CDot: cdot}
		for _, s := range ss {
			pose, err := sp.Eval(s)
			if err != nil {
				slog.Error("evaluating spiral", "cdot", cdot, "s", s, "error", err)
				os.Exit(1)
			}
			x, y := pose.Point.Splat()
			err = w.Write([]string{
				formatFloat(cdot),
				formatFloat(s),
				formatFloat(x),
				formatFloat(y),
				formatFloat(pose.Heading),
			})
			if err != nil {
				slog.Error("writing record", "error", err)
				os.Exit(1)
			}
			count++
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		slog.Error("flushing output", "error", err)
		os.Exit(1)
	}

	slog.Info("wrote sample points", "count", count)
}

// formatFloat renders v with 17 significant digits, enough to round-trip any
// float64.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 17, 64)
}
