// Command fresnelsampler sweeps a range of arguments through the Fresnel
// integral evaluator and writes the integral pairs as CSV.
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
		lMin   = flag.Float64("l-min", -0.2-1.0/7, "lower bound of the argument range")
		lMax   = flag.Float64("l-max", 0.2+1.0/7, "upper bound of the argument range")
		lSteps = flag.Int("l-steps", 200000, "number of argument samples")
		out    = flag.String("o", "sampled_fresnel_integral.csv", "output file")
	)
	flag.Parse()

	if *lSteps < 2 {
		slog.Error("step count must be at least 2", "l-steps", *lSteps)
		os.Exit(2)
	}

	ls := floats.Span(make([]float64, *lSteps), *lMin, *lMax)

	f, err := os.Create(*out)
	if err != nil {
		slog.Error("creating output file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	slog.Info("sampling Fresnel integrals", "samples", len(ls), "file", *out)

	w := csv.NewWriter(f)
	if err := w.Write([]string{"l", "x", "y"}); err != nil {
		slog.Error("writing header", "error", err)
		os.Exit(1)
	}

	count := 0
	for _, l := range ls {
		c, s, err := clothoid.Fresnel(l)
		if err != nil {
			slog.Error("evaluating Fresnel integrals", "l", l, "error", err)
			os.Exit(1)
		}
		err = w.Write([]string{
			formatFloat(l),
			formatFloat(c),
			formatFloat(s),
		})
		if err != nil {
			slog.Error("writing record", "error", err)
			os.Exit(1)
		}
		count++
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
