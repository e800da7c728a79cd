// Command noisegen synthesizes power-law clock noise and writes it as a
// plain-text time series, one sample per line.
//
// Usage:
//
//	noisegen [flags] [type=target ...]
//
// Each positional argument names a noise type and the Allan deviation it
// should contribute at tau = tau0; the components are synthesized
// independently and summed. Alternatively a single raw run can be
// requested with -qd and -b.
//
// Examples:
//
//	noisegen wfm=3.5e-13
//	noisegen -n 65536 -seed 42 wpm=2e-11 wfm=3.5e-13 ffm=1e-16
//	noisegen -qd 4e-22 -b -2 -o noise.txt
//	noisegen -psd -n 65536 wfm=1e-13
//	noisegen -list
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-noise/noise"
	"github.com/cwbudde/algo-noise/spectral"
	"github.com/cwbudde/algo-noise/stability"
)

var registry = map[string]stability.NoiseType{
	"wpm":  stability.WhitePhase,
	"fpm":  stability.FlickerPhase,
	"wfm":  stability.WhiteFrequency,
	"ffm":  stability.FlickerFrequency,
	"rwfm": stability.RandomWalkFrequency,
}

type component struct {
	qd float64
	b  float64
}

func main() {
	n := flag.Int("n", 4096, "number of samples, a power of two")
	tau0 := flag.Float64("tau0", 1.0, "sample interval in seconds")
	seed := flag.Uint64("seed", 0, "random seed (0 seeds from entropy)")
	out := flag.String("o", "", "output file (default stdout)")
	showPSD := flag.Bool("psd", false, "print a Welch PSD slope estimate of the result to stderr")
	list := flag.Bool("list", false, "list known noise type names")
	qdFlag := flag.Float64("qd", math.NaN(), "raw discrete variance (requires -b, replaces type=target args)")
	bFlag := flag.Float64("b", math.NaN(), "raw phase PSD slope (requires -qd)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: noisegen [flags] [type=target ...]\n\n")
		fmt.Fprintf(os.Stderr, "Synthesizes power-law clock noise as phase data, one sample per line.\n")
		fmt.Fprintf(os.Stderr, "Each type=target pair adds a component sized so its Allan deviation\n")
		fmt.Fprintf(os.Stderr, "at tau = tau0 equals the target.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  noisegen wfm=3.5e-13\n")
		fmt.Fprintf(os.Stderr, "  noisegen -n 65536 -seed 42 wpm=2e-11 wfm=3.5e-13 ffm=1e-16\n")
		fmt.Fprintf(os.Stderr, "  noisegen -qd 4e-22 -b -2 -o noise.txt\n")
		fmt.Fprintf(os.Stderr, "  noisegen -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	components, err := resolveComponents(flag.Args(), *qdFlag, *bFlag, *tau0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	var opts []noise.Option
	if *seed != 0 {
		opts = append(opts, noise.WithSeed(*seed))
	}
	gen := noise.NewGenerator(opts...)

	sum := make([]float64, *n)
	for _, c := range components {
		x, err := gen.Generate(*n, c.qd, c.b)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		for i, v := range x {
			sum[i] += v
		}
	}

	if err := writeSamples(*out, sum); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *showPSD {
		reportPSD(sum, *tau0)
	}
}

func printList() {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\tSlope\tNoise type\n")
	fmt.Fprintf(tw, "----\t-----\t----------\n")
	for _, name := range names {
		nt := registry[name]
		fmt.Fprintf(tw, "%s\t%g\t%s\n", name, nt.Slope(), nt)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func resolveComponents(args []string, qd, b, tau0 float64) ([]component, error) {
	rawMode := !math.IsNaN(qd) || !math.IsNaN(b)
	if rawMode {
		if math.IsNaN(qd) || math.IsNaN(b) {
			return nil, fmt.Errorf("-qd and -b must be given together")
		}
		if len(args) > 0 {
			return nil, fmt.Errorf("type=target arguments cannot be combined with -qd/-b")
		}
		return []component{{qd: qd, b: b}}, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("no noise components given (pass type=target pairs, or -qd with -b)")
	}

	components := make([]component, 0, len(args))
	for _, arg := range args {
		name, val, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("malformed component %q (want type=target)", arg)
		}

		nt, ok := registry[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown noise type %q (use -list to see available)", name)
		}

		sigma, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("bad target deviation %q for %s: %v", val, name, err)
		}

		qd, err := stability.QdForADEV(sigma, nt.Slope(), tau0, tau0)
		if err != nil {
			return nil, fmt.Errorf("sizing %s: %v", name, err)
		}

		components = append(components, component{qd: qd, b: nt.Slope()})
	}

	return components, nil
}

func writeSamples(path string, samples []float64) error {
	var w *bufio.Writer
	if path == "" {
		w = bufio.NewWriter(os.Stdout)
	} else {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = bufio.NewWriter(f)
	}

	for _, v := range samples {
		if _, err := fmt.Fprintf(w, "%.12e\n", v); err != nil {
			return err
		}
	}

	return w.Flush()
}

func reportPSD(samples []float64, tau0 float64) {
	freqs, psd, err := spectral.PSD(samples, 1/tau0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: psd estimate failed: %v\n", err)
		return
	}

	slope, intercept, err := spectral.FitSlope(freqs, psd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: slope fit failed: %v\n", err)
		return
	}

	fmt.Fprintf(os.Stderr, "welch psd: %d bins, fitted slope %.2f, level %.3e at 1 Hz\n",
		len(psd), slope, math.Pow(10, intercept))
}
