//dgtraj computes smoothed time series and dispersion statistics for per-frame
//MM-GBSA binding-energy trajectories, and writes plots and reports. With one
//input file it works in single mode, with several it builds a comparison.
//
//	dgtraj [flags] thermal_MMGBSA.csv [more.csv ...]
//
//Input files may be gzip- or zstd-compressed (.csv.gz, .csv.zst).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gbsatools/dgtraj"
	"github.com/gbsatools/dgtraj/dgplot"
	"github.com/gbsatools/dgtraj/dgstat"
)

func parseKind(s string) (dgstat.ErrKind, error) {
	switch strings.ToLower(s) {
	case "stderr", "se":
		return dgstat.StdErr, nil
	case "stddev", "sd":
		return dgstat.StdDev, nil
	case "ci95", "ci":
		return dgstat.CI95, nil
	}
	return 0, fmt.Errorf("unknown error kind %q (want stderr, stddev or ci95)", s)
}

func main() {
	window := flag.Int("window", 10, "running mean window size, in frames")
	kind := flag.String("kind", "stderr", "error band kind: stderr, stddev or ci95")
	totalNs := flag.Float64("time", 100, "total MD length in ns, for the time axis")
	strict := flag.Bool("strict", false, "refuse out-of-range windows instead of clamping")
	png := flag.String("png", "", "write a plot to this file (format from the extension)")
	statsOut := flag.String("stats", "", "write the delimited statistics table to this file")
	data := flag.String("data", "", "write per-frame raw and derived series, one file per ligand, with this prefix")
	jsonOut := flag.String("json", "", "write the full results as JSON to this file")
	title := flag.String("title", "", "plot title (default depends on the ligand)")
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: dgtraj [flags] thermal_MMGBSA.csv [more.csv ...]\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	k, err := parseKind(*kind)
	if err != nil {
		log.Fatal(err)
	}
	opts := dgtraj.DefaultOptions()
	opts.Window(*window)
	opts.Kind(k)
	opts.Strict(*strict)
	opts.TotalNs(*totalNs)

	C, failed := dgtraj.CompareFiles(flag.Args())
	for _, f := range failed {
		log.Printf("%s: %v (skipped)", f.File, f.Err)
	}
	if C.Len() == 0 {
		log.Fatal("no usable input files")
	}

	results := make([]*dgtraj.Result, C.Len())
	for i := 0; i < C.Len(); i++ {
		results[i], err = dgtraj.Analyze(C.Trajectory(i), opts)
		if err != nil {
			log.Fatal(err)
		}
	}

	if *png != "" {
		if C.Len() == 1 {
			err = dgplot.PlotTrajectory(results[0], *title, *png)
		} else {
			err = dgplot.PlotComparison(C, opts, *title, *png)
		}
		if err != nil {
			log.Fatal(err)
		}
	}
	if *statsOut != "" {
		f, err := os.Create(*statsOut)
		if err != nil {
			log.Fatal(err)
		}
		if err := C.WriteStats(f); err != nil {
			log.Fatal(err)
		}
		f.Close()
	}
	if *data != "" {
		for i, res := range results {
			fname := fmt.Sprintf("%s%s_dg_time.csv", *data, C.Rows()[i].Label)
			f, err := os.Create(fname)
			if err != nil {
				log.Fatal(err)
			}
			if err := res.WriteSeries(f); err != nil {
				log.Fatal(err)
			}
			f.Close()
		}
	}
	if *jsonOut != "" {
		f, err := os.Create(*jsonOut)
		if err != nil {
			log.Fatal(err)
		}
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			log.Fatal(err)
		}
		f.Close()
	}
	//the human-readable report always goes to stdout
	if C.Len() == 1 {
		err = results[0].WriteReport(os.Stdout)
	} else {
		err = C.WriteReport(os.Stdout)
	}
	if err != nil {
		log.Fatal(err)
	}
	if len(failed) > 0 {
		os.Exit(1)
	}
}
