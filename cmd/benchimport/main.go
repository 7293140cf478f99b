// benchimport converts `go test -bench` output into a benchmark-*.json
// dataset so Go benchmarks can feed the reporting pipeline.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/eoniclabs/methodcache-perf/src/perfdata"
)

func main() {
	var (
		input    string
		outDir   string
		version  string
		logLevel string
	)
	flag.StringVar(&input, "input", "", "Benchmark output file (default: stdin)")
	flag.StringVar(&outDir, "out-dir", ".performance-data", "Directory to write the dataset into")
	flag.StringVar(&version, "version", "dev", "Version recorded in the dataset metadata")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()
	perfdata.SetLogLevel(logLevel)

	var r io.Reader = os.Stdin
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			perfdata.Errorf("%v", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	now := time.Now()
	ds, err := perfdata.ParseGoBench(r, version, now)
	if err != nil {
		perfdata.Errorf("parsing benchmark output: %v", err)
		os.Exit(1)
	}

	b, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		perfdata.Errorf("encoding dataset: %v", err)
		os.Exit(1)
	}
	// Timestamped name keeps lexicographic order chronological.
	path := filepath.Join(outDir, "benchmark-"+now.UTC().Format("20060102-150405")+".json")
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		perfdata.Errorf("writing %s: %v", path, err)
		os.Exit(1)
	}
	perfdata.Infof("wrote %s (%d benchmarks)", path, len(ds.Benchmarks))
}
