// perfcharts renders trend charts from the benchmark-*.json history and
// assembles the PERFORMANCE.md dashboard.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eoniclabs/methodcache-perf/src/chart"
	"github.com/eoniclabs/methodcache-perf/src/perfdata"
	"github.com/eoniclabs/methodcache-perf/src/report"
)

func main() {
	var (
		dataDir    string
		outDir     string
		dashboard  string
		format     string
		configPath string
		logLevel   string
		limit      int
		dryRun     bool
	)
	flag.StringVar(&dataDir, "data-dir", ".performance-data", "Directory containing benchmark-*.json files")
	flag.StringVar(&outDir, "output-dir", ".performance-data", "Output directory for chart files")
	flag.StringVar(&dashboard, "dashboard", "PERFORMANCE.md", "Path of the dashboard document (empty to skip)")
	flag.StringVar(&format, "format", "svg", "Chart output format: svg or png")
	flag.StringVar(&configPath, "config", "", "Optional YAML report config")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.IntVar(&limit, "limit", 50, "Maximum number of data files to process")
	flag.BoolVar(&dryRun, "dry-run", false, "Print the dashboard instead of writing files")
	flag.Parse()
	perfdata.SetLogLevel(logLevel)

	cfg, err := report.LoadConfig(configPath)
	if err != nil {
		perfdata.Errorf("%v", err)
		os.Exit(1)
	}
	if format != "svg" && format != "png" {
		perfdata.Errorf("unknown chart format %q", format)
		os.Exit(1)
	}

	datasets, err := perfdata.Load(dataDir, perfdata.DefaultPattern, limit, perfdata.OldestFirst)
	if err != nil {
		perfdata.Errorf("loading benchmark data from %s: %v", dataDir, err)
		os.Exit(1)
	}
	perfdata.Infof("loaded %d benchmark datasets", len(datasets))

	charts := make(map[string]string, len(cfg.Charts))
	for _, cs := range cfg.Charts {
		points := chart.Extract(datasets, cs.Method, cfg.DataSize, cfg.ModelType)
		name := fmt.Sprintf("chart-%s.%s", strings.ToLower(cs.Method), format)
		path := filepath.Join(outDir, name)

		var content []byte
		switch format {
		case "png":
			png, err := chart.RenderPNG(points, cs.Title, chart.DefaultOptions())
			if errors.Is(err, chart.ErrInsufficientData) {
				perfdata.Warnf("%s: %d valid points, skipping chart", cs.Method, len(points))
				charts[cs.Method] = chart.Placeholder(cs.Method)
				continue
			} else if err != nil {
				perfdata.Errorf("rendering %s chart: %v", cs.Method, err)
				os.Exit(1)
			}
			content = png
			charts[cs.Method] = fmt.Sprintf("![%s](%s)", cs.Title, name)
		default:
			svg, err := chart.RenderSVG(points, cs.Title, chart.DefaultOptions())
			if errors.Is(err, chart.ErrInsufficientData) {
				perfdata.Warnf("%s: %d valid points, writing placeholder", cs.Method, len(points))
				svg = chart.Placeholder(cs.Method)
			} else if err != nil {
				perfdata.Errorf("rendering %s chart: %v", cs.Method, err)
				os.Exit(1)
			}
			content = []byte(svg)
			charts[cs.Method] = svg
		}

		if dryRun {
			perfdata.Infof("dry-run: would write %s (%d bytes)", path, len(content))
			continue
		}
		if err := os.WriteFile(path, content, 0o644); err != nil {
			perfdata.Errorf("writing %s: %v", path, err)
			os.Exit(1)
		}
		perfdata.Infof("wrote %s", path)
	}

	if dashboard == "" {
		return
	}
	doc := report.Dashboard(datasets, charts, cfg)
	if dryRun {
		fmt.Println(doc)
		return
	}
	if err := os.WriteFile(dashboard, []byte(doc), 0o644); err != nil {
		perfdata.Errorf("writing %s: %v", dashboard, err)
		os.Exit(1)
	}
	perfdata.Infof("performance dashboard generated: %s", dashboard)
}
