// readmeperf refreshes the performance section of a README-style
// document from the most recent benchmark dataset.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/eoniclabs/methodcache-perf/src/perfdata"
	"github.com/eoniclabs/methodcache-perf/src/report"
)

func main() {
	var (
		readme     string
		dataDir    string
		configPath string
		logLevel   string
		dryRun     bool
	)
	flag.StringVar(&readme, "readme", "README.md", "Path to the document to update")
	flag.StringVar(&dataDir, "data-dir", ".performance-data", "Directory containing benchmark-*.json files")
	flag.StringVar(&configPath, "config", "", "Optional YAML report config")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&dryRun, "dry-run", false, "Print the generated section instead of updating the file")
	flag.Parse()
	perfdata.SetLogLevel(logLevel)

	cfg, err := report.LoadConfig(configPath)
	if err != nil {
		perfdata.Errorf("%v", err)
		os.Exit(1)
	}

	ds, err := perfdata.LoadLatest(dataDir, perfdata.DefaultPattern)
	if err != nil {
		perfdata.Errorf("loading benchmark data from %s: %v", dataDir, err)
		os.Exit(1)
	}
	perfdata.Infof("using performance data from %s", ds.Metadata.Timestamp)

	section := report.Section(&ds, cfg)
	if dryRun {
		rule := strings.Repeat("=", 80)
		fmt.Println(rule)
		fmt.Println(section)
		fmt.Println(rule)
		return
	}
	if err := report.UpdateFile(readme, section, cfg); err != nil {
		perfdata.Errorf("updating %s: %v", readme, err)
		os.Exit(1)
	}
	perfdata.Infof("%s updated", readme)
}
