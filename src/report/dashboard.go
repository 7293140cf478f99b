package report

import (
	"fmt"
	"strings"

	"github.com/eoniclabs/methodcache-perf/src/perfdata"
)

// Dashboard assembles the standalone PERFORMANCE.md document. datasets
// must be ordered oldest-first; charts maps method name to rendered
// chart markup (inline SVG, an image link, or a placeholder comment).
func Dashboard(datasets []perfdata.Dataset, charts map[string]string, cfg Config) string {
	if len(datasets) == 0 {
		return "No performance data available.\n"
	}
	latest := &datasets[len(datasets)-1]
	date := latest.Metadata.Timestamp
	if len(date) >= 10 {
		date = date[:10]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# 📊 MethodCache Performance Dashboard\n\n")
	fmt.Fprintf(&b, "**Latest Version:** %s\n", latest.Metadata.Version)
	fmt.Fprintf(&b, "**Last Updated:** %s\n", date)
	fmt.Fprintf(&b, "**Total Benchmark Runs:** %d\n\n", len(datasets))
	b.WriteString("## 🚀 Current Performance Summary\n\n")
	b.WriteString(SummaryTable(latest, cfg))
	b.WriteString("\n\n## 📈 Performance Trends\n")
	for _, cs := range cfg.Charts {
		markup, ok := charts[cs.Method]
		if !ok {
			markup = "<!-- Chart not available -->"
		}
		fmt.Fprintf(&b, "\n### %s\n%s\n", cs.Heading, markup)
	}
	b.WriteString("\n---\n*Charts automatically generated from benchmark data. See [performance data](.performance-data/) for raw results.*\n")
	return b.String()
}
