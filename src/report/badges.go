package report

import (
	"fmt"
	"strings"

	"github.com/eoniclabs/methodcache-perf/src/perfdata"
)

// Classify maps a mean latency onto the first tier whose exclusive
// upper bound it falls under, returning the formatted label and color.
func Classify(ns float64, tiers []Tier) (label, color string) {
	for _, t := range tiers {
		if t.MaxNs <= 0 || ns < t.MaxNs {
			div := t.Div
			if div == 0 {
				div = 1
			}
			return fmt.Sprintf(t.Format, ns/div), t.Color
		}
	}
	return "", ""
}

// Badges renders the shields.io badge row for the dataset: one badge
// per configured method that has a record at the canonical parameter
// combination, plus the version badge.
func Badges(ds *perfdata.Dataset, cfg Config) string {
	var badges []string
	for _, spec := range cfg.Badges {
		r := ds.Find(spec.Method, cfg.DataSize, cfg.ModelType)
		if r == nil {
			continue
		}
		label, color := Classify(r.Statistics.Mean, spec.Tiers)
		badges = append(badges, badgeMarkdown(spec.Alt, spec.Name, label, color))
	}
	badges = append(badges, badgeMarkdown("Benchmark Version", "Benchmarked", ds.Metadata.Version, "blue"))
	return strings.Join(badges, " ")
}

func badgeMarkdown(alt, name, value, color string) string {
	escaped := strings.ReplaceAll(name, " ", "%20")
	return fmt.Sprintf("![%s](https://img.shields.io/badge/%s-%s-%s)", alt, escaped, value, color)
}
