package report

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/eoniclabs/methodcache-perf/src/perfdata"
)

// Table renders the README comparison table: one row per key method
// present in the dataset, one column per model type at the canonical
// data size. A cell is "N/A" iff no record matches or its mean is not
// positive.
func Table(ds *perfdata.Dataset, cfg Config) string {
	var b strings.Builder
	b.WriteString("| Operation |")
	for _, mt := range cfg.ModelTypes {
		fmt.Fprintf(&b, " %s Model (%d item) |", mt, cfg.DataSize)
	}
	b.WriteString("\n|-----------|")
	for range cfg.ModelTypes {
		b.WriteString("---------------------|")
	}
	for _, method := range cfg.KeyMethods {
		if !ds.HasMethod(method) {
			continue
		}
		fmt.Fprintf(&b, "\n| %s |", displayName(method))
		for _, mt := range cfg.ModelTypes {
			b.WriteString(" " + cell(ds, method, cfg.DataSize, mt, true) + " |")
		}
	}
	return b.String()
}

// SummaryTable is the dashboard variant: every method in the dataset,
// sorted, without bold markup.
func SummaryTable(ds *perfdata.Dataset, cfg Config) string {
	methods := make(map[string]bool)
	for i := range ds.Benchmarks {
		methods[ds.Benchmarks[i].Method] = true
	}
	names := make([]string, 0, len(methods))
	for m := range methods {
		names = append(names, m)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("| Method |")
	for _, mt := range cfg.ModelTypes {
		fmt.Fprintf(&b, " %s (%d item) |", mt, cfg.DataSize)
	}
	b.WriteString("\n|--------|")
	for range cfg.ModelTypes {
		b.WriteString("----------------|")
	}
	for _, method := range names {
		fmt.Fprintf(&b, "\n| %s |", method)
		for _, mt := range cfg.ModelTypes {
			b.WriteString(" " + cell(ds, method, cfg.DataSize, mt, false) + " |")
		}
	}
	return b.String()
}

func cell(ds *perfdata.Dataset, method string, dataSize int, modelType string, bold bool) string {
	r := ds.Find(method, dataSize, modelType)
	if r == nil || r.Statistics.Mean <= 0 {
		return "N/A"
	}
	v := perfdata.FormatNanos(r.Statistics.Mean)
	if bold {
		return "**" + v + "**"
	}
	return v
}

// displayName splits a CamelCase method identifier into words, so
// "CacheHitCold" reads "Cache Hit Cold".
func displayName(method string) string {
	var b strings.Builder
	for i, r := range method {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
