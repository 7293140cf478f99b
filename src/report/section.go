package report

import (
	"fmt"

	"github.com/eoniclabs/methodcache-perf/src/perfdata"
)

// Speedup returns baseline-mean / fast-mean at the canonical parameter
// combination. ok is false unless both means exist and are positive.
func Speedup(ds *perfdata.Dataset, cfg Config) (float64, bool) {
	fast := ds.Find(cfg.FastMethod, cfg.DataSize, cfg.ModelType)
	base := ds.Find(cfg.BaselineMethod, cfg.DataSize, cfg.ModelType)
	if fast == nil || base == nil {
		return 0, false
	}
	if fast.Statistics.Mean <= 0 || base.Statistics.Mean <= 0 {
		return 0, false
	}
	return base.Statistics.Mean / fast.Statistics.Mean, true
}

// Section builds the complete README performance section from the most
// recent dataset.
func Section(ds *perfdata.Dataset, cfg Config) string {
	badges := Badges(ds, cfg)
	table := Table(ds, cfg)

	speedupText := ""
	if speedup, ok := Speedup(ds, cfg); ok {
		speedupText = fmt.Sprintf("\n🚀 **Cache speedup: %.0fx faster** than no caching", speedup)
	}

	date := ds.Metadata.Timestamp
	if t, err := ds.Metadata.Time(); err == nil {
		date = t.Format("January 2, 2006")
	}

	return fmt.Sprintf(`## ⚡ Performance

%s

MethodCache delivers exceptional performance with microsecond-level cache hits:%s

%s

> 📊 **Benchmarks** run on .NET 9.0 with BenchmarkDotNet. Results from %s.
>
> 📈 [View detailed performance trends](PERFORMANCE.md) | 🔍 [Raw benchmark data](.performance-data/)

### Performance Highlights

- **Cache Hits**: Sub-microsecond response times for cached data
- **Memory Efficient**: Minimal memory allocations during cache operations
- **Scalable**: Consistent performance across different data sizes
- **Zero-Overhead**: Negligible impact when caching is disabled`,
		badges, speedupText, table, date)
}
