package perfdata

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/tools/benchmark/parse"
)

// ParseGoBench converts `go test -bench` output into a Dataset so Go
// benchmark runs can feed the same reporting pipeline as the harness
// exports. Sub-benchmark path segments of the form key=value become
// parameters, e.g.
//
//	BenchmarkCacheHit/DataSize=1/ModelType=Small-8   1000  512 ns/op
//
// yields method "CacheHit" with DataSize=1 and ModelType="Small".
func ParseGoBench(r io.Reader, version string, now time.Time) (Dataset, error) {
	sc := bufio.NewScanner(r)
	var recs []Record
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "Benchmark") {
			continue
		}
		b, err := parse.ParseLine(line)
		if err != nil {
			Warnf("skipping benchmark line %q: %v", line, err)
			continue
		}
		method, params := splitBenchName(b.Name)
		recs = append(recs, Record{
			Method:     method,
			Parameters: params,
			Statistics: Statistics{Mean: b.NsPerOp},
		})
	}
	if err := sc.Err(); err != nil {
		return Dataset{}, err
	}
	if len(recs) == 0 {
		return Dataset{}, ErrNoData
	}
	return Dataset{
		Metadata: Metadata{
			Version:   version,
			Timestamp: now.UTC().Format(time.RFC3339),
		},
		Benchmarks: recs,
	}, nil
}

// splitBenchName breaks a benchmark name into method and parameters,
// dropping the Benchmark prefix and the trailing -GOMAXPROCS suffix.
func splitBenchName(name string) (string, map[string]any) {
	parts := strings.Split(name, "/")
	last := parts[len(parts)-1]
	if i := strings.LastIndex(last, "-"); i > 0 {
		if _, err := strconv.Atoi(last[i+1:]); err == nil {
			parts[len(parts)-1] = last[:i]
		}
	}
	method := strings.TrimPrefix(parts[0], "Benchmark")
	params := make(map[string]any)
	for _, p := range parts[1:] {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(v); err == nil {
			params[k] = n
		} else {
			params[k] = v
		}
	}
	return method, params
}
