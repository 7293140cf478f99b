package perfdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// DefaultPattern matches the files the benchmarking harness exports.
const DefaultPattern = "benchmark-*.json"

// ErrNoData reports that no usable dataset was found. Callers treat it
// as a distinct "nothing to do" condition rather than a crash.
var ErrNoData = errors.New("no benchmark data found")

// Order selects the chronological direction of a Load result.
type Order int

const (
	OldestFirst Order = iota
	NewestFirst
)

// Load reads every file in dir matching pattern (DefaultPattern when
// empty) and returns the parsed datasets in the requested order.
//
// When limit > 0 only the limit most recent files are read; "most
// recent" here is lexicographic filename order, which the harness
// naming convention keeps aligned with run time. The parsed result is
// always ordered by metadata.timestamp, filename as tie-break — the
// timestamp is the one canonical ordering key.
//
// A file that cannot be read or parsed is skipped with a warning; Load
// only fails when nothing usable remains, returning ErrNoData.
func Load(dir, pattern string, limit int, order Order) ([]Dataset, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}

	datasets := make([]Dataset, 0, len(files))
	for _, path := range files {
		b, err := os.ReadFile(path)
		if err != nil {
			Warnf("skipping %s: %v", path, err)
			continue
		}
		var ds Dataset
		if err := json.Unmarshal(b, &ds); err != nil {
			Warnf("skipping %s: malformed JSON: %v", path, err)
			continue
		}
		ds.file = filepath.Base(path)
		datasets = append(datasets, ds)
	}
	if len(datasets) == 0 {
		return nil, ErrNoData
	}

	times := make(map[string]time.Time, len(datasets))
	for i := range datasets {
		times[datasets[i].file] = datasetTime(&datasets[i])
	}
	sort.SliceStable(datasets, func(i, j int) bool {
		ti := times[datasets[i].file]
		tj := times[datasets[j].file]
		if ti.Equal(tj) {
			return datasets[i].file < datasets[j].file
		}
		return ti.Before(tj)
	})
	if order == NewestFirst {
		for i, j := 0, len(datasets)-1; i < j; i, j = i+1, j-1 {
			datasets[i], datasets[j] = datasets[j], datasets[i]
		}
	}
	Debugf("loaded %d datasets from %s", len(datasets), dir)
	return datasets, nil
}

// LoadLatest returns the single most recent dataset.
func LoadLatest(dir, pattern string) (Dataset, error) {
	datasets, err := Load(dir, pattern, 1, NewestFirst)
	if err != nil {
		return Dataset{}, err
	}
	return datasets[0], nil
}

func datasetTime(d *Dataset) time.Time {
	t, err := d.Metadata.Time()
	if err != nil {
		Warnf("%s: %v", d.file, err)
		return time.Time{}
	}
	return t
}
