// Package perfdata models and loads the benchmark result documents
// (benchmark-*.json) produced by the MethodCache benchmarking harness.
package perfdata

import (
	"encoding/json"
	"fmt"
	"time"
)

// Dataset is one benchmark run's full result document. Datasets are
// read-only snapshots; nothing in this repository ever writes one back.
type Dataset struct {
	Metadata   Metadata `json:"metadata"`
	Benchmarks []Record `json:"benchmarks"`

	// file is the basename the dataset was loaded from, used for
	// diagnostics and as an ordering tie-break. Empty for synthetic
	// datasets (e.g. benchimport output).
	file string
}

// Metadata identifies the run that produced a dataset.
type Metadata struct {
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"` // ISO-8601 / RFC 3339
}

// Record is one measured (method, parameters) combination.
type Record struct {
	Method     string         `json:"method"`
	Parameters map[string]any `json:"parameters"`
	Statistics Statistics     `json:"statistics"`
}

// Statistics carries the precomputed values exported by the harness.
// Only Mean is consumed here; the rest must survive a round-trip.
type Statistics struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median,omitempty"`
	StdDev float64 `json:"stdDev,omitempty"`
	Min    float64 `json:"min,omitempty"`
	Max    float64 `json:"max,omitempty"`
}

// SourceFile returns the basename of the file the dataset was loaded
// from, or "" for datasets that were never on disk.
func (d *Dataset) SourceFile() string { return d.file }

// Time parses the run timestamp.
func (m Metadata) Time() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, m.Timestamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", m.Timestamp, err)
	}
	return t, nil
}

// ParamInt returns an integer parameter. JSON decoding yields float64
// for numbers, while imported datasets may hold native ints; both are
// accepted.
func (r *Record) ParamInt(key string) (int, bool) {
	switch v := r.Parameters[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// ParamString returns a string parameter.
func (r *Record) ParamString(key string) (string, bool) {
	s, ok := r.Parameters[key].(string)
	return s, ok
}

// Find returns the first record matching (method, DataSize, ModelType).
// Duplicates within a dataset are resolved by first match.
func (d *Dataset) Find(method string, dataSize int, modelType string) *Record {
	for i := range d.Benchmarks {
		r := &d.Benchmarks[i]
		if r.Method != method {
			continue
		}
		if n, ok := r.ParamInt("DataSize"); !ok || n != dataSize {
			continue
		}
		if s, _ := r.ParamString("ModelType"); s != modelType {
			continue
		}
		return r
	}
	return nil
}

// HasMethod reports whether any record measures the given method.
func (d *Dataset) HasMethod(method string) bool {
	for i := range d.Benchmarks {
		if d.Benchmarks[i].Method == method {
			return true
		}
	}
	return false
}

// FormatNanos renders a nanosecond mean in the tiered human unit used
// across tables and chart axes: ns below 1μs, μs below 1ms, else ms.
func FormatNanos(ns float64) string {
	switch {
	case ns < 1_000:
		return fmt.Sprintf("%.0f ns", ns)
	case ns < 1_000_000:
		return fmt.Sprintf("%.1f μs", ns/1_000)
	default:
		return fmt.Sprintf("%.1f ms", ns/1_000_000)
	}
}
