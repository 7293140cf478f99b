package perfdata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// writeDataset writes a minimal dataset file into dir.
func writeDataset(t *testing.T, dir, name, version, timestamp string, mean float64) {
	t.Helper()
	ds := Dataset{
		Metadata: Metadata{Version: version, Timestamp: timestamp},
		Benchmarks: []Record{{
			Method:     "CacheHit",
			Parameters: map[string]any{"DataSize": 1, "ModelType": "Small"},
			Statistics: Statistics{Mean: mean},
		}},
	}
	b, err := json.Marshal(ds)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), b, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadOrdersByTimestamp(t *testing.T) {
	dir := t.TempDir()
	// Filenames deliberately disagree with timestamps; the timestamp wins.
	writeDataset(t, dir, "benchmark-20240103.json", "1.0.2", "2024-01-01T00:00:00Z", 500)
	writeDataset(t, dir, "benchmark-20240101.json", "1.0.0", "2024-01-02T00:00:00Z", 510)
	writeDataset(t, dir, "benchmark-20240102.json", "1.0.1", "2024-01-03T00:00:00Z", 520)

	datasets, err := Load(dir, "", 0, OldestFirst)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(datasets) != 3 {
		t.Fatalf("expected 3 datasets got %d", len(datasets))
	}
	for i, want := range []string{"1.0.2", "1.0.0", "1.0.1"} {
		if datasets[i].Metadata.Version != want {
			t.Fatalf("oldest-first position %d: got %s want %s", i, datasets[i].Metadata.Version, want)
		}
	}

	datasets, err = Load(dir, "", 0, NewestFirst)
	if err != nil {
		t.Fatalf("load newest-first: %v", err)
	}
	if datasets[0].Metadata.Version != "1.0.1" || datasets[2].Metadata.Version != "1.0.2" {
		t.Fatalf("newest-first order wrong: %s .. %s", datasets[0].Metadata.Version, datasets[2].Metadata.Version)
	}
}

func TestLoadLimitKeepsMostRecentFiles(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "benchmark-20240101.json", "1.0.0", "2024-01-01T00:00:00Z", 500)
	writeDataset(t, dir, "benchmark-20240102.json", "1.0.1", "2024-01-02T00:00:00Z", 510)
	writeDataset(t, dir, "benchmark-20240103.json", "1.0.2", "2024-01-03T00:00:00Z", 520)

	datasets, err := Load(dir, "", 2, OldestFirst)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(datasets) != 2 {
		t.Fatalf("expected 2 datasets got %d", len(datasets))
	}
	if datasets[0].Metadata.Version != "1.0.1" || datasets[1].Metadata.Version != "1.0.2" {
		t.Fatalf("limit kept wrong files: %s, %s", datasets[0].Metadata.Version, datasets[1].Metadata.Version)
	}
}

func TestLoadSkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "benchmark-20240101.json", "1.0.0", "2024-01-01T00:00:00Z", 500)
	if err := os.WriteFile(filepath.Join(dir, "benchmark-20240102.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write malformed: %v", err)
	}

	datasets, err := Load(dir, "", 0, OldestFirst)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(datasets) != 1 {
		t.Fatalf("expected malformed file to be skipped, got %d datasets", len(datasets))
	}
	if datasets[0].SourceFile() != "benchmark-20240101.json" {
		t.Fatalf("unexpected source file %s", datasets[0].SourceFile())
	}
}

func TestLoadNoData(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir, "", 0, OldestFirst); err != ErrNoData {
		t.Fatalf("expected ErrNoData got %v", err)
	}
	// A directory containing only unparsable files is also "no data".
	if err := os.WriteFile(filepath.Join(dir, "benchmark-bad.json"), []byte("??"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(dir, "", 0, OldestFirst); err != ErrNoData {
		t.Fatalf("expected ErrNoData got %v", err)
	}
}

func TestLoadLatest(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "benchmark-20240101.json", "1.0.0", "2024-01-01T00:00:00Z", 500)
	writeDataset(t, dir, "benchmark-20240102.json", "1.0.1", "2024-01-02T00:00:00Z", 510)

	ds, err := LoadLatest(dir, "")
	if err != nil {
		t.Fatalf("load latest: %v", err)
	}
	if ds.Metadata.Version != "1.0.1" {
		t.Fatalf("expected latest version 1.0.1 got %s", ds.Metadata.Version)
	}
}

// Loading then re-serializing must preserve every (method, parameters,
// mean) triple, including statistics fields this code never consumes.
func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	raw := `{
  "metadata": {"version": "1.0.0", "timestamp": "2024-01-01T00:00:00Z"},
  "benchmarks": [
    {"method": "CacheHit", "parameters": {"DataSize": 1, "ModelType": "Small"}, "statistics": {"mean": 512.5, "median": 500, "stdDev": 12.5, "min": 480, "max": 600}},
    {"method": "CacheMiss", "parameters": {"DataSize": 10, "ModelType": "Large"}, "statistics": {"mean": 125000}}
  ]
}`
	if err := os.WriteFile(filepath.Join(dir, "benchmark-20240101.json"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	datasets, err := Load(dir, "", 0, OldestFirst)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	out, err := json.Marshal(datasets[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again Dataset
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("unmarshal round-trip: %v", err)
	}
	if len(again.Benchmarks) != 2 {
		t.Fatalf("lost benchmarks in round-trip: %d", len(again.Benchmarks))
	}
	for i, r := range again.Benchmarks {
		orig := datasets[0].Benchmarks[i]
		if r.Method != orig.Method || r.Statistics.Mean != orig.Statistics.Mean {
			t.Fatalf("record %d changed: %+v vs %+v", i, r, orig)
		}
		for k, v := range orig.Parameters {
			if r.Parameters[k] != v {
				t.Fatalf("record %d parameter %s changed: %v vs %v", i, k, r.Parameters[k], v)
			}
		}
	}
	if again.Benchmarks[0].Statistics.Median != 500 || again.Benchmarks[0].Statistics.Max != 600 {
		t.Fatalf("extra statistics fields lost: %+v", again.Benchmarks[0].Statistics)
	}
}
