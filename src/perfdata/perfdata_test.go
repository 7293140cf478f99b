package perfdata

import "testing"

func sampleDataset() Dataset {
	return Dataset{
		Metadata: Metadata{Version: "1.0.0", Timestamp: "2024-01-01T00:00:00Z"},
		Benchmarks: []Record{
			{Method: "CacheHit", Parameters: map[string]any{"DataSize": float64(1), "ModelType": "Small"}, Statistics: Statistics{Mean: 500}},
			{Method: "CacheHit", Parameters: map[string]any{"DataSize": float64(1), "ModelType": "Small"}, Statistics: Statistics{Mean: 999}},
			{Method: "CacheHit", Parameters: map[string]any{"DataSize": float64(10), "ModelType": "Small"}, Statistics: Statistics{Mean: 750}},
			{Method: "CacheMiss", Parameters: map[string]any{"DataSize": float64(1), "ModelType": "Large"}, Statistics: Statistics{Mean: 125000}},
		},
	}
}

func TestFindFirstMatchWins(t *testing.T) {
	ds := sampleDataset()
	r := ds.Find("CacheHit", 1, "Small")
	if r == nil {
		t.Fatal("expected a record")
	}
	if r.Statistics.Mean != 500 {
		t.Fatalf("duplicate resolution should take the first match, got mean %v", r.Statistics.Mean)
	}
	if ds.Find("CacheHit", 2, "Small") != nil {
		t.Fatal("unexpected match for DataSize=2")
	}
	if ds.Find("NoCaching", 1, "Small") != nil {
		t.Fatal("unexpected match for absent method")
	}
}

func TestParamHelpers(t *testing.T) {
	r := Record{Parameters: map[string]any{"DataSize": float64(5), "Native": 7, "ModelType": "Medium"}}
	if n, ok := r.ParamInt("DataSize"); !ok || n != 5 {
		t.Fatalf("float64 param: got %d ok=%v", n, ok)
	}
	if n, ok := r.ParamInt("Native"); !ok || n != 7 {
		t.Fatalf("int param: got %d ok=%v", n, ok)
	}
	if _, ok := r.ParamInt("ModelType"); ok {
		t.Fatal("string param should not parse as int")
	}
	if s, ok := r.ParamString("ModelType"); !ok || s != "Medium" {
		t.Fatalf("string param: got %q ok=%v", s, ok)
	}
}

func TestFormatNanos(t *testing.T) {
	cases := []struct {
		ns   float64
		want string
	}{
		{500, "500 ns"},
		{999, "999 ns"},
		{1000, "1.0 μs"},
		{12500, "12.5 μs"},
		{999999, "1000.0 μs"},
		{1000000, "1.0 ms"},
		{2500000, "2.5 ms"},
	}
	for _, c := range cases {
		if got := FormatNanos(c.ns); got != c.want {
			t.Fatalf("FormatNanos(%v) = %q, want %q", c.ns, got, c.want)
		}
	}
}

func TestMetadataTime(t *testing.T) {
	m := Metadata{Timestamp: "2024-01-02T03:04:05Z"}
	ts, err := m.Time()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ts.Year() != 2024 || ts.Hour() != 3 {
		t.Fatalf("unexpected time %v", ts)
	}
	if _, err := (Metadata{Timestamp: "yesterday"}).Time(); err == nil {
		t.Fatal("expected error for bad timestamp")
	}
}
