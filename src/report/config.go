// Package report turns the latest benchmark dataset into README badges,
// comparison tables and markdown documents, and splices generated
// sections into existing documents.
package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tier classifies a mean latency into a display label and badge color.
// MaxNs is an exclusive upper bound; a tier with MaxNs <= 0 is the
// catch-all and must come last.
type Tier struct {
	MaxNs  float64 `yaml:"max_ns"`
	Format string  `yaml:"format"` // printf verb applied to the scaled value
	Div    float64 `yaml:"div"`    // divisor applied before formatting
	Color  string  `yaml:"color"`
}

// BadgeSpec describes one shields.io badge derived from a method's mean.
type BadgeSpec struct {
	Method string `yaml:"method"`
	Name   string `yaml:"name"` // badge label, e.g. "Cache Hit"
	Alt    string `yaml:"alt"`  // markdown image alt text
	Tiers  []Tier `yaml:"tiers"`
}

// ChartSpec names one method to chart and its presentation strings.
type ChartSpec struct {
	Method  string `yaml:"method"`
	Title   string `yaml:"title"`
	Heading string `yaml:"heading"` // dashboard section heading
}

// Config gathers every constant the reporting tools depend on:
// canonical parameter combination, key-method lists, badge thresholds,
// chart specs and document-splice anchors. Defaults reproduce the
// established README and dashboard output; a YAML file can override any
// field.
type Config struct {
	DataSize   int      `yaml:"data_size"`
	ModelType  string   `yaml:"model_type"`
	ModelTypes []string `yaml:"model_types"`
	KeyMethods []string `yaml:"key_methods"`

	// FastMethod / BaselineMethod feed the speedup ratio.
	FastMethod     string `yaml:"fast_method"`
	BaselineMethod string `yaml:"baseline_method"`

	Badges []BadgeSpec `yaml:"badges"`
	Charts []ChartSpec `yaml:"charts"`

	// SectionPattern matches the heading of the README section to
	// replace; Anchors are tried in order when the section is absent.
	SectionPattern string   `yaml:"section_pattern"`
	Anchors        []string `yaml:"anchors"`
}

// DefaultConfig returns the built-in constants.
func DefaultConfig() Config {
	return Config{
		DataSize:       1,
		ModelType:      "Small",
		ModelTypes:     []string{"Small", "Medium", "Large"},
		KeyMethods:     []string{"NoCaching", "CacheMiss", "CacheHit", "CacheHitCold", "CacheInvalidation"},
		FastMethod:     "CacheHit",
		BaselineMethod: "NoCaching",
		Badges: []BadgeSpec{
			{
				Method: "CacheHit",
				Name:   "Cache Hit",
				Alt:    "Cache Hit Performance",
				Tiers: []Tier{
					{MaxNs: 1_000, Format: "%.0fns", Div: 1, Color: "brightgreen"},
					{MaxNs: 10_000, Format: "%.1fμs", Div: 1_000, Color: "green"},
					{Format: "%.0fμs", Div: 1_000, Color: "yellow"},
				},
			},
			{
				Method: "CacheMiss",
				Name:   "Cache Miss",
				Alt:    "Cache Miss Performance",
				Tiers: []Tier{
					{MaxNs: 1_000_000, Format: "%.0fμs", Div: 1_000, Color: "green"},
					{MaxNs: 10_000_000, Format: "%.1fms", Div: 1_000_000, Color: "yellow"},
					{Format: "%.0fms", Div: 1_000_000, Color: "orange"},
				},
			},
		},
		Charts: []ChartSpec{
			{Method: "CacheHit", Title: "Cache Hit Performance Over Time", Heading: "Cache Hit Performance"},
			{Method: "CacheMiss", Title: "Cache Miss Performance Over Time", Heading: "Cache Miss Performance"},
			{Method: "NoCaching", Title: "No Caching Performance Over Time", Heading: "Baseline (No Caching) Performance"},
		},
		SectionPattern: `^## (⚡ )?Performance\b`,
		Anchors:        []string{"## Contributing", "## License", "## Support", "## Documentation"},
	}
}

// LoadConfig returns DefaultConfig overlaid with the YAML file at path.
// An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
