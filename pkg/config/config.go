// Package config holds the generator configuration: corpus size, seed,
// fiscal period, output directory, and the sampling distributions for
// table mix, vendor systems, property types, GL masks, degradation
// levels, layout archetypes, and page orientation.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Proportion bounds for one table type in the corpus mix.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// GeneratorConfig is the full configuration for one corpus run.
type GeneratorConfig struct {
	NumPDFs     int    `yaml:"num_pdfs"`
	Seed        int64  `yaml:"seed"`
	PeriodStart string `yaml:"period_start"` // ISO date
	PeriodEnd   string `yaml:"period_end"`
	OutDir      string `yaml:"out_dir"`

	TableMix                 map[string]Range   `yaml:"table_mix"`
	VendorDistribution       map[string]float64 `yaml:"vendor_distribution"`
	PropertyTypeDistribution map[string]float64 `yaml:"property_type_distribution"`
	GLMaskDistribution       map[string]float64 `yaml:"gl_mask_distribution"`
	DegradationDistribution  map[int]float64    `yaml:"degradation_distribution"`
	LayoutDistribution       map[string]float64 `yaml:"layout_distribution"`
	OrientationDistribution  map[string]float64 `yaml:"orientation_distribution"`

	// Logger receives progress lines; nil means stdout.
	Logger io.Writer `yaml:"-"`
}

// Default returns the standard corpus configuration.
func Default() GeneratorConfig {
	return GeneratorConfig{
		NumPDFs:     100,
		Seed:        42,
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-12-31",
		OutDir:      "out",
		TableMix: map[string]Range{
			"CASH_OUT": {0.15, 0.20},
			"CASH_IN":  {0.15, 0.20},
			"BUDGET":   {0.20, 0.25},
			"UNPAID":   {0.10, 0.15},
			"AGING":    {0.10, 0.15},
			"GL":       {0.15, 0.20},
		},
		VendorDistribution: map[string]float64{
			"AKAM_OLD": 0.10, "AKAM_NEW": 0.10, "DOUGLAS": 0.10,
			"FIRSTSERVICE": 0.10, "LINDENWOOD": 0.10, "YARDI": 0.10,
			"APPFOLIO": 0.10, "BUILDIUM": 0.10, "MDS": 0.05,
			"CINC": 0.05, "OTHER": 0.10,
		},
		PropertyTypeDistribution: map[string]float64{
			"CONDO": 0.50, "HOA": 0.30, "COOP": 0.10, "MIXED_USE": 0.10,
		},
		GLMaskDistribution: map[string]float64{
			"NNNN": 0.30, "NNNNN": 0.30, "NN-NNNN-NN": 0.30, "NNNNNN": 0.10,
		},
		DegradationDistribution: map[int]float64{
			1: 0.20, 2: 0.25, 3: 0.25, 4: 0.20, 5: 0.10,
		},
		LayoutDistribution: map[string]float64{
			"horizontal_ledger":  0.55,
			"split_ledger":       0.10,
			"vertical_key_value": 0.10,
			"matrix_budget":      0.15,
			"ragged_pseudotable": 0.10,
		},
		OrientationDistribution: map[string]float64{
			"portrait": 0.60, "landscape": 0.40,
		},
	}
}

// Load reads a YAML config file and merges it over the defaults, so a
// partial file only overrides the keys it names.
func Load(path string) (GeneratorConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c GeneratorConfig) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// Validate checks counts, dates, and that every distribution sums to
// approximately 1.0.
func (c GeneratorConfig) Validate() error {
	if c.NumPDFs < 1 {
		return fmt.Errorf("num_pdfs must be positive, got %d", c.NumPDFs)
	}
	start, err := c.PeriodStartDate()
	if err != nil {
		return err
	}
	end, err := c.PeriodEndDate()
	if err != nil {
		return err
	}
	if !end.After(start) {
		return fmt.Errorf("period_end %s must be after period_start %s", c.PeriodEnd, c.PeriodStart)
	}

	if err := checkSum("vendor_distribution", c.VendorDistribution); err != nil {
		return err
	}
	if err := checkSum("property_type_distribution", c.PropertyTypeDistribution); err != nil {
		return err
	}
	if err := checkSum("gl_mask_distribution", c.GLMaskDistribution); err != nil {
		return err
	}
	if err := checkSum("layout_distribution", c.LayoutDistribution); err != nil {
		return err
	}
	if err := checkSum("orientation_distribution", c.OrientationDistribution); err != nil {
		return err
	}

	var degSum float64
	for level, p := range c.DegradationDistribution {
		if level < 1 || level > 5 {
			return fmt.Errorf("degradation level %d out of range [1,5]", level)
		}
		degSum += p
	}
	if degSum < 0.98 || degSum > 1.02 {
		return fmt.Errorf("degradation_distribution sums to %.3f, want ~1.0", degSum)
	}
	return nil
}

// PeriodStartDate parses the ISO period start.
func (c GeneratorConfig) PeriodStartDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.PeriodStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad period_start %q: %w", c.PeriodStart, err)
	}
	return t, nil
}

// PeriodEndDate parses the ISO period end.
func (c GeneratorConfig) PeriodEndDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.PeriodEnd)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad period_end %q: %w", c.PeriodEnd, err)
	}
	return t, nil
}

// GetLogger returns the configured logger or stdout.
func (c GeneratorConfig) GetLogger() io.Writer {
	if c.Logger != nil {
		return c.Logger
	}
	return os.Stdout
}

func checkSum(name string, dist map[string]float64) error {
	if len(dist) == 0 {
		return fmt.Errorf("%s is empty", name)
	}
	var sum float64
	for _, p := range dist {
		if p < 0 {
			return fmt.Errorf("%s has a negative weight", name)
		}
		sum += p
	}
	if sum < 0.98 || sum > 1.02 {
		return fmt.Errorf("%s sums to %.3f, want ~1.0", name, sum)
	}
	return nil
}
