package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "sim.yaml", "floors: 12\nelevators: 3\nzoning: full\nseed: 99\nparallel: true\n")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Floors != 12 || c.Elevators != 3 || c.Zoning != "full" || c.Seed != 99 || !c.Parallel {
		t.Errorf("Unexpected config %+v", c)
	}
	if c.Capacity != Capacity || c.DwellTicks != DwellTicks {
		t.Errorf("Expected missing keys to keep defaults, got %+v", c)
	}

	c, err = Load(writeFile(t, "empty.yaml", ""))
	if err != nil || c != Default() {
		t.Errorf("Expected defaults from an empty file, got %+v, %v", c, err)
	}

	if _, err := Load(writeFile(t, "bad.yaml", "floors: [1, 2\n")); err == nil {
		t.Errorf("Expected decode error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"one floor", func(c *Config) { c.Floors = 1 }},
		{"no elevators", func(c *Config) { c.Elevators = 0 }},
		{"no capacity", func(c *Config) { c.Capacity = 0 }},
		{"zero travel", func(c *Config) { c.TravelTicks = 0 }},
		{"zero dwell", func(c *Config) { c.DwellTicks = 0 }},
		{"peak above one", func(c *Config) { c.PeakFraction = 1.5 }},
		{"empty rest range", func(c *Config) { c.RestMin, c.RestMax = 10, 5 }},
		{"unknown zoning", func(c *Config) { c.Zoning = "express" }},
		{"negative tick limit", func(c *Config) { c.MaxTicks = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.modify(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ZONEVATOR_SEED", "1234")
	t.Setenv("ZONEVATOR_ZONING", "full")
	t.Setenv("ZONEVATOR_PEAK_FRACTION", "0.3")
	t.Cleanup(func() { os.Unsetenv("ZONEVATOR_CAPACITY") })
	envFile := writeFile(t, ".env", "ZONEVATOR_CAPACITY=3\nZONEVATOR_ZONING=paired\n")

	c := Default()
	if err := ApplyEnv(&c, envFile); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if c.Seed != 1234 {
		t.Errorf("Expected seed 1234, got %d", c.Seed)
	}
	if c.Capacity != 3 {
		t.Errorf("Expected capacity from env file, got %d", c.Capacity)
	}
	if c.Zoning != "full" {
		t.Errorf("Expected process env to win over env file, got %q", c.Zoning)
	}
	if c.PeakFraction != 0.3 {
		t.Errorf("Expected peak fraction 0.3, got %g", c.PeakFraction)
	}
	if c.Floors != NumFloors || c.RestMax != RestMax {
		t.Errorf("Expected unset variables to keep defaults, got floors %d rest max %d", c.Floors, c.RestMax)
	}

	if err := ApplyEnv(&c, filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("Expected missing env file to be ignored, got %v", err)
	}

	t.Setenv("ZONEVATOR_PARALLEL", "maybe")
	if err := ApplyEnv(&c, ""); err == nil {
		t.Errorf("Expected parse error for ZONEVATOR_PARALLEL")
	}
}

func TestElevParams(t *testing.T) {
	c := Default()
	p := c.ElevParams()
	if p.NumFloors != NumFloors || p.Itinerary.NumFloors != NumFloors || p.Itinerary.RestMax != RestMax {
		t.Errorf("Unexpected params %+v", p)
	}
}
