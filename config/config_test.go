package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	want := defaults()
	want.GridWidth = 16
	want.GridHeight = 12
	want.Difficulty = "Hard"
	want.Seed = 42
	if err := want.save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := defaults()
	if err := got.load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *want {
		t.Errorf("roundtrip mismatch:\n got %+v\nwant %+v", *got, *want)
	}
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"grid_width": 8}`), 0644); err != nil {
		t.Fatal(err)
	}

	c := defaults()
	if err := c.load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.GridWidth != 8 {
		t.Errorf("grid_width = %d, want 8", c.GridWidth)
	}
	if c.GridHeight != 30 || c.Difficulty != "Medium" {
		t.Errorf("absent fields lost their defaults: %+v", *c)
	}
}

func TestLoadConfigCreatesDefaultsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	got := LoadConfig(path)
	if got != *defaults() {
		t.Errorf("LoadConfig on missing file = %+v, want defaults", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("defaults file was not written: %v", err)
	}
	if Get() != got {
		t.Error("Get should return the loaded snapshot")
	}
}
