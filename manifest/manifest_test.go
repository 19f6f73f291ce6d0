// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/EarthByte/pyBacktrack/manifest"
)

func TestAddPathSets(t *testing.T) {
	m := manifest.New()
	m.Add(manifest.Well, "site-42.tab")
	m.Add(manifest.Lithology, "lithology.tab")

	if p := m.Path(manifest.Well); p != "site-42.tab" {
		t.Errorf("well path: got %q, want site-42.tab", p)
	}
	if p := m.Path(manifest.SeaLevel); p != "" {
		t.Errorf("undefined dataset path: got %q, want empty", p)
	}

	sets := m.Sets()
	if len(sets) != 2 {
		t.Fatalf("sets: got %d, want 2", len(sets))
	}

	m.Add(manifest.Well, "")
	if p := m.Path(manifest.Well); p != "" {
		t.Errorf("well path after removal: got %q, want empty", p)
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "project.tab")

	m := manifest.New()
	m.SetName(name)
	m.Add(manifest.Well, "site-42.tab")
	m.Add(manifest.Lithology, "lithology.tab")
	m.Add(manifest.SeaLevel, "haq87.tab")

	if err := m.Write(); err != nil {
		t.Fatalf("unable to write manifest: %v", err)
	}

	r, err := manifest.Read(name)
	if err != nil {
		t.Fatalf("unable to read manifest: %v", err)
	}
	if p := r.Path(manifest.Well); p != "site-42.tab" {
		t.Errorf("well path: got %q, want site-42.tab", p)
	}
	if p := r.Path(manifest.SeaLevel); p != "haq87.tab" {
		t.Errorf("sealevel path: got %q, want haq87.tab", p)
	}
}

func TestLithologyRegistryUndefined(t *testing.T) {
	m := manifest.New()
	m.SetName("unused.tab")
	if _, err := m.LithologyRegistry(); err == nil {
		t.Fatalf("expected error for undefined lithology dataset")
	}
}

func TestSeaLevelUndefinedIsNil(t *testing.T) {
	m := manifest.New()
	m.SetName("unused.tab")
	sl, err := m.SeaLevel()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sl != nil {
		t.Errorf("sea level: got %v, want nil for an undefined dataset", sl)
	}
}

func TestLithologyRegistryReadsFile(t *testing.T) {
	dir := t.TempDir()
	litName := filepath.Join(dir, "lithology.tab")
	if err := os.WriteFile(litName, []byte("Shale\t2700\t0.63\t1960\n"), 0o644); err != nil {
		t.Fatalf("unable to write lithology file: %v", err)
	}

	m := manifest.New()
	m.SetName(filepath.Join(dir, "project.tab"))
	m.Add(manifest.Lithology, litName)

	reg, err := m.LithologyRegistry()
	if err != nil {
		t.Fatalf("unable to read lithology registry: %v", err)
	}
	if l, err := reg.Lookup("Shale"); err != nil || l.GrainDensity != 2700 {
		t.Errorf("lookup Shale: got %v, %v", l, err)
	}
}
