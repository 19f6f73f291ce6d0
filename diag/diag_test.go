// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package diag_test

import (
	"testing"

	"github.com/EarthByte/pyBacktrack/diag"
)

func TestOneShotWarning(t *testing.T) {
	d := diag.NewDiagnostics()

	if !d.Warn(diag.DynamicTopographyOutOfRange, "model-a", "age %d exceeds oldest grid", 250) {
		t.Fatalf("first warning should be newly recorded")
	}
	if d.Warn(diag.DynamicTopographyOutOfRange, "model-a", "age %d exceeds oldest grid", 260) {
		t.Errorf("duplicate (kind, key) warning should not be recorded twice")
	}
	if !d.Warn(diag.DynamicTopographyOutOfRange, "model-b", "age %d exceeds oldest grid", 250) {
		t.Errorf("different key should be recorded independently")
	}

	if got := len(d.Warnings()); got != 2 {
		t.Errorf("warnings: got %d, want 2", got)
	}
}

func TestFatalKinds(t *testing.T) {
	fatal := []diag.Kind{diag.BadInputFormat, diag.UnknownLithology, diag.LocationOutOfGrid, diag.RiftParametersMissing}
	for _, k := range fatal {
		if !k.Fatal() {
			t.Errorf("%s: expected fatal", k)
		}
	}

	recoverable := []diag.Kind{diag.BasementShallowerThanDrillSite, diag.InfeasibleStretching, diag.DynamicTopographyOutOfRange}
	for _, k := range recoverable {
		if k.Fatal() {
			t.Errorf("%s: expected recoverable", k)
		}
	}
}
