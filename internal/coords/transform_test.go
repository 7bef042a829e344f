// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package coords

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestTransform3DIdentity(t *testing.T) {
	tr := Transform{Position: Vector3{X: 1, Y: 2, Z: 3}}
	got := tr.Transform3D()
	want := "Transform3D(1, 0, 0, 0, 1, 0, 0, 0, 1, 1, 2, 3)"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestTransform3DNoNegativeZero(t *testing.T) {
	tr := Transform{Rotation: Rotation{Yaw: 180}}
	got := tr.Transform3D()
	if strings.Contains(got, "-0,") || strings.HasSuffix(got, "-0)") {
		t.Fatalf("output contains negative zero: %q", got)
	}
}

func TestRotationBasisIsOrthonormal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rot := Rotation{
			Pitch: rapid.Float64Range(-180, 180).Draw(t, "pitch"),
			Yaw:   rapid.Float64Range(-180, 180).Draw(t, "yaw"),
			Roll:  rapid.Float64Range(-180, 180).Draw(t, "roll"),
		}
		tr := Transform{Rotation: rot}
		if !tr.IsOrthonormal(1e-6) {
			t.Fatalf("basis not orthonormal for rotation %+v", rot)
		}
	})
}
