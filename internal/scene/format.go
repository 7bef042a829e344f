// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package scene

import (
	"strconv"
	"strings"

	"github.com/portalconv/portalconv/internal/coords"
)

// FormatNumber exposes formatComponent's formatting convention to callers
// outside this package that need to attach ad-hoc numeric properties to a
// NodeRecord (e.g. a computed combat-area ceiling height) using the same
// 6-significant-digit, negative-zero-collapsed style as every other
// emitted number.
func FormatNumber(v float64) string {
	return formatComponent(v)
}

// formatComponent renders a float64 with the same 6-significant-digit,
// negative-zero-collapsed convention as coords.Transform.Transform3D, so
// non-transform numeric properties (polygon points, heights) stay visually
// consistent with transform lines (§4.9 "numbers formatted to up to 6
// significant digits").
func formatComponent(v float64) string {
	if v == 0 {
		v = 0
	}
	s := strconv.FormatFloat(v, 'g', 6, 64)
	if s == "-0" {
		s = "0"
	}
	return s
}

func formatPolygon(points []coords.Vector3) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = "(" + formatComponent(p.X) + ", " + formatComponent(p.Z) + ")"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func quote(s string) string {
	return strconv.Quote(s)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
