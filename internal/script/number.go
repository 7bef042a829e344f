// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package script

import "strconv"

// parseFloat parses a decimal or scientific-notation number as the
// Refractor engine writes them (e.g. "100", "-0.5", "1.52588e-005"). Go's
// strconv already accepts the three-digit exponent form, so no bespoke
// lexing is needed here.
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
