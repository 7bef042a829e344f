// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package coords

import (
	"encoding/json"
	"fmt"
)

// AxisRemap_e enumerates the six horizontal-plane remaps the Orientation
// Solver chooses among when fitting a source map's footprint into a
// target terrain's bounds (§4.5, §9). Y (height) is never remapped.
type AxisRemap_e int

const (
	Identity AxisRemap_e = iota
	SwapXZ
	NegateX
	NegateZ
	SwapAndNegateX
	SwapAndNegateZ
)

var AllAxisRemaps = []AxisRemap_e{
	Identity, SwapXZ, NegateX, NegateZ, SwapAndNegateX, SwapAndNegateZ,
}

var (
	// EnumToString is a helper map for marshalling the enum
	EnumToString = map[AxisRemap_e]string{
		Identity:       "identity",
		SwapXZ:         "swap_xz",
		NegateX:        "negate_x",
		NegateZ:        "negate_z",
		SwapAndNegateX: "swap_and_negate_x",
		SwapAndNegateZ: "swap_and_negate_z",
	}
	// StringToEnum is a helper map for unmarshalling the enum
	StringToEnum = map[string]AxisRemap_e{
		"identity":          Identity,
		"swap_xz":           SwapXZ,
		"negate_x":          NegateX,
		"negate_z":          NegateZ,
		"swap_and_negate_x": SwapAndNegateX,
		"swap_and_negate_z": SwapAndNegateZ,
	}
)

// MarshalJSON implements the json.Marshaler interface.
func (e AxisRemap_e) MarshalJSON() ([]byte, error) {
	return json.Marshal(EnumToString[e])
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (e *AxisRemap_e) UnmarshalJSON(data []byte) error {
	var s string
	var ok bool
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	} else if *e, ok = StringToEnum[s]; !ok {
		return fmt.Errorf("invalid AxisRemap %q", s)
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (e AxisRemap_e) String() string {
	if str, ok := EnumToString[e]; ok {
		return str
	}
	return fmt.Sprintf("AxisRemap(%d)", int(e))
}

// Apply maps a point in source XZ space to remapped XZ space. Y is passed
// through unchanged by the caller; Apply only ever touches X and Z.
func (e AxisRemap_e) Apply(x, z float64) (rx, rz float64) {
	switch e {
	case Identity:
		return x, z
	case SwapXZ:
		return z, x
	case NegateX:
		return -x, z
	case NegateZ:
		return x, -z
	case SwapAndNegateX:
		return -z, x
	case SwapAndNegateZ:
		return z, -x
	default:
		return x, z
	}
}

// Invert returns the remap that undoes e (§8, remap invertibility
// invariant). Identity, NegateX, and NegateZ are involutions and invert to
// themselves; SwapAndNegateX and SwapAndNegateZ are a +90 degree and a
// -90 degree rotation respectively, so each inverts to the other. SwapXZ
// swaps back to itself.
func (e AxisRemap_e) Invert() AxisRemap_e {
	switch e {
	case SwapAndNegateX:
		return SwapAndNegateZ
	case SwapAndNegateZ:
		return SwapAndNegateX
	default:
		return e
	}
}
