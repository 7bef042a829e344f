// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package sourcemap

import (
	"encoding/json"
	"fmt"
)

// Role_e is a control point's gameplay role (§3, §4.2).
type Role_e int

const (
	NeutralCapturable Role_e = iota
	HeadquartersAxis
	HeadquartersAllies
)

var (
	// EnumToString is a helper map for marshalling the enum
	RoleEnumToString = map[Role_e]string{
		NeutralCapturable:   "NeutralCapturable",
		HeadquartersAxis:    "HeadquartersAxis",
		HeadquartersAllies:  "HeadquartersAllies",
	}
	// StringToEnum is a helper map for unmarshalling the enum
	RoleStringToEnum = map[string]Role_e{
		"NeutralCapturable":  NeutralCapturable,
		"HeadquartersAxis":   HeadquartersAxis,
		"HeadquartersAllies": HeadquartersAllies,
	}
)

// MarshalJSON implements the json.Marshaler interface.
func (e Role_e) MarshalJSON() ([]byte, error) {
	return json.Marshal(RoleEnumToString[e])
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (e *Role_e) UnmarshalJSON(data []byte) error {
	var s string
	var ok bool
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	} else if *e, ok = RoleStringToEnum[s]; !ok {
		return fmt.Errorf("invalid Role %q", s)
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (e Role_e) String() string {
	if str, ok := RoleEnumToString[e]; ok {
		return str
	}
	return fmt.Sprintf("Role(%d)", int(e))
}

// IsHeadquarters reports whether the role is one of the two headquarters
// roles.
func (e Role_e) IsHeadquarters() bool {
	return e == HeadquartersAxis || e == HeadquartersAllies
}
