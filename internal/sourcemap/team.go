// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package sourcemap

import (
	"encoding/json"
	"fmt"
)

// Team_e is the owning side of a control point, spawn point, or vehicle
// spawner. Object.setTeam maps 1, 2, 0 to these values (§4.2).
type Team_e int

const (
	Neutral Team_e = iota
	Team1
	Team2
)

var (
	// EnumToString is a helper map for marshalling the enum
	EnumToString = map[Team_e]string{
		Neutral: "Neutral",
		Team1:   "Team1",
		Team2:   "Team2",
	}
	// StringToEnum is a helper map for unmarshalling the enum
	StringToEnum = map[string]Team_e{
		"Neutral": Neutral,
		"Team1":   Team1,
		"Team2":   Team2,
	}
)

// TeamFromSetTeam converts Object.setTeam's numeric argument (0, 1, 2) to
// a Team_e.
func TeamFromSetTeam(n int) Team_e {
	switch n {
	case 1:
		return Team1
	case 2:
		return Team2
	default:
		return Neutral
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (e Team_e) MarshalJSON() ([]byte, error) {
	return json.Marshal(EnumToString[e])
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (e *Team_e) UnmarshalJSON(data []byte) error {
	var s string
	var ok bool
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	} else if *e, ok = StringToEnum[s]; !ok {
		return fmt.Errorf("invalid Team %q", s)
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (e Team_e) String() string {
	if str, ok := EnumToString[e]; ok {
		return str
	}
	return fmt.Sprintf("Team(%d)", int(e))
}
