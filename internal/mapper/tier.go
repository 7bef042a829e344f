// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mapper

import (
	"encoding/json"
	"fmt"
)

// Tier_e records which resolution tier produced a mapper decision (§4.4).
type Tier_e int

const (
	Unresolved Tier_e = iota
	ExplicitMapping
	CategoryFallback
	KeywordFallback
	Skip
)

var (
	// EnumToString is a helper map for marshalling the enum
	EnumToString = map[Tier_e]string{
		Unresolved:        "unresolved",
		ExplicitMapping:   "explicit",
		CategoryFallback:  "category_fallback",
		KeywordFallback:   "keyword_fallback",
		Skip:              "skip",
	}
	// StringToEnum is a helper map for unmarshalling the enum
	StringToEnum = map[string]Tier_e{
		"unresolved":         Unresolved,
		"explicit":           ExplicitMapping,
		"category_fallback":  CategoryFallback,
		"keyword_fallback":   KeywordFallback,
		"skip":               Skip,
	}
)

// MarshalJSON implements the json.Marshaler interface.
func (e Tier_e) MarshalJSON() ([]byte, error) {
	return json.Marshal(EnumToString[e])
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (e *Tier_e) UnmarshalJSON(data []byte) error {
	var s string
	var ok bool
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	} else if *e, ok = StringToEnum[s]; !ok {
		return fmt.Errorf("invalid Tier %q", s)
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (e Tier_e) String() string {
	if str, ok := EnumToString[e]; ok {
		return str
	}
	return fmt.Sprintf("Tier(%d)", int(e))
}
