// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package validate

import (
	"fmt"
	"os"
)

// ValidateFile reads and parses the scene file at path and checks it
// against the §8 invariants. A parse failure is returned as an error, not
// as a Result, since it means the file isn't one this tool could have
// produced at all.
func ValidateFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("validate: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Result{}, fmt.Errorf("validate: %s: %w", path, err)
	}
	return Validate(sc), nil
}
