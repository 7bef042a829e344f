// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package cerrs defines constant error types using a custom Error string type.
// It centralizes the error taxonomy used throughout the conversion pipeline —
// input, parse, terrain, mapping, and emission failures — so callers can
// compare against them with errors.Is().
package cerrs
