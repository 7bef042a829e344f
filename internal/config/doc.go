// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package config manages JSON configuration loading for the conversion
// pipeline. It holds debug flags and the named constants §9 requires
// (clearance heights, tolerances, gameplay sizes, packager defaults).
// Configuration is loaded from a portalconv.json file with sensible defaults.
package config
