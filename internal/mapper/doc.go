// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package mapper implements the Asset Mapper (§4.4): the three-tier
// resolution algorithm that turns a source token into a target AssetRef,
// with explicit-mapping, category-fallback, and keyword-fallback tiers,
// and a resolution record for the run report.
package mapper
