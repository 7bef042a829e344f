// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package report builds the per-map run report (§6): counts of
// resolved/fallback/skipped assets, control-point and spawn counts, the
// chosen orientation remap, the chosen base terrain, and any notes
// accumulated along the way.
package report
