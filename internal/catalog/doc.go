// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package catalog loads the target editor's asset-type database and
// exposes name, category, and keyword lookups (§4.3). It also owns the
// fixed 16-entry target-vehicle enum used when resolving vehicle spawner
// templates (§6).
package catalog
