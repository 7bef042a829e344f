// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package catalog

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	_ "modernc.org/sqlite"
)

// Catalog is a read-only, in-memory index over the target editor's
// asset-type database (§4.3). Keyword search selects the requested
// category's rows from an in-memory SQLite table and scores every one of
// them in Go; the by-name index stays a plain map for O(1) exact lookups.
type Catalog struct {
	byName map[string]AssetRef
	db     *sql.DB
}

func newCatalog(refs []AssetRef) (*Catalog, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("catalog: open index: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE assets (
		name TEXT PRIMARY KEY,
		directory TEXT NOT NULL,
		category INTEGER NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: create index: %w", err)
	}

	byName := make(map[string]AssetRef, len(refs))
	stmt, err := db.Prepare(`INSERT INTO assets (name, directory, category) VALUES (?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: prepare index insert: %w", err)
	}
	defer stmt.Close()

	for _, ref := range refs {
		byName[ref.TargetType] = ref
		if _, err := stmt.Exec(ref.TargetType, ref.Directory, int(ref.Category)); err != nil {
			db.Close()
			return nil, fmt.Errorf("catalog: index %q: %w", ref.TargetType, err)
		}
	}

	return &Catalog{byName: byName, db: db}, nil
}

// Close releases the in-memory index. Safe to call on a nil Catalog.
func (c *Catalog) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// ByName returns the exact-match AssetRef, or false if name is not in the
// catalog. The catalog's name index is case-sensitive, matching the
// source catalog (§4.3).
func (c *Catalog) ByName(name string) (AssetRef, bool) {
	ref, ok := c.byName[name]
	return ref, ok
}

// IsAllowed reports whether name may be placed on baseTerrain: false iff
// the name exists with non-empty restrictions that exclude baseTerrain.
// An unknown name is reported as allowed — it is the mapper's job to have
// resolved to a known name before calling this.
func (c *Catalog) IsAllowed(name, baseTerrain string) bool {
	ref, ok := c.byName[name]
	if !ok {
		return true
	}
	return ref.IsAllowedOn(baseTerrain)
}

// Classify returns the category derived from name's directory path, or
// Other if name is unknown.
func (c *Catalog) Classify(name string) Category_e {
	ref, ok := c.byName[name]
	if !ok {
		return Other
	}
	return ref.Category
}

// AllowedOn returns every catalog asset name usable on baseTerrain: those
// with no restrictions, plus those whose restriction set names
// baseTerrain explicitly. The Target Terrain Provider uses this to build
// its own allow-list at load time (§4.5).
func (c *Catalog) AllowedOn(baseTerrain string) map[string]bool {
	out := make(map[string]bool, len(c.byName))
	for name, ref := range c.byName {
		if ref.IsAllowedOn(baseTerrain) {
			out[name] = true
		}
	}
	return out
}

// ScoredAsset pairs a catalog match with its keyword-match count, so
// callers can distinguish a true tie from a mere ordering artifact when
// applying their own tie-break rules (§4.4).
type ScoredAsset struct {
	AssetRef
	Score int
}

// Search returns every asset of the given category whose name or directory
// contains any of the keywords (case-insensitive), filtered by
// IsAllowed(name, baseTerrain), ordered by keyword-match-count descending
// then name ascending (§4.3).
func (c *Catalog) Search(category Category_e, keywords []string, baseTerrain string) []AssetRef {
	scored := c.SearchScored(category, keywords, baseTerrain)
	out := make([]AssetRef, len(scored))
	for i, s := range scored {
		out[i] = s.AssetRef
	}
	return out
}

// SearchScored is Search, but keeps each result's keyword-match score.
func (c *Catalog) SearchScored(category Category_e, keywords []string, baseTerrain string) []ScoredAsset {
	if len(keywords) == 0 {
		return nil
	}

	rows, err := c.db.Query(`SELECT name, directory FROM assets WHERE category = ?`, int(category))
	if err != nil {
		return nil
	}
	defer rows.Close()

	var matches []ScoredAsset

	lowerKeywords := make([]string, len(keywords))
	for i, kw := range keywords {
		lowerKeywords[i] = strings.ToLower(kw)
	}

	for rows.Next() {
		var name, directory string
		if err := rows.Scan(&name, &directory); err != nil {
			continue
		}
		haystack := strings.ToLower(name + " " + directory)
		score := 0
		for _, kw := range lowerKeywords {
			if strings.Contains(haystack, kw) {
				score++
			}
		}
		if score == 0 {
			continue
		}
		if !c.IsAllowed(name, baseTerrain) {
			continue
		}
		matches = append(matches, ScoredAsset{AssetRef: c.byName[name], Score: score})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].TargetType < matches[j].TargetType
	})

	return matches
}
