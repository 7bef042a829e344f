// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mapper

import (
	"fmt"
	"sort"
	"strings"

	"github.com/portalconv/portalconv/internal/catalog"
)

// Resolution is one source token's resolution outcome (§4.4).
type Resolution struct {
	SourceToken   string
	ChosenTarget  string
	Tier          Tier_e
	Note          string
}

// Mapper resolves source tokens to target AssetRefs for one run.
type Mapper struct {
	Catalog       *catalog.Catalog
	Explicit      Table
	BaseTerrain   string
	MapThemeWords []string
}

// compatibleCategories lists, for a source-derived category, which target
// categories a keyword-fallback match may land on (§4.4 step 3).
var compatibleCategories = map[catalog.Category_e][]catalog.Category_e{
	catalog.Tree:             {catalog.Tree},
	catalog.Building:         {catalog.Building, catalog.Prop},
	catalog.Vehicle:          {catalog.Vehicle, catalog.Spawner},
	catalog.Prop:             {catalog.Prop, catalog.Gameplay},
	catalog.Water:            {catalog.Water},
	catalog.Gameplay:         {catalog.Gameplay},
	catalog.StationaryWeapon: {catalog.StationaryWeapon, catalog.Prop},
	catalog.Other:            {catalog.Prop, catalog.Other},
}

// alwaysSkip are categories that never receive a resolved target (§4.4
// step 4): water and terrain are part of the base terrain mesh itself,
// never individually-placed objects.
var alwaysSkip = map[catalog.Category_e]bool{
	catalog.Water:   true,
	catalog.Terrain: true,
}

// Resolve runs the three-tier algorithm for one source token, returning a
// Resolution that the pipeline records in the run report regardless of
// outcome (§4.4).
func (m *Mapper) Resolve(sourceToken string) Resolution {
	sourceCategory := catalog.ClassifyKeyword(sourceToken)
	if alwaysSkip[sourceCategory] {
		return Resolution{SourceToken: sourceToken, Tier: Skip, Note: "category is always skipped (water/terrain)"}
	}

	// Tier 1: explicit mapping table.
	var fallthroughNote string
	if target, ok := m.Explicit.Resolve(sourceToken, m.BaseTerrain); ok {
		if m.Catalog.IsAllowed(target, m.BaseTerrain) {
			return Resolution{SourceToken: sourceToken, ChosenTarget: target, Tier: ExplicitMapping}
		}
		// fall through to tier 2, recording why tier 1 didn't stick.
		fallthroughNote = fmt.Sprintf("tier-1 target %q disallowed on %q, fell through to fallback tiers", target, m.BaseTerrain)
	}

	keywords := tokenKeywords(sourceToken)

	// Tier 2: category fallback.
	if candidates := m.Catalog.SearchScored(sourceCategory, keywords, m.BaseTerrain); len(candidates) > 0 {
		chosen := m.breakTies(candidates)
		return Resolution{SourceToken: sourceToken, ChosenTarget: chosen.TargetType, Tier: CategoryFallback, Note: fallthroughNote}
	}

	// Tier 3: full-catalog keyword fallback, restricted to compatible categories.
	var allCandidates []catalog.ScoredAsset
	for _, category := range compatibleCategories[sourceCategory] {
		allCandidates = append(allCandidates, m.Catalog.SearchScored(category, keywords, m.BaseTerrain)...)
	}
	if len(allCandidates) > 0 {
		sortScoredAssets(allCandidates)
		chosen := m.breakTies(allCandidates)
		return Resolution{SourceToken: sourceToken, ChosenTarget: chosen.TargetType, Tier: KeywordFallback, Note: fallthroughNote}
	}

	note := "no tier resolved the token"
	if fallthroughNote != "" {
		note = fallthroughNote + "; no fallback tier resolved the token either"
	}
	return Resolution{SourceToken: sourceToken, Tier: Skip, Note: note}
}

// breakTies applies the §4.4 tie-break order on top of the catalog's
// already score-then-name-sorted candidates: among entries tied for the
// top score, prefer one whose name contains a map-theme keyword, then the
// shortest name (catalog order already breaks remaining ties
// lexicographically).
func (m *Mapper) breakTies(candidates []catalog.ScoredAsset) catalog.AssetRef {
	if len(candidates) == 0 {
		return catalog.AssetRef{}
	}
	if len(candidates) == 1 {
		return candidates[0].AssetRef
	}

	topScore := candidates[0].Score
	var tied []catalog.AssetRef
	for _, c := range candidates {
		if c.Score != topScore {
			break
		}
		tied = append(tied, c.AssetRef)
	}
	if len(tied) == 1 {
		return tied[0]
	}

	for _, c := range tied {
		lower := strings.ToLower(c.TargetType)
		for _, theme := range m.MapThemeWords {
			if strings.Contains(lower, strings.ToLower(theme)) {
				return c
			}
		}
	}

	shortest := tied[0]
	for _, c := range tied[1:] {
		if len(c.TargetType) < len(shortest.TargetType) {
			shortest = c
		}
	}
	return shortest
}

func sortScoredAssets(assets []catalog.ScoredAsset) {
	sort.Slice(assets, func(i, j int) bool {
		if assets[i].Score != assets[j].Score {
			return assets[i].Score > assets[j].Score
		}
		return assets[i].TargetType < assets[j].TargetType
	})
}

// tokenKeywords splits a source token into keyword fragments on
// underscores, hyphens, spaces and digits, keeping each fragment's original
// case, used to search the catalog for overlapping names.
func tokenKeywords(token string) []string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	for _, r := range token {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case r >= '0' && r <= '9':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}
