// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/portalconv/portalconv/internal/packager"
	"github.com/portalconv/portalconv/internal/runners"
	"github.com/portalconv/portalconv/internal/scene"
	"github.com/portalconv/portalconv/internal/terrain"
	"github.com/portalconv/portalconv/paths"
)

var argsMultiExperience struct {
	maps       string
	sourceRoot string
	maxPlayers int
	gameMode   string
	output     string
	workers    int
}

var cmdMultiExperience = &cobra.Command{
	Use:   "multi-experience",
	Short: "Convert several maps and package them as a single experience bundle",
	Long:  `Convert every map named in --maps, in parallel on a bounded worker pool, and package them into one experience bundle's map rotation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := sourceRootOrDefault(argsMultiExperience.sourceRoot)
		if err != nil {
			return err
		}

		pairs, err := parseMapPairs(argsMultiExperience.maps)
		if err != nil {
			return err
		}

		p, err := buildPipelineCore(root)
		if err != nil {
			return err
		}
		defer p.Catalog.Close()

		terrainCache := map[string]*terrain.TargetTerrain{}
		jobs := make([]runners.MapJob, 0, len(pairs))
		for _, pair := range pairs {
			terr, ok := terrainCache[pair.baseTerrain]
			if !ok {
				terr, err = loadTerrain(root, p, pair.baseTerrain)
				if err != nil {
					return err
				}
				terrainCache[pair.baseTerrain] = terr
			}
			jobs = append(jobs, runners.MapJob{
				SourceDir:   paths.SourceMapDir(root, pair.mapName),
				MapName:     pair.mapName,
				BaseTerrain: pair.baseTerrain,
				Terrain:     terr,
			})
		}

		results := p.ConvertMany(jobs, argsMultiExperience.workers)

		var inputs []packager.MapInput
		for _, r := range results {
			if r.Err != nil {
				log.Printf("multi-experience: %q: %v (skipped)\n", r.Job.MapName, r.Err)
				continue
			}
			inputs = append(inputs, packager.MapInput{
				MapName:     r.Job.MapName,
				BaseTerrain: r.Job.BaseTerrain,
				SceneBytes:  []byte(scene.Emit(r.Scene)),
			})
			reportData, err := r.Report.MarshalIndent()
			if err != nil {
				return fmt.Errorf("multi-experience: marshal report for %q: %w", r.Job.MapName, err)
			}
			if err := paths.WriteFileAtomic(paths.ReportPath(root, r.Job.MapName), reportData, 0644); err != nil {
				return fmt.Errorf("multi-experience: write report for %q: %w", r.Job.MapName, err)
			}
		}
		if len(inputs) == 0 {
			return fmt.Errorf("multi-experience: every map in the bundle failed to convert")
		}

		pkg := globalConfig.Packager
		pkg.MaxPlayersPerTeam = argsMultiExperience.maxPlayers
		pkg.GameMode = argsMultiExperience.gameMode

		env, err := packager.Build(inputs, pkg, "")
		if err != nil {
			return fmt.Errorf("multi-experience: %w", err)
		}

		data, err := json.MarshalIndent(env, "", "  ")
		if err != nil {
			return fmt.Errorf("multi-experience: marshal experience: %w", err)
		}

		outPath := argsMultiExperience.output
		if outPath == "" {
			outPath = paths.ExperiencePath(root, "bundle")
		}
		if err := paths.WriteFileAtomic(outPath, data, 0644); err != nil {
			return fmt.Errorf("multi-experience: write experience: %w", err)
		}

		log.Printf("multi-experience: %d/%d maps -> %q\n", len(inputs), len(jobs), outPath)
		return nil
	},
}

type mapTerrainPair struct {
	mapName     string
	baseTerrain string
}

// parseMapPairs parses the --maps flag's "map:baseTerrain,map:baseTerrain"
// shorthand.
func parseMapPairs(raw string) ([]mapTerrainPair, error) {
	var out []mapTerrainPair
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("multi-experience: malformed --maps entry %q, want map:baseTerrain", entry)
		}
		out = append(out, mapTerrainPair{mapName: parts[0], baseTerrain: parts[1]})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("multi-experience: --maps named no maps")
	}
	return out, nil
}
