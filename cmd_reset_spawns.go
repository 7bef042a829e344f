// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/portalconv/portalconv/internal/scene"
	"github.com/portalconv/portalconv/paths"
)

var argsResetSpawns struct {
	mapName      string
	baseTerrain  string
	sourceRoot   string
	radiusMeters float64
}

var cmdResetSpawns = &cobra.Command{
	Use:   "reset-spawns",
	Short: "Convert a map, replacing its spawn points with a circular layout around each headquarters",
	Long:  `An explicit opt-in variant of convert: instead of carrying a map's spawn points through verbatim, lay out a fresh circle of spawns around each headquarters at a fixed radius.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := sourceRootOrDefault(argsResetSpawns.sourceRoot)
		if err != nil {
			return err
		}

		p, terr, err := buildPipeline(root, argsResetSpawns.baseTerrain)
		if err != nil {
			return err
		}
		defer p.Catalog.Close()

		sourceDir := paths.SourceMapDir(root, argsResetSpawns.mapName)
		sc, rep, err := p.ConvertResettingSpawns(sourceDir, argsResetSpawns.mapName, terr, argsResetSpawns.radiusMeters)
		if err != nil {
			return err
		}

		outPath := paths.ScenePath(root, argsResetSpawns.mapName)
		if err := paths.WriteFileAtomic(outPath, []byte(scene.Emit(sc)), 0644); err != nil {
			return fmt.Errorf("reset-spawns: write scene: %w", err)
		}

		reportData, err := rep.MarshalIndent()
		if err != nil {
			return fmt.Errorf("reset-spawns: marshal report: %w", err)
		}
		if err := paths.WriteFileAtomic(paths.ReportPath(root, argsResetSpawns.mapName), reportData, 0644); err != nil {
			return fmt.Errorf("reset-spawns: write report: %w", err)
		}

		log.Printf("reset-spawns: %q -> %q (radius %.1fm)\n", argsResetSpawns.mapName, outPath, argsResetSpawns.radiusMeters)
		return nil
	},
}
