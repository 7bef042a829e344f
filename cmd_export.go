// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/portalconv/portalconv/internal/packager"
	"github.com/portalconv/portalconv/internal/scene"
	"github.com/portalconv/portalconv/paths"
)

var argsExport struct {
	mapName     string
	baseTerrain string
	sourceRoot  string
	maxPlayers  int
	gameMode    string
}

var cmdExport = &cobra.Command{
	Use:   "export",
	Short: "Convert a source map and package it as an experience bundle",
	Long:  `Convert a single map and wrap its emitted scene in a ready-to-import experience bundle.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := sourceRootOrDefault(argsExport.sourceRoot)
		if err != nil {
			return err
		}

		p, terr, err := buildPipeline(root, argsExport.baseTerrain)
		if err != nil {
			return err
		}
		defer p.Catalog.Close()

		sourceDir := paths.SourceMapDir(root, argsExport.mapName)
		sc, rep, err := p.Convert(sourceDir, argsExport.mapName, terr)
		if err != nil {
			return err
		}

		pkg := globalConfig.Packager
		pkg.MaxPlayersPerTeam = argsExport.maxPlayers
		pkg.GameMode = argsExport.gameMode

		env, err := packager.Build([]packager.MapInput{
			{MapName: argsExport.mapName, BaseTerrain: argsExport.baseTerrain, SceneBytes: []byte(scene.Emit(sc))},
		}, pkg, "")
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		data, err := json.MarshalIndent(env, "", "  ")
		if err != nil {
			return fmt.Errorf("export: marshal experience: %w", err)
		}
		if err := paths.WriteFileAtomic(paths.ExperiencePath(root, argsExport.mapName), data, 0644); err != nil {
			return fmt.Errorf("export: write experience: %w", err)
		}

		reportData, err := rep.MarshalIndent()
		if err != nil {
			return fmt.Errorf("export: marshal report: %w", err)
		}
		if err := paths.WriteFileAtomic(paths.ReportPath(root, argsExport.mapName), reportData, 0644); err != nil {
			return fmt.Errorf("export: write report: %w", err)
		}

		log.Printf("export: %q -> %q\n", argsExport.mapName, paths.ExperiencePath(root, argsExport.mapName))
		return nil
	},
}
