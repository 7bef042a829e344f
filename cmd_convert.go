// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/portalconv/portalconv/internal/catalog"
	"github.com/portalconv/portalconv/internal/mapper"
	"github.com/portalconv/portalconv/internal/runners"
	"github.com/portalconv/portalconv/internal/scene"
	"github.com/portalconv/portalconv/internal/sourceengine/refractor"
	"github.com/portalconv/portalconv/internal/terrain"
	"github.com/portalconv/portalconv/paths"
)

var argsConvert struct {
	mapName     string
	baseTerrain string
	output      string
	sourceRoot  string
}

var cmdConvert = &cobra.Command{
	Use:   "convert",
	Short: "Convert a source map into a scene file",
	Long:  `Parse a Refractor-engine map directory and emit a scene description for the target editor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := sourceRootOrDefault(argsConvert.sourceRoot)
		if err != nil {
			return err
		}

		p, terr, err := buildPipeline(root, argsConvert.baseTerrain)
		if err != nil {
			return err
		}
		defer p.Catalog.Close()

		sourceDir := paths.SourceMapDir(root, argsConvert.mapName)
		sc, rep, err := p.Convert(sourceDir, argsConvert.mapName, terr)
		if err != nil {
			return err
		}

		outPath := argsConvert.output
		if outPath == "" {
			outPath = paths.ScenePath(root, argsConvert.mapName)
		}
		if err := paths.WriteFileAtomic(outPath, []byte(scene.Emit(sc)), 0644); err != nil {
			return fmt.Errorf("convert: write scene: %w", err)
		}

		reportData, err := rep.MarshalIndent()
		if err != nil {
			return fmt.Errorf("convert: marshal report: %w", err)
		}
		if err := paths.WriteFileAtomic(paths.ReportPath(root, argsConvert.mapName), reportData, 0644); err != nil {
			return fmt.Errorf("convert: write report: %w", err)
		}

		log.Printf("convert: %q -> %q (%d nodes)\n", argsConvert.mapName, outPath, len(sc.Nodes))
		return nil
	},
}

// buildPipelineCore loads the catalog and explicit mapping table and
// registers the Refractor engine, the parts of a Pipeline every CLI verb
// needs regardless of which base terrain(s) it targets (§6). Callers must
// Close the returned Pipeline's Catalog.
func buildPipelineCore(root string) (*runners.Pipeline, error) {
	cat, err := catalog.LoadFile(paths.CatalogPath(root))
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	mapping, err := mapper.LoadMappingFile(paths.MappingPath(root))
	if err != nil {
		cat.Close()
		return nil, fmt.Errorf("load mapping table: %w", err)
	}

	engine := refractor.New(globalConfig.Gameplay.BoundsBufferMeters)
	return runners.New(globalConfig, cat, mapping, engine), nil
}

// loadTerrain loads baseTerrain's mesh, restricted to the asset names p's
// Catalog allows on it (§4.5).
func loadTerrain(root string, p *runners.Pipeline, baseTerrain string) (*terrain.TargetTerrain, error) {
	terr, err := terrain.LoadMeshFile(baseTerrain, paths.TerrainMeshPath(root, baseTerrain), p.Catalog.AllowedOn(baseTerrain))
	if err != nil {
		return nil, fmt.Errorf("load terrain %q: %w", baseTerrain, err)
	}
	return terr, nil
}

// buildPipeline assembles a Pipeline and loads the named base terrain's
// mesh, the two steps a single-map CLI verb needs (§6).
func buildPipeline(root, baseTerrain string) (*runners.Pipeline, *terrain.TargetTerrain, error) {
	p, err := buildPipelineCore(root)
	if err != nil {
		return nil, nil, err
	}
	terr, err := loadTerrain(root, p, baseTerrain)
	if err != nil {
		p.Catalog.Close()
		return nil, nil, err
	}
	return p, terr, nil
}
