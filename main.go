// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package main implements the portalconv application
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/maloquacious/semver"
	"github.com/portalconv/portalconv/internal/config"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
	globalConfig *config.Config
)

func main() {
	// if version is on the command line, show it and exit
	for _, arg := range os.Args {
		if arg == "-version" || arg == "--version" {
			fmt.Printf("%s\n", version.Short())
			return
		} else if arg == "-build-info" || arg == "--build-info" {
			fmt.Printf("%s\n", version.String())
			return
		}
	}
	log.SetFlags(log.Lshortfile | log.Ltime)

	root, err := projectRoot()
	if err != nil {
		log.Fatal(err)
	}

	configFileName := root + "/data/input/portalconv.json"
	debugConfigFile := false
	if sb, err := os.Stat(configFileName); err == nil && sb.Mode().IsRegular() {
		debugConfigFile = true
	}
	cfg, err := config.Load(configFileName, debugConfigFile)
	if err != nil && debugConfigFile {
		log.Printf("[config] %q: %v\n", configFileName, err)
	}

	if err := Execute(cfg); err != nil {
		if code, ok := exitCode(err); ok {
			log.Println(err)
			os.Exit(code)
		}
		log.Fatal(err)
	}
}

func Execute(cfg *config.Config) error {
	if cfg == nil || !cfg.AllowConfig {
		globalConfig = config.Default()
	} else {
		globalConfig = cfg
	}

	cmdRoot.PersistentFlags().BoolVar(&argsRoot.showVersion, "show-version", false, "show version")
	cmdRoot.PersistentFlags().StringVar(&argsRoot.logFile.name, "log-file", "", "set log file")

	cmdRoot.AddCommand(cmdConvert)
	cmdConvert.Flags().StringVar(&argsConvert.mapName, "map", "", "name of the source map to convert")
	cmdConvert.Flags().StringVar(&argsConvert.baseTerrain, "base-terrain", "", "name of the target base terrain")
	cmdConvert.Flags().StringVar(&argsConvert.output, "output", "", "path to write the emitted scene (defaults to the conventional output path)")
	cmdConvert.Flags().StringVar(&argsConvert.sourceRoot, "source-root", "", "project root, defaults to the working directory or PORTALCONV_ROOT")
	if err := cmdConvert.MarkFlagRequired("map"); err != nil {
		log.Fatalf("map: %v\n", err)
	}
	if err := cmdConvert.MarkFlagRequired("base-terrain"); err != nil {
		log.Fatalf("base-terrain: %v\n", err)
	}

	cmdRoot.AddCommand(cmdExport)
	cmdExport.Flags().StringVar(&argsExport.mapName, "map", "", "name of the source map to package")
	cmdExport.Flags().StringVar(&argsExport.baseTerrain, "base-terrain", "", "name of the target base terrain")
	cmdExport.Flags().StringVar(&argsExport.sourceRoot, "source-root", "", "project root, defaults to the working directory or PORTALCONV_ROOT")
	cmdExport.Flags().IntVar(&argsExport.maxPlayers, "max-players", 32, "max players per team: 16, 32, or 64")
	cmdExport.Flags().StringVar(&argsExport.gameMode, "game-mode", "Conquest", "game mode: Conquest, Rush, TeamDeathmatch, or Breakthrough")
	if err := cmdExport.MarkFlagRequired("map"); err != nil {
		log.Fatalf("map: %v\n", err)
	}
	if err := cmdExport.MarkFlagRequired("base-terrain"); err != nil {
		log.Fatalf("base-terrain: %v\n", err)
	}

	cmdRoot.AddCommand(cmdMultiExperience)
	cmdMultiExperience.Flags().StringVar(&argsMultiExperience.maps, "maps", "", "comma-separated list of map:baseTerrain pairs")
	cmdMultiExperience.Flags().StringVar(&argsMultiExperience.sourceRoot, "source-root", "", "project root, defaults to the working directory or PORTALCONV_ROOT")
	cmdMultiExperience.Flags().IntVar(&argsMultiExperience.maxPlayers, "max-players", 32, "max players per team: 16, 32, or 64")
	cmdMultiExperience.Flags().StringVar(&argsMultiExperience.gameMode, "game-mode", "Conquest", "game mode: Conquest, Rush, TeamDeathmatch, or Breakthrough")
	cmdMultiExperience.Flags().StringVar(&argsMultiExperience.output, "output", "", "path to write the packaged experience")
	cmdMultiExperience.Flags().IntVar(&argsMultiExperience.workers, "workers", 4, "bounded worker pool size for parallel conversion")
	if err := cmdMultiExperience.MarkFlagRequired("maps"); err != nil {
		log.Fatalf("maps: %v\n", err)
	}

	cmdRoot.AddCommand(cmdValidate)

	cmdRoot.AddCommand(cmdResetSpawns)
	cmdResetSpawns.Flags().StringVar(&argsResetSpawns.mapName, "map", "", "name of the source map to rewrite")
	cmdResetSpawns.Flags().StringVar(&argsResetSpawns.baseTerrain, "base-terrain", "", "name of the target base terrain")
	cmdResetSpawns.Flags().StringVar(&argsResetSpawns.sourceRoot, "source-root", "", "project root, defaults to the working directory or PORTALCONV_ROOT")
	cmdResetSpawns.Flags().Float64Var(&argsResetSpawns.radiusMeters, "radius", 10.0, "radius in meters around each headquarters to circle new spawns")
	if err := cmdResetSpawns.MarkFlagRequired("map"); err != nil {
		log.Fatalf("map: %v\n", err)
	}
	if err := cmdResetSpawns.MarkFlagRequired("base-terrain"); err != nil {
		log.Fatalf("base-terrain: %v\n", err)
	}

	cmdRoot.AddCommand(cmdVersion)

	return cmdRoot.Execute()
}
