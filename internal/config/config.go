// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"reflect"

	"github.com/portalconv/portalconv/cerrs"
)

// Config holds the process-lifetime settings for the conversion pipeline.
// It is built once at CLI start and passed down to every stage; nothing in
// the pipeline reads the filesystem or environment directly for settings.
type Config struct {
	AllowConfig bool           `json:"AllowConfig,omitempty"`
	DebugFlags  DebugFlags_t   `json:"DebugFlags"`
	Clearance   Clearance_t    `json:"Clearance"`
	Tolerance   Tolerance_t    `json:"Tolerance"`
	Packager    Packager_t     `json:"Packager"`
	Gameplay    Gameplay_t     `json:"Gameplay"`
}

type DebugFlags_t struct {
	DumpDirectives   bool `json:"DumpDirectives,omitempty"`
	DumpResolutions  bool `json:"DumpResolutions,omitempty"`
	DumpOrientation  bool `json:"DumpOrientation,omitempty"`
	LogFile          bool `json:"LogFile,omitempty"`
	LogTime          bool `json:"LogTime,omitempty"`
}

// Clearance_t holds the named clearance constants from §4.8, in meters.
type Clearance_t struct {
	SpawnPoint       float64 `json:"SpawnPoint"`
	VehicleGround    float64 `json:"VehicleGround"`
	VehicleAir       float64 `json:"VehicleAir"`
	Building         float64 `json:"Building"`
	Prop             float64 `json:"Prop"`
	Tree             float64 `json:"Tree"`
	CapturePoint     float64 `json:"CapturePoint"`
	Headquarters     float64 `json:"Headquarters"`
}

// Tolerance_t holds the named tolerance constants referenced throughout §8.
type Tolerance_t struct {
	Orthonormality float64 `json:"Orthonormality"`
	HeightSnap     float64 `json:"HeightSnap"`
	OrientationTie float64 `json:"OrientationTie"` // fraction, e.g. 0.01 for 1%
}

// Gameplay_t holds named gameplay constants from §4, §9.
type Gameplay_t struct {
	BoundsBufferMeters      float64 `json:"BoundsBufferMeters"`      // §4.2 50m buffer
	CombatAreaBufferMeters  float64 `json:"CombatAreaBufferMeters"`  // §4.9 50m inflation
	CombatAreaHeadroom      float64 `json:"CombatAreaHeadroom"`      // §9 ~140m ceiling above ground
	CombatAreaHeight        float64 `json:"CombatAreaHeight"`        // §9 100m vertical extent
	MinSpawnsPerTeam        int     `json:"MinSpawnsPerTeam"`        // §8 minimum 4
}

// Packager_t holds the default knobs the experience packager exposes.
type Packager_t struct {
	MaxPlayersPerTeam int    `json:"MaxPlayersPerTeam"`
	GameMode          string `json:"GameMode"`
}

const (
	ErrIsDirectory = cerrs.Error("is directory")
	ErrIsNotAFile  = cerrs.Error("is not a file")
)

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Clearance: Clearance_t{
			SpawnPoint:    1.0,
			VehicleGround: 0.5,
			VehicleAir:    2.0,
			Building:      0.0,
			Prop:          0.0,
			Tree:          0.0,
			CapturePoint:  0.5,
			Headquarters:  0.5,
		},
		Tolerance: Tolerance_t{
			Orthonormality: 1e-4,
			HeightSnap:     1e-6,
			OrientationTie: 0.01,
		},
		Gameplay: Gameplay_t{
			BoundsBufferMeters:     50.0,
			CombatAreaBufferMeters: 50.0,
			CombatAreaHeadroom:     140.0,
			CombatAreaHeight:       100.0,
			MinSpawnsPerTeam:       4,
		},
		Packager: Packager_t{
			MaxPlayersPerTeam: 32,
			GameMode:          "Conquest",
		},
	}
}

// Load reads a JSON configuration file, overlaying its non-zero fields on
// top of Default(). A missing file is not an error — Load silently falls
// back to defaults, matching the "debug only if the file exists" policy the
// CLI root uses to decide whether to log the miss.
func Load(name string, debug bool) (*Config, error) {
	if debug {
		log.Printf("[config] %q: loading configuration...\n", name)
	}
	cfg := Default()
	sb, err := os.Stat(name)
	if errors.Is(err, os.ErrNotExist) || os.IsNotExist(err) {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if err != nil {
		return cfg, err
	} else if sb.Mode().IsDir() {
		return cfg, ErrIsDirectory
	} else if !sb.Mode().IsRegular() {
		return cfg, ErrIsNotAFile
	}

	var tmp Config
	data, err := os.ReadFile(name)
	if err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if err = json.Unmarshal(data, &tmp); err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if debug {
		if nice, err := json.MarshalIndent(tmp, "", "  "); err == nil {
			log.Printf("[config] %s\n", nice)
		}
	}

	copyNonZeroFields(&tmp, cfg)
	return cfg, nil
}

// copyNonZeroFields recursively copies non-zero fields from src to dst using reflection.
func copyNonZeroFields(src, dst interface{}) {
	srcVal := reflect.ValueOf(src)
	dstVal := reflect.ValueOf(dst)

	if srcVal.Kind() == reflect.Ptr {
		srcVal = srcVal.Elem()
	}
	if dstVal.Kind() == reflect.Ptr {
		dstVal = dstVal.Elem()
	}
	if srcVal.Kind() != reflect.Struct || dstVal.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < srcVal.NumField(); i++ {
		srcField := srcVal.Field(i)
		dstField := dstVal.Field(i)
		if !srcField.CanInterface() || !dstField.CanSet() {
			continue
		}
		if srcField.IsZero() {
			continue
		}
		switch srcField.Kind() {
		case reflect.Struct:
			copyNonZeroFields(srcField.Interface(), dstField.Addr().Interface())
		default:
			dstField.Set(srcField)
		}
	}
}
