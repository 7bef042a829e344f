// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/portalconv/portalconv/cerrs"
	"github.com/portalconv/portalconv/paths"
)

var argsRoot struct {
	logFile struct {
		name string
		fd   *os.File
	}
	showVersion bool
}

var cmdRoot = &cobra.Command{
	Use:   "portalconv",
	Short: "Root command for our application",
	Long:  `Convert a classic Refractor-engine game map into a modern scene and experience bundle.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if argsRoot.logFile.name != "" {
			if fd, err := os.OpenFile(argsRoot.logFile.name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644); err != nil {
				return err
			} else {
				argsRoot.logFile.fd = fd
			}
			log.SetOutput(argsRoot.logFile.fd)
			argsRoot.showVersion = true
		}
		if argsRoot.showVersion {
			log.Printf("version: %s\n", version)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if argsRoot.logFile.fd != nil {
			if err := log.Output(2, "log file closed"); err != nil {
				return err
			} else if err = argsRoot.logFile.fd.Close(); err != nil {
				return err
			}
		}
		return nil
	},
}

// projectRoot returns the conversion project's root directory: the
// PORTALCONV_ROOT environment variable when set, otherwise the working
// directory (paths.ProjectRoot).
func projectRoot() (string, error) {
	return paths.ProjectRoot()
}

// sourceRootOrDefault returns override if non-empty, else the project
// root.
func sourceRootOrDefault(override string) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}
	return projectRoot()
}

// exitCode maps a fatal pipeline error to the §6 exit-code contract: 2 for
// unusable inputs, 3 for a failed validation run, 1 (via ok=false, the
// caller's log.Fatal default) for anything else.
func exitCode(err error) (int, bool) {
	switch {
	case errors.Is(err, cerrs.ErrValidationFailed):
		return 3, true
	case errors.Is(err, cerrs.ErrInputNotFound),
		errors.Is(err, cerrs.ErrNotDirectory),
		errors.Is(err, cerrs.ErrNotAFile),
		errors.Is(err, cerrs.ErrMissingCatalog),
		errors.Is(err, cerrs.ErrMissingMesh),
		errors.Is(err, cerrs.ErrInvalidPath):
		return 2, true
	}
	return 0, false
}

func isdir(path string) (bool, error) {
	sb, err := os.Stat(path)
	if err != nil {
		return false, err
	} else if !sb.IsDir() {
		return false, nil
	}
	return true, nil
}

func isfile(path string) (bool, error) {
	sb, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	} else if sb.IsDir() || !sb.Mode().IsRegular() {
		return false, nil
	}
	return true, nil
}
