// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/portalconv/portalconv/cerrs"
	"github.com/portalconv/portalconv/internal/validate"
)

var cmdValidate = &cobra.Command{
	Use:   "validate <scene-path>",
	Short: "Check an emitted scene against the required gameplay invariants",
	Long:  `Re-read an emitted scene file and verify it satisfies every invariant a converted map must hold.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := validate.ValidateFile(args[0])
		if err != nil {
			return err
		}
		if res.OK() {
			fmt.Printf("validate: %s: OK\n", args[0])
			return nil
		}
		for _, issue := range res.Issues {
			fmt.Printf("validate: %s\n", issue.String())
		}
		return fmt.Errorf("%w: %d issue(s) in %s", cerrs.ErrValidationFailed, len(res.Issues), args[0])
	},
}
