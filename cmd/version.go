// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/canonical/lms-admin/internal/version"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lms-admin version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if !versionJSON {
			_, err := fmt.Fprintf(out, "lms-admin %s (%s)\n", version.Version, runtime.Version())
			return err
		}

		return json.NewEncoder(out).Encode(map[string]string{
			"version": version.Version,
			"go":      runtime.Version(),
		})
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "print the version as JSON")
	rootCmd.AddCommand(versionCmd)
}
