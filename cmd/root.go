// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	dsn       string
	userID    string
	companyID string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lms-admin",
	Short: "LMS Admin",
	Long:  `LMS Admin backend and CLI for managing companies, users, courses and licenses.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", os.Getenv("DSN"), "PostgreSQL DSN connection string")
	rootCmd.PersistentFlags().StringVar(&userID, "user-id", "", "User ID recorded as the actor of changes")
	rootCmd.PersistentFlags().StringVar(&companyID, "company-id", "", "Company ID of the acting user")
}
