// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/lms-admin/internal/types"
)

var (
	activityLimit uint64
	outputFormat  string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard counts and recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, closeFn, err := getService()
		if err != nil {
			return err
		}
		defer closeFn()

		stats, err := s.GetDashboardStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load dashboard: %w", err)
		}

		if outputFormat == "json" {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(stats)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "Companies\t%d\t(%d active, %d suspended)\n", stats.TotalCompanies, stats.ActiveCompanies, stats.SuspendedCompanies)
		fmt.Fprintf(w, "Users\t%d\n", stats.TotalUsers)
		fmt.Fprintf(w, "Courses\t%d\n", stats.TotalCourses)
		fmt.Fprintf(w, "Licenses\t%d\n", stats.TotalLicenses)
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Println()
		return printActivity(stats.RecentActivity)
	},
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "List the activity log, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, closeFn, err := getService()
		if err != nil {
			return err
		}
		defer closeFn()

		logs, err := s.ListActivity(cmd.Context(), types.ActivityFilter{CompanyID: companyID, Limit: activityLimit})
		if err != nil {
			return fmt.Errorf("failed to list activity: %w", err)
		}

		if outputFormat == "json" {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(logs)
		}
		return printActivity(logs)
	},
}

func printActivity(logs []*types.ActivityLog) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CREATED_AT\tUSER\tACTION\tENTITY")
	for _, a := range logs {
		actor := a.UserID
		if a.User != nil {
			actor = a.User.Username
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s/%s\n", a.CreatedAt.Format(time.RFC3339), actor, a.Action, a.EntityType, a.EntityID)
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(activityCmd)

	dashboardCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format (text or json)")
	activityCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format (text or json)")
	activityCmd.Flags().Uint64Var(&activityLimit, "limit", 0, "Maximum number of rows, 0 for the default")
}
