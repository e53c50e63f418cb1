// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/lms-admin/internal/types"
)

var (
	companyCity    string
	companyCountry string
	companyTheme   string
	onlySuspended  bool
	companySearch  string
	userSearch     string
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage companies",
}

var listCompaniesCmd = &cobra.Command{
	Use:   "list",
	Short: "List companies, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, closeFn, err := getService()
		if err != nil {
			return err
		}
		defer closeFn()

		filter := types.CompanyFilter{Search: companySearch}
		if cmd.Flags().Changed("suspended") {
			filter.Suspended = &onlySuspended
		}

		companies, err := s.ListCompanies(cmd.Context(), filter)
		if err != nil {
			return fmt.Errorf("failed to list companies: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSHORTNAME\tSUSPENDED\tCREATED_AT")
		for _, c := range companies {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n", c.ID, c.Name, c.Shortname, c.Suspended, c.CreatedAt.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

var createCompanyCmd = &cobra.Command{
	Use:   "create [name] [shortname]",
	Short: "Create a new company",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, closeFn, err := getService()
		if err != nil {
			return err
		}
		defer closeFn()

		c, err := s.CreateCompany(cmd.Context(), getActor(), &types.Company{
			Name:      args[0],
			Shortname: args[1],
			City:      companyCity,
			Country:   companyCountry,
			Theme:     companyTheme,
		})
		if err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}

		fmt.Printf("Company created: %s (ID: %s)\n", c.Name, c.ID)
		return nil
	},
}

func suspendCompanyCmd(suspended bool) *cobra.Command {
	use, verb := "unsuspend [id]", "unsuspended"
	if suspended {
		use, verb = "suspend [id]", "suspended"
	}

	return &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Mark a company as %s", verb),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeFn, err := getService()
			if err != nil {
				return err
			}
			defer closeFn()

			if _, err := s.SuspendCompany(cmd.Context(), getActor(), args[0], suspended); err != nil {
				return fmt.Errorf("failed to update company: %w", err)
			}

			fmt.Printf("Company %s: %s\n", verb, args[0])
			return nil
		},
	}
}

var deleteCompanyCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a company and everything it owns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, closeFn, err := getService()
		if err != nil {
			return err
		}
		defer closeFn()

		if err := s.DeleteCompany(cmd.Context(), getActor(), args[0]); err != nil {
			return fmt.Errorf("failed to delete company: %w", err)
		}

		fmt.Printf("Company deleted: %s\n", args[0])
		return nil
	},
}

var listUsersCmd = &cobra.Command{
	Use:   "users [company-id]",
	Short: "List the users of a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, closeFn, err := getService()
		if err != nil {
			return err
		}
		defer closeFn()

		users, err := s.ListUsers(cmd.Context(), types.ListFilter{CompanyID: args[0], Search: userSearch})
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tSUSPENDED")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", u.ID, u.Username, u.Email, u.Suspended)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(companyCmd)
	companyCmd.AddCommand(listCompaniesCmd)
	companyCmd.AddCommand(createCompanyCmd)
	companyCmd.AddCommand(suspendCompanyCmd(true))
	companyCmd.AddCommand(suspendCompanyCmd(false))
	companyCmd.AddCommand(deleteCompanyCmd)
	companyCmd.AddCommand(listUsersCmd)

	listCompaniesCmd.Flags().BoolVar(&onlySuspended, "suspended", false, "Only list companies with this suspended state")
	listCompaniesCmd.Flags().StringVar(&companySearch, "search", "", "Match name, shortname or city")
	listUsersCmd.Flags().StringVar(&userSearch, "search", "", "Match name, email or username")
	createCompanyCmd.Flags().StringVar(&companyCity, "city", "", "City")
	createCompanyCmd.Flags().StringVar(&companyCountry, "country", "", "Country code")
	createCompanyCmd.Flags().StringVar(&companyTheme, "theme", "", "Theme name")
}
