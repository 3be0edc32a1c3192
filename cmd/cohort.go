// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var cohortCmd = &cobra.Command{
	Use:   "cohort",
	Short: "Manage cohorts",
}

var createCohortCmd = &cobra.Command{
	Use:   "create [id] [name]",
	Short: "Create a new cohort",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		c, err := client.CreateCohort(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to create cohort: %w", err)
		}

		fmt.Printf("Cohort created: %s (ID: %s)\n", c.Name, c.ID)
		return nil
	},
}

var listCohortsCmd = &cobra.Command{
	Use:   "list",
	Short: "List cohorts",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		page, _ := cmd.Flags().GetInt64("page")
		size, _ := cmd.Flags().GetInt64("size")

		cohorts, err := client.ListCohorts(cmd.Context(), page, size)
		if err != nil {
			return fmt.Errorf("failed to list cohorts: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCREATED")
		for _, c := range cohorts {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, c.CreatedAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

var listCohortMembersCmd = &cobra.Command{
	Use:   "members [id]",
	Short: "List the usernames enrolled in a cohort",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		members, err := client.ListCohortMembers(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to list cohort members: %w", err)
		}

		for _, m := range members {
			fmt.Println(m)
		}
		return nil
	},
}

var identityCmd = &cobra.Command{
	Use:   "identity [username]",
	Short: "Show an identity with its cohorts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		view, err := client.GetIdentity(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get identity: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "ID\t%s\n", view.ID)
		fmt.Fprintf(w, "USERNAME\t%s\n", view.Username)
		fmt.Fprintf(w, "AUTH\t%s\n", view.AuthMethod)
		fmt.Fprintf(w, "EMAIL\t%s\n", view.Email)
		fmt.Fprintf(w, "NAME\t%s %s\n", view.FirstName, view.LastName)
		fmt.Fprintf(w, "IDNUMBER\t%s\n", view.IDNumber)
		fmt.Fprintf(w, "SUSPENDED\t%t\n", view.Suspended)
		fmt.Fprintf(w, "COHORTS\t%s\n", strings.Join(view.Cohorts, ","))
		return w.Flush()
	},
}

func init() {
	listCohortsCmd.Flags().Int64("page", 1, "Page number")
	listCohortsCmd.Flags().Int64("size", 0, "Page size")

	cohortCmd.AddCommand(createCohortCmd)
	cohortCmd.AddCommand(listCohortsCmd)
	cohortCmd.AddCommand(listCohortMembersCmd)

	rootCmd.AddCommand(cohortCmd)
	rootCmd.AddCommand(identityCmd)
}
