package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the password change audit trail",
	}
	cmd.AddCommand(newHistoryShowCmd(a), newHistoryPurgeCmd(a))
	return cmd
}

func newHistoryShowCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "show <username>",
		Short: "List password changes of a user, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			user, err := a.users.GetUserByUsername(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			entries, err := a.history.GetPasswordHistory(cmd.Context(), user.UserID, limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No password history for %s.\n", user.Username)
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CHANGED\tREASON\tIP")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ChangedAt.Format(time.RFC3339), deref(e.Reason), deref(e.IPAddress))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of entries")
	return cmd
}

func newHistoryPurgeCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "purge <username>",
		Short: "Delete every password history entry of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errNotConfirmed
			}
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			user, err := a.users.GetUserByUsername(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			deleted, err := a.history.PurgePasswordHistory(cmd.Context(), user.UserID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d history entr(ies) of %s\n", deleted, user.Username)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the purge")
	return cmd
}
