package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/immobilier_backend/internal/apperrors"
	"github.com/SscSPs/immobilier_backend/internal/dto"
	"github.com/spf13/cobra"
)

var errNotConfirmed = errors.New("refusing to delete without --yes")

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect and remove registered users",
	}
	cmd.AddCommand(newUsersListCmd(a), newUsersCountCmd(a), newUsersFindCmd(a), newUsersDeleteCmd(a))
	return cmd
}

func newUsersListCmd(a *app) *cobra.Command {
	var limit, offset int
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			users, err := a.users.ListUsers(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(dto.ToUserResponseList(users))
			}
			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No users found.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tACTIVE\tCREATED")
			for _, u := range users {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n", u.UserID, u.Username, u.Email, u.IsActive, u.CreatedAt.Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of users")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of users to skip")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the public user records as JSON")
	return cmd
}

func newUsersCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			count, err := a.users.CountUsers(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d user(s)\n", count)
			return nil
		},
	}
}

func newUsersFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <username>",
		Short: "Show a user and its latest password change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			user, err := a.users.GetUserByUsername(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return fmt.Errorf("user %q not found", args[0])
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:        %s\n", user.UserID)
			fmt.Fprintf(out, "Username:  %s\n", user.Username)
			fmt.Fprintf(out, "Email:     %s\n", user.Email)
			fmt.Fprintf(out, "Active:    %t\n", user.IsActive)
			fmt.Fprintf(out, "Created:   %s\n", user.CreatedAt.Format(time.RFC3339))

			latest, err := a.history.GetLatestPasswordChange(cmd.Context(), user.UserID)
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
				fmt.Fprintln(out, "Password:  never recorded")
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "Password:  changed %s (%s)\n", latest.ChangedAt.Format(time.RFC3339), deref(latest.Reason))
			}
			return nil
		},
	}
}

func newUsersDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete a user and its password history",
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
			if err := a.users.DeleteUser(cmd.Context(), user.UserID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s (%s)\n", user.Username, user.UserID)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")
	return cmd
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
