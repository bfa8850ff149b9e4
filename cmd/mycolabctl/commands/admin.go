package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAdminCommand() *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Manage administrators",
	}
	admin.AddCommand(newAdminSetCommand("grant", true), newAdminSetCommand("revoke", false), newAdminListCommand())
	return admin
}

func newAdminSetCommand(use string, grant bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <user>...",
		Short: use + " the admin flag",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer closeApp(a)
			for _, uid := range args {
				if _, err := a.Profiles.SetAdmin(uid, grant); err != nil {
					return fmt.Errorf("%s: %w", uid, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: admin=%t\n", uid, grant)
			}
			return nil
		},
	}
}

func newAdminListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List administrators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer closeApp(a)
			admins, err := a.Profiles.ListAdmins()
			if err != nil {
				return err
			}
			for _, p := range admins {
				fmt.Fprintln(cmd.OutOrStdout(), p.UserID)
			}
			return nil
		},
	}
}
