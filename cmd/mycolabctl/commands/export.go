package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a user's grows and flushes to an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, _ := cmd.Flags().GetString("user")
			out, _ := cmd.Flags().GetString("out")

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer closeApp(a)

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := a.Export.WriteGrows(f, user); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().String("user", "", "user id")
	cmd.Flags().String("out", "grows.xlsx", "output file")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
