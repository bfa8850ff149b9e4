package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFocusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Print today's focus tasks for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, _ := cmd.Flags().GetString("user")
			asJSON, _ := cmd.Flags().GetBool("json")

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer closeApp(a)

			f, err := a.Focus.Today(cmd.Context(), user)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(f)
			}
			fmt.Fprintf(out, "%s (%s): %d of %d tasks\n", f.Date, f.Timezone, len(f.Tasks), f.Total)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, t := range f.Tasks {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Priority, t.DueDate, t.Title, t.Detail)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().String("user", "", "user id")
	cmd.Flags().Bool("json", false, "print JSON")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
