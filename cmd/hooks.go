package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/mouse-away/internal/catalog"
)

func newHooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Browse the hook catalog",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every hook",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
				for _, item := range catalog.All() {
					fmt.Fprintf(w, "%s\t%s\t%s\n", item.ID, item.Name, item.Description)
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Describe one hook",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				item, err := catalog.Lookup(args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (%s)\n\n%s\n\nUsage:\n%s\n", item.Name, item.ID, item.Description, item.Usage)
				return nil
			},
		},
	)
	return cmd
}
