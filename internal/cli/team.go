package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTeamCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "team",
		Short: "List team members and their roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			dir, err := app.directory(cfg)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tROLE")
			for _, m := range dir.Members() {
				fmt.Fprintf(w, "%s\t%s\n", m.Name, m.Role)
			}
			return w.Flush()
		},
	}
}
