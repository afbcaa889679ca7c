package cli

import "github.com/spf13/cobra"

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"history"},
		Short:   "List saved quotations, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.lifecycle.RefreshHistory(cmd.Context()); err != nil {
				return reported(err)
			}
			return nil
		},
	}
}
