package cli

import (
	"fmt"
	"os"

	"paint_quote/internal/adapter/export"
	"paint_quote/internal/usecase"

	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the quotation history to an Excel workbook",
		Long: `Export every saved quotation to an .xlsx workbook, one row per quotation.

Examples:
  quote export --output quotations.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			quotations, err := a.client.List(cmd.Context())
			if err != nil {
				a.presenter.Notify(usecase.UserMessage(err), true)
				return reported(err)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			if err := export.WriteHistoryXLSX(f, quotations); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing workbook: %w", err)
			}
			a.presenter.Notify(fmt.Sprintf("Exported %d quotations to %s", len(quotations), output), false)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "quotations.xlsx", "Workbook path")
	return cmd
}
