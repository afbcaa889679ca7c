package cli

import (
	"fmt"
	"os"

	"paint_quote/internal/adapter/export"

	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved quotation or write it as a text document",
		Long: `Show a saved quotation.

Examples:
  quote show 5f0c...                      # render in the terminal
  quote show 5f0c... --output quote.txt   # write a plain-text document
  quote show 5f0c... --output -           # plain text on stdout, e.g. to copy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := a.lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			switch output {
			case "":
				a.presenter.RenderCurrent(&q)
				return nil
			case "-":
				return export.WriteQuotationText(cmd.OutOrStdout(), q)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			if err := export.WriteQuotationText(f, q); err != nil {
				_ = f.Close()
				return fmt.Errorf("writing quotation: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing quotation: %w", err)
			}
			a.presenter.Notify(fmt.Sprintf("Quotation written to %s", output), false)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write a plain-text document to this file (- for stdout)")
	return cmd
}
