package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"paint_quote/internal/domain/entities"
	"paint_quote/internal/usecase"

	"github.com/spf13/cobra"
)

func newRatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show the published rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadRates(cmd.Context()); err != nil {
				return err
			}
			rates, err := a.rates.Current()
			if err != nil {
				return err
			}
			a.presenter.RenderRates(rates)
			return nil
		},
	}
	cmd.AddCommand(newRatesSetCmd(a))
	return cmd
}

func newRatesSetCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the published rates from a JSON file",
		Long: `Replace the whole rate set. The file uses the same shape GET /rates returns:

  {
    "paintCategoryCostsPerSqm": {"standard": 500, "premium": 820.5},
    "coatMultipliers": {"1": 0.6, "2": 1.0, "3": 1.45},
    "labourRatePerSqm": 150,
    "transportRate": 1000,
    "overheadPercentage": 0.1
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading rates file: %w", err)
			}
			var rates entities.Rates
			if err := json.Unmarshal(raw, &rates); err != nil {
				return fmt.Errorf("parsing rates file: %w", err)
			}
			if err := rates.Validate(); err != nil {
				return fmt.Errorf("invalid rates: %w", err)
			}

			saved, err := a.client.PutRates(cmd.Context(), rates)
			if err != nil {
				a.presenter.Notify(usecase.UserMessage(err), true)
				return reported(err)
			}
			a.presenter.Notify("Rates updated successfully", false)
			a.presenter.RenderRates(saved)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Rates JSON file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
