package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"paint_quote/internal/adapter/presenter"
	"paint_quote/internal/adapter/remote"
	"paint_quote/internal/domain/entities"
	"paint_quote/internal/infrastructure/config"
	"paint_quote/internal/usecase"

	"github.com/spf13/cobra"
)

// app is built once per invocation, after flags are parsed.
type app struct {
	client    *remote.Client
	presenter *presenter.Terminal
	rates     *usecase.RateStore
	lifecycle *usecase.QuotationLifecycle
}

// reportedError marks a failure the presenter has already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// NewRootCmd builds the quote command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	var (
		apiURL  string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "quote",
		Short: "Estimate and manage painting job quotations",
		Long: `quote prices painting jobs from the published rates and keeps a history of
saved quotations on the quotation service.

The service address comes from --api-url or QUOTE_API_URL.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				log.SetOutput(io.Discard)
			}
			cfg, err := config.LoadClient()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if apiURL != "" {
				cfg.APIURL = apiURL
			}
			client, err := remote.NewClient(cfg.APIURL, cfg.Timeout)
			if err != nil {
				return err
			}
			a.client = client
			a.presenter = presenter.NewTerminal(cmd.OutOrStdout())
			a.rates = usecase.NewRateStore(client)
			a.lifecycle = usecase.NewQuotationLifecycle(a.rates, client, a.presenter)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "Quotation service URL (overrides QUOTE_API_URL)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests and state changes to stderr")

	root.AddCommand(
		newRatesCmd(a),
		newListCmd(a),
		newNewCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newShowCmd(a),
		newExportCmd(a),
	)
	return root
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		var rep *reportedError
		if !errors.As(err, &rep) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

// loadRates fetches the rate set, reporting a failure through the presenter.
func (a *app) loadRates(ctx context.Context) error {
	if err := a.rates.Load(ctx); err != nil {
		a.presenter.Notify(usecase.UserMessage(err), true)
		return reported(err)
	}
	return nil
}

// lookup resolves a saved quotation, reporting a failure through the presenter.
func (a *app) lookup(ctx context.Context, id string) (entities.Quotation, error) {
	q, err := a.lifecycle.Lookup(ctx, id)
	if err != nil {
		a.presenter.Notify(usecase.UserMessage(err), true)
		return entities.Quotation{}, reported(err)
	}
	return q, nil
}
