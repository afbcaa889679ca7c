package cli

import (
	"paint_quote/internal/domain/entities"

	"github.com/spf13/cobra"
)

type quotationFlags struct {
	fullName      string
	email         string
	phone         string
	area          float64
	coats         string
	coatsLabel    string
	paintType     string
	category      string
	categoryLabel string
}

func (f *quotationFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.fullName, "name", "", "Client full name")
	fs.StringVar(&f.email, "email", "", "Client email")
	fs.StringVar(&f.phone, "phone", "", "Client phone")
	fs.Float64Var(&f.area, "area", 0, "Area to paint in square meters")
	fs.StringVar(&f.coats, "coats", "", "Number of coats (a coat multiplier key, e.g. 2)")
	fs.StringVar(&f.coatsLabel, "coats-label", "", "Display label for the coats (defaults to --coats)")
	fs.StringVar(&f.paintType, "paint-type", "", "Paint usage, e.g. interior or exterior")
	fs.StringVar(&f.category, "category", "", "Paint category (a rate key, e.g. standard)")
	fs.StringVar(&f.categoryLabel, "category-label", "", "Display label for the category (defaults to --category)")
}

func (f *quotationFlags) input() entities.QuotationInput {
	return entities.QuotationInput{
		FullName:           f.fullName,
		Email:              f.email,
		Phone:              f.phone,
		Area:               f.area,
		Coats:              f.coats,
		CoatsLabel:         f.coatsLabel,
		PaintType:          f.paintType,
		PaintCategory:      f.category,
		PaintCategoryLabel: f.categoryLabel,
	}
}

// overlay applies only the flags the user set on top of base. A new rate key drops
// the old label unless a new label is given too.
func (f *quotationFlags) overlay(cmd *cobra.Command, base entities.QuotationInput) entities.QuotationInput {
	changed := cmd.Flags().Changed
	if changed("name") {
		base.FullName = f.fullName
	}
	if changed("email") {
		base.Email = f.email
	}
	if changed("phone") {
		base.Phone = f.phone
	}
	if changed("area") {
		base.Area = f.area
	}
	if changed("coats") {
		base.Coats = f.coats
		base.CoatsLabel = ""
	}
	if changed("coats-label") {
		base.CoatsLabel = f.coatsLabel
	}
	if changed("paint-type") {
		base.PaintType = f.paintType
	}
	if changed("category") {
		base.PaintCategory = f.category
		base.PaintCategoryLabel = ""
	}
	if changed("category-label") {
		base.PaintCategoryLabel = f.categoryLabel
	}
	return base
}

func newNewCmd(a *app) *cobra.Command {
	var f quotationFlags
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Price a job and save it as a new quotation",
		Long: `Price a job from the published rates and save the quotation.

Examples:
  quote new --name "Jane Wanjiru" --email jane@example.com --phone 0712345678 \
    --area 20 --coats 2 --paint-type interior --category standard`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadRates(cmd.Context()); err != nil {
				return err
			}
			if _, err := a.lifecycle.Submit(cmd.Context(), f.input()); err != nil {
				return reported(err)
			}
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var f quotationFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a saved quotation and re-price it",
		Long: `Load a saved quotation, apply the given changes and re-price it with the
current rates. Fields without a flag keep their saved value.

Examples:
  quote edit 5f0c... --area 35
  quote edit 5f0c... --category premium --category-label "Premium Silk"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.loadRates(ctx); err != nil {
				return err
			}
			q, err := a.lookup(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.lifecycle.BeginEdit(q); err != nil {
				return err
			}
			input := f.overlay(cmd, q.Input())
			if _, err := a.lifecycle.Submit(ctx, input); err != nil {
				return reported(err)
			}
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved quotation",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.lifecycle.Delete(cmd.Context(), args[0]); err != nil {
				return reported(err)
			}
			return nil
		},
	}
}
