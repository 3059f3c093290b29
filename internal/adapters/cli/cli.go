package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"bookkeeper/internal/app"
	"bookkeeper/internal/core"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree over the ApplicationService. Every
// command accepts --as-of YYYY-MM-DD; without it statements are computed for
// today.
func NewRootCommand(svc app.ApplicationService) *cobra.Command {
	var asOfFlag string

	root := &cobra.Command{
		Use:           "bookkeeper",
		Short:         "Compute financial statements from the business ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&asOfFlag, "as-of", "", "evaluation date (YYYY-MM-DD, default today)")

	asOf := func() (time.Time, error) {
		if asOfFlag == "" {
			return time.Time{}, nil
		}
		t, err := time.Parse("2006-01-02", asOfFlag)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --as-of %q: expected YYYY-MM-DD", asOfFlag)
		}
		return t, nil
	}

	root.AddCommand(&cobra.Command{
		Use:   "statements",
		Short: "Print the full set of financial statements",
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := asOf()
			if err != nil {
				return err
			}
			result, err := svc.GetStatements(cmd.Context(), at)
			if err != nil {
				return err
			}
			printStatements(result)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "debtors",
		Short: "Print the receivables aging",
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := asOf()
			if err != nil {
				return err
			}
			result, err := svc.GetStatements(cmd.Context(), at)
			if err != nil {
				return err
			}
			printDebtors(result.Bundle.TradeDebtors)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "cashflow",
		Short: "Print the monthly cash flow series",
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := asOf()
			if err != nil {
				return err
			}
			result, err := svc.GetStatements(cmd.Context(), at)
			if err != nil {
				return err
			}
			printCashflow(result.Bundle.CashPosition)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "customers",
		Short: "Print customer accounts with invoice totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := asOf()
			if err != nil {
				return err
			}
			result, err := svc.GetCustomers(cmd.Context(), at)
			if err != nil {
				return err
			}
			printCustomers(result)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "vendors",
		Short: "Print vendor accounts with purchase and payment totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := asOf()
			if err != nil {
				return err
			}
			result, err := svc.GetVendors(cmd.Context(), at)
			if err != nil {
				return err
			}
			printVendors(result)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "inventory",
		Short: "Print the stock valuation",
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := asOf()
			if err != nil {
				return err
			}
			result, err := svc.GetInventory(cmd.Context(), at)
			if err != nil {
				return err
			}
			printInventory(result)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "json",
		Short: "Print the full statement bundle as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := asOf()
			if err != nil {
				return err
			}
			result, err := svc.GetStatements(cmd.Context(), at)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result.Bundle)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the statement bundle",
		Long: `Print the JSON schema of the statement bundle payload, for
downstream renderers that validate the /api/statements response.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reflector := jsonschema.Reflector{DoNotReference: true}
			schema := reflector.Reflect(core.StatementBundle{})
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(schema)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "explain",
		Short: "Ask the commentary agent for a plain-language read of the statements",
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := asOf()
			if err != nil {
				return err
			}
			result, err := svc.ExplainStatements(cmd.Context(), at)
			if err != nil {
				return err
			}
			printCommentary(result)
			return nil
		},
	})

	return root
}
