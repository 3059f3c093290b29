package ai

import (
	"bookkeeper/internal/core"
)

// bundleDigest is the compact view of a StatementBundle sent to the model.
// Amounts go out as strings so the model quotes them verbatim instead of
// re-rounding floats.
type bundleDigest struct {
	AsOf string `json:"as_of"`

	MonthlyRevenue   string `json:"monthly_revenue"`
	MonthlyExpenses  string `json:"monthly_expenses"`
	MonthlyNetProfit string `json:"monthly_net_profit"`
	YTDRevenue       string `json:"ytd_revenue"`
	YTDExpenses      string `json:"ytd_expenses"`
	YTDNetProfit     string `json:"ytd_net_profit"`

	CashInHand string `json:"cash_in_hand"`
	CashAtBank string `json:"cash_at_bank"`
	TotalCash  string `json:"total_cash"`

	OutstandingReceivables string `json:"outstanding_receivables"`
	OverdueReceivables     string `json:"overdue_receivables"`
	UnpaidInvoiceCount     int    `json:"unpaid_invoice_count"`

	InventoryValue string `json:"inventory_value"`
	VATPayable     string `json:"vat_payable"`

	DaysSalesOutstanding string `json:"days_sales_outstanding"`
	QuickRatio           string `json:"quick_ratio"`

	BalanceSheetCheck string `json:"balance_sheet_check"`

	ReconciliationDifference string `json:"reconciliation_difference,omitempty"`

	Anomalies []string `json:"anomalies,omitempty"`
}

func digestOf(bundle *core.StatementBundle) bundleDigest {
	d := bundleDigest{
		AsOf: bundle.AsOf.Format("2006-01-02"),

		MonthlyRevenue:   bundle.Dashboard.MonthlyRevenue.StringFixed(2),
		MonthlyExpenses:  bundle.Dashboard.MonthlyExpenses.StringFixed(2),
		MonthlyNetProfit: bundle.Dashboard.MonthlyNetProfit.StringFixed(2),
		YTDRevenue:       bundle.Dashboard.YTDRevenue.StringFixed(2),
		YTDExpenses:      bundle.Dashboard.YTDExpenses.StringFixed(2),
		YTDNetProfit:     bundle.Dashboard.YTDNetProfit.StringFixed(2),

		CashInHand: bundle.CashPosition.ClosingCash.StringFixed(2),
		CashAtBank: bundle.CashPosition.ClosingBank.StringFixed(2),
		TotalCash:  bundle.CashPosition.TotalCash.StringFixed(2),

		OutstandingReceivables: bundle.TradeDebtors.TotalOutstanding.StringFixed(2),
		OverdueReceivables:     bundle.TradeDebtors.OverdueTotal.StringFixed(2),
		UnpaidInvoiceCount:     len(bundle.TradeDebtors.Rows),

		InventoryValue: bundle.Inventory.TotalValue.StringFixed(2),
		VATPayable:     bundle.TaxSummary.NetVATPayable.StringFixed(2),

		DaysSalesOutstanding: bundle.Dashboard.DaysSalesOutstanding.StringFixed(1),
		QuickRatio:           bundle.Dashboard.QuickRatio.StringFixed(2),

		BalanceSheetCheck: bundle.BalanceSheet.Check.StringFixed(2),
	}

	if bundle.BankReconciliation != nil {
		d.ReconciliationDifference = bundle.BankReconciliation.Difference.StringFixed(2)
	}
	for _, a := range bundle.Anomalies {
		d.Anomalies = append(d.Anomalies, a.String())
	}

	return d
}
