package core

import "github.com/shopspring/decimal"

// BalanceSheet assembles the other statements into the as-of position.
// Check is total assets - (total liabilities + total equity): an explicit,
// surfaced value, never silently zeroed. Equity embeds the YTD net income
// computed by the same run; a Check beyond epsilon signals wealth the model
// does not account for (data inconsistency), not a program fault.
type BalanceSheet struct {
	CashInHand         decimal.Decimal `json:"cash_in_hand" semantic:"money"`
	CashAtBank         decimal.Decimal `json:"cash_at_bank" semantic:"money"`
	AccountsReceivable decimal.Decimal `json:"accounts_receivable" semantic:"money"`
	TotalCurrentAssets decimal.Decimal `json:"total_current_assets" semantic:"money"`

	Inventory        decimal.Decimal `json:"inventory" semantic:"money"`
	TotalFixedAssets decimal.Decimal `json:"total_fixed_assets" semantic:"money"`
	TotalAssets      decimal.Decimal `json:"total_assets" semantic:"money"`

	AccountsPayable  decimal.Decimal `json:"accounts_payable" semantic:"money"`
	VATPayable       decimal.Decimal `json:"vat_payable" semantic:"money"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities" semantic:"money"`

	OpeningCapital      decimal.Decimal `json:"opening_capital" semantic:"money"`
	RetainedEarningsYTD decimal.Decimal `json:"retained_earnings_ytd" semantic:"money"`
	TotalEquity         decimal.Decimal `json:"total_equity" semantic:"money"`

	TotalLiabilitiesAndEquity decimal.Decimal `json:"total_liabilities_and_equity" semantic:"money"`

	Check decimal.Decimal `json:"check" semantic:"money"`
}

func buildBalanceSheet(
	s Settings,
	cash CashPosition,
	debtors TradeDebtors,
	inventory InventoryRollup,
	tax TaxSummary,
	pl ProfitAndLoss,
	vendors []VendorAccount,
) (BalanceSheet, []Anomaly) {
	bs := BalanceSheet{
		CashInHand:          cash.ClosingCash,
		CashAtBank:          cash.ClosingBank,
		AccountsReceivable:  debtors.TotalOutstanding,
		Inventory:           inventory.TotalValue,
		VATPayable:          tax.NetVATPayable,
		OpeningCapital:      s.OpeningCash.Add(s.OpeningBank),
		RetainedEarningsYTD: pl.YearToDate.NetIncome,
	}

	bs.TotalCurrentAssets = bs.CashInHand.Add(bs.CashAtBank).Add(bs.AccountsReceivable)
	bs.TotalFixedAssets = bs.Inventory
	bs.TotalAssets = bs.TotalCurrentAssets.Add(bs.TotalFixedAssets)

	// Payables are nonzero only when a vendor-payments ledger exists;
	// without one every purchase defaults to settled.
	bs.AccountsPayable = decimal.Zero
	for _, v := range vendors {
		bs.AccountsPayable = bs.AccountsPayable.Add(v.BalanceOwed)
	}
	bs.TotalLiabilities = bs.AccountsPayable.Add(bs.VATPayable)

	bs.TotalEquity = bs.OpeningCapital.Add(bs.RetainedEarningsYTD)
	bs.TotalLiabilitiesAndEquity = bs.TotalLiabilities.Add(bs.TotalEquity)

	bs.Check = bs.TotalAssets.Sub(bs.TotalLiabilitiesAndEquity)

	var anomalies []Anomaly
	if bs.Check.Abs().GreaterThan(s.Epsilon) {
		anomalies = append(anomalies, invariantAnomaly(SeverityWarning,
			"balance sheet",
			"assets %s do not equal liabilities+equity %s (difference %s)",
			bs.TotalAssets, bs.TotalLiabilitiesAndEquity, bs.Check))
	}

	return bs, anomalies
}
