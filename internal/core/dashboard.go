package core

import "github.com/shopspring/decimal"

// daysPerYear is the divisor of the DSO formula.
var daysPerYear = decimal.NewFromInt(365)

// Dashboard is the KPI layer: a read-only combination of the statements.
// Every value is copied from the statement it references; nothing here is
// recomputed from the base ledger, so the dashboard can never disagree with
// the statements it summarizes.
type Dashboard struct {
	MonthlyRevenue   decimal.Decimal `json:"monthly_revenue" semantic:"money"`
	MonthlyExpenses  decimal.Decimal `json:"monthly_expenses" semantic:"money"`
	MonthlyNetProfit decimal.Decimal `json:"monthly_net_profit" semantic:"money"`
	MonthlyMargin    decimal.Decimal `json:"monthly_margin" semantic:"percent"`

	YTDRevenue   decimal.Decimal `json:"ytd_revenue" semantic:"money"`
	YTDExpenses  decimal.Decimal `json:"ytd_expenses" semantic:"money"`
	YTDNetProfit decimal.Decimal `json:"ytd_net_profit" semantic:"money"`
	YTDMargin    decimal.Decimal `json:"ytd_margin" semantic:"percent"`

	CashInHand decimal.Decimal `json:"cash_in_hand" semantic:"money"`
	CashAtBank decimal.Decimal `json:"cash_at_bank" semantic:"money"`
	TotalCash  decimal.Decimal `json:"total_cash" semantic:"money"`

	OutstandingReceivables decimal.Decimal `json:"outstanding_receivables" semantic:"money"`
	InventoryValue         decimal.Decimal `json:"inventory_value" semantic:"money"`
	VATPayable             decimal.Decimal `json:"vat_payable" semantic:"money"`

	DaysSalesOutstanding decimal.Decimal `json:"days_sales_outstanding" semantic:"days"`
	QuickRatio           decimal.Decimal `json:"quick_ratio" semantic:"ratio"`

	// Trend is the cash-position monthly series: revenue received, expenses,
	// and net per calendar month of the as-of year.
	Trend []MonthlyFlow `json:"trend"`
}

func buildDashboard(
	revenue RevenueView,
	rollup ExpenseRollup,
	debtors TradeDebtors,
	inventory InventoryRollup,
	cash CashPosition,
	tax TaxSummary,
	bs BalanceSheet,
) Dashboard {
	d := Dashboard{
		MonthlyRevenue:  revenue.ThisMonth,
		MonthlyExpenses: rollup.ThisMonthTotal,
		YTDRevenue:      revenue.ThisYear,
		YTDExpenses:     rollup.YearToDateTotal,

		CashInHand: cash.ClosingCash,
		CashAtBank: cash.ClosingBank,
		TotalCash:  cash.TotalCash,

		OutstandingReceivables: debtors.TotalOutstanding,
		InventoryValue:         inventory.TotalValue,
		VATPayable:             tax.NetVATPayable,

		Trend: cash.Monthly,
	}

	d.MonthlyNetProfit = d.MonthlyRevenue.Sub(d.MonthlyExpenses)
	d.MonthlyMargin = guardedDiv(d.MonthlyNetProfit, d.MonthlyRevenue)
	d.YTDNetProfit = d.YTDRevenue.Sub(d.YTDExpenses)
	d.YTDMargin = guardedDiv(d.YTDNetProfit, d.YTDRevenue)

	d.DaysSalesOutstanding = guardedDiv(d.OutstandingReceivables, d.YTDRevenue.Div(daysPerYear))
	d.QuickRatio = guardedDiv(bs.TotalCurrentAssets, bs.TotalLiabilities)

	return d
}
