package core

import "github.com/shopspring/decimal"

// CategoryAmount is one category summed over the fiscal year.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount" semantic:"money"`
}

// TaxSummary covers the fiscal year [fiscal-year start, +1y): invoiced vs
// received revenue, VAT netting, deductible expenses, and pre-tax profit.
// The window is a true rolling fiscal year, so a July start runs through the
// following June rather than stopping at the calendar year end.
//
// VAT on purchases prefers captured per-expense VAT; only when no expense in
// the window carries one does it fall back to the inclusive-price
// back-calculation expenses * (r/100) / (1 + r/100), and VATImputed records
// which path was taken.
type TaxSummary struct {
	RevenueInvoiced        decimal.Decimal `json:"revenue_invoiced" semantic:"money"`
	RevenueReceived        decimal.Decimal `json:"revenue_received" semantic:"money"`
	OutstandingReceivables decimal.Decimal `json:"outstanding_receivables" semantic:"money"`

	VATCollected   decimal.Decimal `json:"vat_collected" semantic:"money"`
	VATOnPurchases decimal.Decimal `json:"vat_on_purchases" semantic:"money"`
	VATImputed     bool            `json:"vat_imputed"`
	NetVATPayable  decimal.Decimal `json:"net_vat_payable" semantic:"money"`

	DeductibleByCategory []CategoryAmount `json:"deductible_by_category"`
	UnclassifiedExpenses decimal.Decimal  `json:"unclassified_expenses" semantic:"money"`
	TotalExpenses        decimal.Decimal  `json:"total_expenses" semantic:"money"`

	NetProfitBeforeTax decimal.Decimal `json:"net_profit_before_tax" semantic:"money"`
	ProfitMargin       decimal.Decimal `json:"profit_margin" semantic:"percent"`
}

func buildTaxSummary(s Settings, invoices []Invoice, expenses []Expense) TaxSummary {
	fyFrom := s.FiscalYearStart
	fyTo := s.fiscalYearEnd()

	ts := TaxSummary{
		RevenueInvoiced:      decimal.Zero,
		RevenueReceived:      decimal.Zero,
		VATCollected:         decimal.Zero,
		VATOnPurchases:       decimal.Zero,
		UnclassifiedExpenses: decimal.Zero,
		TotalExpenses:        decimal.Zero,
	}

	for _, inv := range invoices {
		if !inWindow(inv.IssueDate, fyFrom, fyTo) {
			continue
		}
		ts.RevenueInvoiced = ts.RevenueInvoiced.Add(inv.TotalAt(s.VATRate))
		ts.RevenueReceived = ts.RevenueReceived.Add(inv.AmountReceived)
		ts.VATCollected = ts.VATCollected.Add(inv.VATAt(s.VATRate))
	}
	ts.OutstandingReceivables = ts.RevenueInvoiced.Sub(ts.RevenueReceived)

	byCategory := make(map[string]int, len(s.ExpenseCategories))
	for _, cat := range s.ExpenseCategories {
		byCategory[cat] = len(ts.DeductibleByCategory)
		ts.DeductibleByCategory = append(ts.DeductibleByCategory, CategoryAmount{Category: cat, Amount: decimal.Zero})
	}

	capturedVAT := decimal.Zero
	anyCaptured := false
	for _, e := range expenses {
		if !inWindow(e.Date, fyFrom, fyTo) {
			continue
		}
		ts.TotalExpenses = ts.TotalExpenses.Add(e.Amount)
		if idx, ok := byCategory[e.Category]; ok {
			ts.DeductibleByCategory[idx].Amount = ts.DeductibleByCategory[idx].Amount.Add(e.Amount)
		} else {
			ts.UnclassifiedExpenses = ts.UnclassifiedExpenses.Add(e.Amount)
		}
		if e.VATAmount != nil {
			anyCaptured = true
			capturedVAT = capturedVAT.Add(*e.VATAmount)
		}
	}

	if anyCaptured {
		ts.VATOnPurchases = capturedVAT
	} else {
		// Inclusive-price back-calculation over total expenses: an
		// approximation, not a ledger of VAT-bearing purchases.
		hundred := decimal.NewFromInt(100)
		rate := s.VATRate.Div(hundred)
		ts.VATOnPurchases = ts.TotalExpenses.Mul(rate).Div(decimal.NewFromInt(1).Add(rate))
		ts.VATImputed = true
	}
	ts.NetVATPayable = ts.VATCollected.Sub(ts.VATOnPurchases)

	ts.NetProfitBeforeTax = ts.RevenueReceived.Sub(ts.TotalExpenses)
	ts.ProfitMargin = guardedDiv(ts.NetProfitBeforeTax, ts.RevenueReceived)

	return ts
}
