package core

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RevenueRow is the flattened projection of one invoice: the base fields
// plus the derived total and balance, one row per invoice.
type RevenueRow struct {
	Date           time.Time       `json:"date"`
	InvoiceID      string          `json:"invoice_id"`
	ClientName     string          `json:"client_name"`
	Description    string          `json:"description"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price" semantic:"money"`
	Total          decimal.Decimal `json:"total" semantic:"money"`
	AmountReceived decimal.Decimal `json:"amount_received" semantic:"money"`
	Balance        decimal.Decimal `json:"balance" semantic:"money"`
	Status         PaymentStatus   `json:"status"`
}

// RevenueView is the invoice mirror plus its scalar aggregates. The three
// recognition windows are relative to the injected as-of date; outstanding
// is window-free.
type RevenueView struct {
	Rows []RevenueRow `json:"rows"`

	Today            decimal.Decimal `json:"today" semantic:"money"`
	ThisMonth        decimal.Decimal `json:"this_month" semantic:"money"`
	ThisYear         decimal.Decimal `json:"this_year" semantic:"money"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding" semantic:"money"`
}

// buildRevenueView projects the invoice table. Empty input yields all-zero
// aggregates and no rows; an overpaid invoice (negative balance) stays in
// the view and is surfaced as a warning.
func buildRevenueView(s Settings, invoices []Invoice, asOf time.Time) (RevenueView, []Anomaly) {
	var view RevenueView
	var anomalies []Anomaly

	view.Today = decimal.Zero
	view.ThisMonth = decimal.Zero
	view.ThisYear = decimal.Zero
	view.TotalOutstanding = decimal.Zero

	monthFrom, monthTo := monthWindow(asOf)
	yearFrom, yearTo := yearWindow(asOf)

	for _, inv := range invoices {
		total := inv.TotalAt(s.VATRate)
		balance := inv.BalanceAt(s.VATRate)

		view.Rows = append(view.Rows, RevenueRow{
			Date:           inv.IssueDate,
			InvoiceID:      inv.InvoiceID,
			ClientName:     inv.ClientName,
			Description:    flattenDescriptions(inv.Items),
			Quantity:       flattenQuantity(inv.Items),
			UnitPrice:      flattenUnitPrice(inv.Items),
			Total:          total,
			AmountReceived: inv.AmountReceived,
			Balance:        balance,
			Status:         inv.StatusAt(s.VATRate),
		})

		if sameDay(inv.IssueDate, asOf) {
			view.Today = view.Today.Add(total)
		}
		if inWindow(inv.IssueDate, monthFrom, monthTo) {
			view.ThisMonth = view.ThisMonth.Add(total)
		}
		if inWindow(inv.IssueDate, yearFrom, yearTo) {
			view.ThisYear = view.ThisYear.Add(total)
		}
		view.TotalOutstanding = view.TotalOutstanding.Add(balance)

		if balance.IsNegative() {
			anomalies = append(anomalies, referenceWarning(
				"invoice "+inv.InvoiceID,
				"amount received %s exceeds total %s (overpayment)", inv.AmountReceived, total))
		}
	}

	return view, anomalies
}

// flattenDescriptions joins the line descriptions for the one-row-per-invoice
// projection.
func flattenDescriptions(items []LineItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if it.Description != "" {
			parts = append(parts, it.Description)
		}
	}
	return strings.Join(parts, "; ")
}

func flattenQuantity(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Quantity)
	}
	return sum
}

// flattenUnitPrice is the single line's price for single-line invoices and
// the quantity-weighted average otherwise (zero quantity guards to zero).
func flattenUnitPrice(items []LineItem) decimal.Decimal {
	if len(items) == 1 {
		return items[0].UnitPrice
	}
	subtotal := decimal.Zero
	qty := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Quantity.Mul(it.UnitPrice))
		qty = qty.Add(it.Quantity)
	}
	return guardedDiv(subtotal, qty)
}
