package core_test

import (
	"testing"
	"time"

	"bookkeeper/internal/core"

	"github.com/shopspring/decimal"
)

func TestTaxSummary_ImputedVAT(t *testing.T) {
	settings := testSettings()
	l := core.NewLedger(settings)

	inv := unpaidInvoice("INV-001", day(2025, time.March, 1), 10000)
	inv.AmountReceived = decimal.NewFromInt(8000)
	if err := l.AddInvoice(inv); err != nil {
		t.Fatalf("add invoice: %v", err)
	}
	// 1150 VAT-inclusive at 15% back-calculates to exactly 150.
	if err := l.AddExpense(core.Expense{
		Date: day(2025, time.April, 1), Category: "Rent",
		Amount: decimal.NewFromInt(1150), PaymentMethod: "Bank Transfer",
	}); err != nil {
		t.Fatalf("add expense: %v", err)
	}

	ts := mustCompute(t, settings, l, day(2025, time.June, 15)).TaxSummary

	if want := decimal.NewFromInt(11500); !ts.RevenueInvoiced.Equal(want) {
		t.Errorf("revenue invoiced = %s, want %s", ts.RevenueInvoiced, want)
	}
	if want := decimal.NewFromInt(8000); !ts.RevenueReceived.Equal(want) {
		t.Errorf("revenue received = %s, want %s", ts.RevenueReceived, want)
	}
	if want := decimal.NewFromInt(3500); !ts.OutstandingReceivables.Equal(want) {
		t.Errorf("outstanding = %s, want %s", ts.OutstandingReceivables, want)
	}
	if want := decimal.NewFromInt(1500); !ts.VATCollected.Equal(want) {
		t.Errorf("vat collected = %s, want %s", ts.VATCollected, want)
	}
	if !ts.VATImputed {
		t.Errorf("no expense carried captured VAT, expected the imputed path")
	}
	if want := decimal.NewFromInt(150); !ts.VATOnPurchases.Equal(want) {
		t.Errorf("vat on purchases = %s, want %s", ts.VATOnPurchases, want)
	}
	if want := decimal.NewFromInt(1350); !ts.NetVATPayable.Equal(want) {
		t.Errorf("net vat payable = %s, want %s", ts.NetVATPayable, want)
	}
	if want := decimal.NewFromInt(6850); !ts.NetProfitBeforeTax.Equal(want) {
		t.Errorf("net profit before tax = %s, want %s", ts.NetProfitBeforeTax, want)
	}
}

func TestTaxSummary_PrefersCapturedVAT(t *testing.T) {
	settings := testSettings()
	l := core.NewLedger(settings)

	captured := decimal.NewFromInt(130)
	if err := l.AddExpense(core.Expense{
		Date: day(2025, time.March, 1), Category: "Rent",
		Amount: decimal.NewFromInt(1000), PaymentMethod: "Bank Transfer",
		VATAmount: &captured,
	}); err != nil {
		t.Fatalf("add expense: %v", err)
	}
	// A second expense without captured VAT contributes nothing to input VAT
	// once any captured amount exists.
	if err := l.AddExpense(core.Expense{
		Date: day(2025, time.April, 1), Category: "Utilities",
		Amount: decimal.NewFromInt(500), PaymentMethod: "Bank Transfer",
	}); err != nil {
		t.Fatalf("add expense: %v", err)
	}

	ts := mustCompute(t, settings, l, day(2025, time.June, 15)).TaxSummary

	if ts.VATImputed {
		t.Errorf("captured VAT present, expected the captured path")
	}
	if !ts.VATOnPurchases.Equal(captured) {
		t.Errorf("vat on purchases = %s, want captured %s", ts.VATOnPurchases, captured)
	}
}

func TestTaxSummary_FiscalYearWindow(t *testing.T) {
	// Fiscal year starting in July: the tax window is [2025-07-01, 2026-07-01)
	// while the revenue view still reports the calendar year.
	settings := core.DefaultSettings(day(2025, time.July, 1))
	l := core.NewLedger(settings)

	for _, tc := range []struct {
		id    string
		issue time.Time
	}{
		{"INV-001", day(2025, time.June, 30)},  // before the fiscal year
		{"INV-002", day(2025, time.August, 1)}, // inside
		{"INV-003", day(2026, time.July, 1)},   // at the exclusive upper bound
	} {
		if err := l.AddInvoice(unpaidInvoice(tc.id, tc.issue, 1000)); err != nil {
			t.Fatalf("add invoice %s: %v", tc.id, err)
		}
	}

	ts := mustCompute(t, settings, l, day(2025, time.September, 15)).TaxSummary
	if want := decimal.NewFromInt(1150); !ts.RevenueInvoiced.Equal(want) {
		t.Errorf("revenue invoiced = %s, want only the in-window invoice (%s)", ts.RevenueInvoiced, want)
	}
}
