package core_test

import (
	"testing"
	"time"

	"bookkeeper/internal/core"

	"github.com/shopspring/decimal"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testSettings() core.Settings {
	return core.DefaultSettings(day(2025, time.January, 1))
}

func TestLedger_DuplicateIDsRejected(t *testing.T) {
	l := core.NewLedger(testSettings())

	if err := l.AddCustomer(core.Customer{CustomerID: "C-001", Name: "Acme"}); err != nil {
		t.Fatalf("add customer: %v", err)
	}
	if err := l.AddCustomer(core.Customer{CustomerID: "C-001", Name: "Other"}); err == nil {
		t.Errorf("expected error for duplicate customer id")
	}
	if err := l.AddCustomer(core.Customer{CustomerID: "C-002", Name: "Acme"}); err == nil {
		t.Errorf("expected error for duplicate customer name")
	}

	inv := core.Invoice{InvoiceID: "INV-001", CustomerID: "C-001", IssueDate: day(2025, time.March, 1)}
	if err := l.AddInvoice(inv); err != nil {
		t.Fatalf("add invoice: %v", err)
	}
	if err := l.AddInvoice(inv); err == nil {
		t.Errorf("expected error for duplicate invoice id")
	}

	item := core.InventoryItem{StockID: "STK-001", UnitPrice: decimal.NewFromInt(10)}
	if err := l.AddInventoryItem(item); err != nil {
		t.Fatalf("add inventory: %v", err)
	}
	if err := l.AddInventoryItem(item); err == nil {
		t.Errorf("expected error for duplicate stock id")
	}
}

func TestLedger_NegativeAmountsRejected(t *testing.T) {
	l := core.NewLedger(testSettings())

	err := l.AddInvoice(core.Invoice{
		InvoiceID: "INV-001",
		Items:     []core.LineItem{{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(-5)}},
	})
	if err == nil {
		t.Errorf("expected error for negative unit price")
	}

	err = l.AddExpense(core.Expense{Amount: decimal.NewFromInt(-100), Category: "Rent"})
	if err == nil {
		t.Errorf("expected error for negative expense amount")
	}

	err = l.AddInventoryItem(core.InventoryItem{StockID: "STK-001", QuantityInStore: -1})
	if err == nil {
		t.Errorf("expected error for negative quantity")
	}
}

func TestLedger_ResolvesCustomerName(t *testing.T) {
	l := core.NewLedger(testSettings())
	if err := l.AddCustomer(core.Customer{CustomerID: "C-001", Name: "Acme Builders"}); err != nil {
		t.Fatalf("add customer: %v", err)
	}
	if err := l.AddInvoice(core.Invoice{InvoiceID: "INV-001", CustomerID: "C-001", ClientName: "stale name"}); err != nil {
		t.Fatalf("add invoice: %v", err)
	}

	if got := l.Invoices()[0].ClientName; got != "Acme Builders" {
		t.Errorf("client name = %q, want resolved customer name", got)
	}
	if len(l.Anomalies()) != 0 {
		t.Errorf("expected no anomalies, got %v", l.Anomalies())
	}
}

func TestLedger_ReferenceAnomalies(t *testing.T) {
	l := core.NewLedger(testSettings())

	// Unknown customer, category, payment method, and vendor: each record is
	// kept and each mismatch becomes a warning.
	if err := l.AddInvoice(core.Invoice{InvoiceID: "INV-001", CustomerID: "C-404"}); err != nil {
		t.Fatalf("add invoice: %v", err)
	}
	if err := l.AddExpense(core.Expense{
		Reference:     "EXP-001",
		Category:      "Snacks",
		PaymentMethod: "Barter",
		Amount:        decimal.NewFromInt(50),
	}); err != nil {
		t.Fatalf("add expense: %v", err)
	}
	if err := l.AddVendorPayment(core.VendorPayment{Reference: "PAY-001", VendorID: "V-404", Amount: decimal.NewFromInt(10)}); err != nil {
		t.Fatalf("add payment: %v", err)
	}

	anomalies := l.Anomalies()
	if len(anomalies) != 4 {
		t.Fatalf("anomalies = %d, want 4: %v", len(anomalies), anomalies)
	}
	for _, a := range anomalies {
		if a.Kind != core.ReferenceError {
			t.Errorf("anomaly kind = %s, want %s", a.Kind, core.ReferenceError)
		}
		if a.Severity != core.SeverityWarning {
			t.Errorf("anomaly severity = %s, want %s", a.Severity, core.SeverityWarning)
		}
	}

	if len(l.Invoices()) != 1 || len(l.Expenses()) != 1 || len(l.VendorPayments()) != 1 {
		t.Errorf("records with soft reference problems must still be ingested")
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*core.Settings)
		expectErr bool
	}{
		{"defaults are valid", func(s *core.Settings) {}, false},
		{"zero vat is valid", func(s *core.Settings) { s.VATRate = decimal.Zero }, false},
		{"negative vat", func(s *core.Settings) { s.VATRate = decimal.NewFromInt(-1) }, true},
		{"missing fiscal year start", func(s *core.Settings) { s.FiscalYearStart = time.Time{} }, true},
		{"negative opening cash", func(s *core.Settings) { s.OpeningCash = decimal.NewFromInt(-1) }, true},
		{"no expense categories", func(s *core.Settings) { s.ExpenseCategories = nil }, true},
		{"duplicate category", func(s *core.Settings) {
			s.ExpenseCategories = []string{"Rent", "Rent"}
			s.CostOfServicesCategory = "Rent"
		}, true},
		{"cost of services outside vocabulary", func(s *core.Settings) { s.CostOfServicesCategory = "Nope" }, true},
		{"negative epsilon", func(s *core.Settings) { s.Epsilon = decimal.NewFromInt(-1) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSettings()
			tt.mutate(&s)
			err := s.Validate()
			if tt.expectErr && err == nil {
				t.Errorf("expected error, got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
