package core_test

import (
	"testing"
	"time"

	"bookkeeper/internal/core"

	"github.com/shopspring/decimal"
)

func TestCustomerAccounts_Status(t *testing.T) {
	tests := []struct {
		name        string
		creditLimit int64
		received    int64 // against a 1150 total (1000 + 15% VAT)
		want        core.CustomerStatus
	}{
		{"settled", 10000, 1150, core.CustomerPaid},
		{"small balance", 10000, 1000, core.CustomerActive},
		{"balance above 80% of limit", 1000, 0, core.CustomerCreditWarning},
		{"balance exactly at 80% of limit", 1000, 350, core.CustomerActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testSettings()
			l := core.NewLedger(settings)
			if err := l.AddCustomer(core.Customer{
				CustomerID: "C-001", Name: "Acme",
				CreditLimit: decimal.NewFromInt(tt.creditLimit),
			}); err != nil {
				t.Fatalf("add customer: %v", err)
			}
			inv := unpaidInvoice("INV-001", day(2025, time.March, 1), 1000)
			inv.CustomerID = "C-001"
			inv.AmountReceived = decimal.NewFromInt(tt.received)
			if err := l.AddInvoice(inv); err != nil {
				t.Fatalf("add invoice: %v", err)
			}

			accounts := mustCompute(t, settings, l, day(2025, time.June, 15)).Customers
			if len(accounts) != 1 {
				t.Fatalf("accounts = %d, want 1", len(accounts))
			}
			if accounts[0].Status != tt.want {
				t.Errorf("status = %s (balance %s), want %s", accounts[0].Status, accounts[0].Balance, tt.want)
			}
		})
	}
}

func TestCustomerAccounts_JoinByID(t *testing.T) {
	settings := testSettings()
	l := core.NewLedger(settings)
	if err := l.AddCustomer(core.Customer{CustomerID: "C-001", Name: "Acme"}); err != nil {
		t.Fatalf("add customer: %v", err)
	}

	// One invoice joins by id, one points at a customer that does not exist.
	matched := unpaidInvoice("INV-001", day(2025, time.March, 1), 1000)
	matched.CustomerID = "C-001"
	orphan := unpaidInvoice("INV-002", day(2025, time.March, 2), 9999)
	orphan.CustomerID = "C-404"
	if err := l.AddInvoice(matched); err != nil {
		t.Fatalf("add invoice: %v", err)
	}
	if err := l.AddInvoice(orphan); err != nil {
		t.Fatalf("add invoice: %v", err)
	}

	bundle := mustCompute(t, settings, l, day(2025, time.June, 15))
	acct := bundle.Customers[0]
	if want := decimal.NewFromInt(1150); !acct.TotalInvoiced.Equal(want) {
		t.Errorf("total invoiced = %s, want only the matched invoice (%s)", acct.TotalInvoiced, want)
	}

	found := false
	for _, a := range bundle.Anomalies {
		if a.Kind == core.ReferenceError {
			found = true
		}
	}
	if !found {
		t.Errorf("the orphan invoice should surface a reference anomaly")
	}
}

func TestVendorAccounts_PaymentLedger(t *testing.T) {
	settings := testSettings()

	t.Run("no payments means settled", func(t *testing.T) {
		l := core.NewLedger(settings)
		if err := l.AddVendor(core.Vendor{VendorID: "V-001", Name: "Partsco"}); err != nil {
			t.Fatalf("add vendor: %v", err)
		}
		if err := l.AddExpense(core.Expense{
			Date: day(2025, time.March, 1), Category: "Equipment Purchase", VendorID: "V-001",
			Amount: decimal.NewFromInt(500), PaymentMethod: "Bank Transfer",
		}); err != nil {
			t.Fatalf("add expense: %v", err)
		}

		acct := mustCompute(t, settings, l, day(2025, time.June, 15)).Vendors[0]
		if !acct.BalanceOwed.IsZero() {
			t.Errorf("balance owed = %s, want 0", acct.BalanceOwed)
		}
		if acct.Status != core.VendorCurrent {
			t.Errorf("status = %s, want %s", acct.Status, core.VendorCurrent)
		}
	})

	t.Run("payments ledger drives the balance", func(t *testing.T) {
		l := core.NewLedger(settings)
		if err := l.AddVendor(core.Vendor{VendorID: "V-001", Name: "Partsco"}); err != nil {
			t.Fatalf("add vendor: %v", err)
		}
		if err := l.AddExpense(core.Expense{
			Date: day(2025, time.March, 1), Category: "Equipment Purchase", VendorID: "V-001",
			Amount: decimal.NewFromInt(500), PaymentMethod: "Bank Transfer",
		}); err != nil {
			t.Fatalf("add expense: %v", err)
		}
		if err := l.AddVendorPayment(core.VendorPayment{
			Date: day(2025, time.April, 1), VendorID: "V-001",
			Amount: decimal.NewFromInt(200), Method: "Bank Transfer", Reference: "PAY-001",
		}); err != nil {
			t.Fatalf("add payment: %v", err)
		}

		bundle := mustCompute(t, settings, l, day(2025, time.June, 15))
		acct := bundle.Vendors[0]
		if want := decimal.NewFromInt(300); !acct.BalanceOwed.Equal(want) {
			t.Errorf("balance owed = %s, want %s", acct.BalanceOwed, want)
		}
		if acct.Status != core.VendorPayable {
			t.Errorf("status = %s, want %s", acct.Status, core.VendorPayable)
		}
		// The open payable also shows up on the balance sheet.
		if want := decimal.NewFromInt(300); !bundle.BalanceSheet.AccountsPayable.Equal(want) {
			t.Errorf("accounts payable = %s, want %s", bundle.BalanceSheet.AccountsPayable, want)
		}
	})
}

func TestExpenseRollup_UnclassifiedResidual(t *testing.T) {
	settings := testSettings()
	l := core.NewLedger(settings)

	if err := l.AddExpense(core.Expense{
		Date: day(2025, time.June, 1), Category: "Rent",
		Amount: decimal.NewFromInt(800), PaymentMethod: "Bank Transfer",
	}); err != nil {
		t.Fatalf("add expense: %v", err)
	}
	if err := l.AddExpense(core.Expense{
		Date: day(2025, time.June, 2), Category: "Snacks",
		Amount: decimal.NewFromInt(50), PaymentMethod: "Bank Transfer",
	}); err != nil {
		t.Fatalf("add expense: %v", err)
	}

	rollup := mustCompute(t, settings, l, day(2025, time.June, 15)).ExpenseRollup

	if want := decimal.NewFromInt(800); !rollup.CategoryYTD("Rent").Equal(want) {
		t.Errorf("rent ytd = %s, want %s", rollup.CategoryYTD("Rent"), want)
	}
	if want := decimal.NewFromInt(50); !rollup.Unclassified.YearToDate.Equal(want) {
		t.Errorf("unclassified ytd = %s, want %s", rollup.Unclassified.YearToDate, want)
	}
	// The residual still counts toward the totals, so nothing is dropped.
	if want := decimal.NewFromInt(850); !rollup.YearToDateTotal.Equal(want) {
		t.Errorf("ytd total = %s, want %s", rollup.YearToDateTotal, want)
	}
	// Categories keep vocabulary order regardless of insertion order.
	if got := rollup.Categories[0].Category; got != settings.ExpenseCategories[0] {
		t.Errorf("first category = %q, want %q", got, settings.ExpenseCategories[0])
	}
}
