package core_test

import (
	"testing"
	"time"

	"bookkeeper/internal/core"

	"github.com/shopspring/decimal"
)

func unpaidInvoice(id string, issue time.Time, amount int64) core.Invoice {
	return core.Invoice{
		InvoiceID: id,
		IssueDate: issue,
		EventDate: issue,
		Items:     []core.LineItem{{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(amount)}},
	}
}

func TestTradeDebtors_AgingBoundaries(t *testing.T) {
	issue := day(2025, time.January, 1)

	tests := []struct {
		name string
		asOf time.Time
		want core.AgingBucket
	}{
		{"30 days is still current", day(2025, time.January, 31), core.BucketCurrent},
		{"31 days is due soon", day(2025, time.February, 1), core.BucketDueSoon},
		{"60 days is due soon", day(2025, time.March, 2), core.BucketDueSoon},
		{"61 days is overdue", day(2025, time.March, 3), core.BucketOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := core.NewLedger(testSettings())
			if err := l.AddInvoice(unpaidInvoice("INV-001", issue, 1000)); err != nil {
				t.Fatalf("add invoice: %v", err)
			}

			bundle, err := core.Compute(testSettings(), l, tt.asOf)
			if err != nil {
				t.Fatalf("compute: %v", err)
			}
			rows := bundle.TradeDebtors.Rows
			if len(rows) != 1 {
				t.Fatalf("rows = %d, want 1", len(rows))
			}
			if rows[0].Status != tt.want {
				t.Errorf("bucket = %s (%d days), want %s", rows[0].Status, rows[0].DaysOutstanding, tt.want)
			}
		})
	}
}

// An unpaid invoice must never move to a less severe bucket as time passes.
func TestTradeDebtors_AgingIsMonotonic(t *testing.T) {
	issue := day(2025, time.January, 10)
	settings := testSettings()

	prevRank := -1
	for _, asOf := range []time.Time{
		day(2025, time.January, 20),
		day(2025, time.February, 20),
		day(2025, time.April, 20),
		day(2025, time.December, 31),
	} {
		l := core.NewLedger(settings)
		if err := l.AddInvoice(unpaidInvoice("INV-001", issue, 1000)); err != nil {
			t.Fatalf("add invoice: %v", err)
		}
		bundle, err := core.Compute(settings, l, asOf)
		if err != nil {
			t.Fatalf("compute: %v", err)
		}
		rank := bundle.TradeDebtors.Rows[0].Status.Rank()
		if rank < prevRank {
			t.Errorf("as of %s: bucket rank %d regressed below %d", asOf.Format("2006-01-02"), rank, prevRank)
		}
		prevRank = rank
	}
}

func TestTradeDebtors_OnlyUnpaidInvoicesAppear(t *testing.T) {
	settings := testSettings()
	l := core.NewLedger(settings)

	// Fully paid: subtotal 1000, VAT 150, received 1150.
	paid := unpaidInvoice("INV-001", day(2025, time.February, 1), 1000)
	paid.AmountReceived = decimal.NewFromInt(1150)
	if err := l.AddInvoice(paid); err != nil {
		t.Fatalf("add invoice: %v", err)
	}
	if err := l.AddInvoice(unpaidInvoice("INV-002", day(2025, time.February, 1), 2000)); err != nil {
		t.Fatalf("add invoice: %v", err)
	}

	bundle, err := core.Compute(settings, l, day(2025, time.February, 15))
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	td := bundle.TradeDebtors
	if len(td.Rows) != 1 || td.Rows[0].InvoiceID != "INV-002" {
		t.Fatalf("rows = %+v, want only INV-002", td.Rows)
	}
	if want := decimal.NewFromInt(2300); !td.TotalOutstanding.Equal(want) {
		t.Errorf("total outstanding = %s, want %s", td.TotalOutstanding, want)
	}
	if !td.CurrentTotal.Equal(td.TotalOutstanding) {
		t.Errorf("bucket totals must sum to the grand total")
	}
	if got, want := td.Rows[0].DueDate, day(2025, time.March, 3); !got.Equal(want) {
		t.Errorf("due date = %s, want issue + 30 days (%s)", got, want)
	}
}
