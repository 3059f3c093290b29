package core_test

import (
	"testing"

	"bookkeeper/internal/core"

	"github.com/shopspring/decimal"
)

func TestInvoice_DerivedArithmetic(t *testing.T) {
	// 100 units at 150 with 15% VAT and a partial payment of 15000.
	inv := core.Invoice{
		InvoiceID: "INV-001",
		Items: []core.LineItem{
			{Description: "Scaffold hire", Quantity: decimal.NewFromInt(100), UnitPrice: decimal.NewFromInt(150)},
		},
		AmountReceived: decimal.NewFromInt(15000),
	}
	rate := decimal.NewFromInt(15)

	if got, want := inv.Subtotal(), decimal.NewFromInt(15000); !got.Equal(want) {
		t.Errorf("subtotal = %s, want %s", got, want)
	}
	if got, want := inv.VATAt(rate), decimal.NewFromInt(2250); !got.Equal(want) {
		t.Errorf("vat = %s, want %s", got, want)
	}
	if got, want := inv.TotalAt(rate), decimal.NewFromInt(17250); !got.Equal(want) {
		t.Errorf("total = %s, want %s", got, want)
	}
	if got, want := inv.BalanceAt(rate), decimal.NewFromInt(2250); !got.Equal(want) {
		t.Errorf("balance = %s, want %s", got, want)
	}
	if got := inv.StatusAt(rate); got != core.StatusPartiallyPaid {
		t.Errorf("status = %s, want %s", got, core.StatusPartiallyPaid)
	}
}

func TestInvoice_StatusAt(t *testing.T) {
	rate := decimal.NewFromInt(15)
	line := core.LineItem{Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(100)}
	// subtotal 1000, vat 150, total 1150

	tests := []struct {
		name     string
		received decimal.Decimal
		want     core.PaymentStatus
	}{
		{"nothing received", decimal.Zero, core.StatusUnpaid},
		{"partial payment", decimal.NewFromInt(500), core.StatusPartiallyPaid},
		{"exactly settled", decimal.NewFromInt(1150), core.StatusPaid},
		{"one cent short", decimal.RequireFromString("1149.99"), core.StatusPartiallyPaid},
		// An overpaid invoice has a negative balance: it is neither settled
		// nor partially outstanding.
		{"overpaid", decimal.NewFromInt(1200), core.StatusUnpaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := core.Invoice{Items: []core.LineItem{line}, AmountReceived: tt.received}
			if got := inv.StatusAt(rate); got != tt.want {
				t.Errorf("status = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestInvoice_ZeroLines(t *testing.T) {
	inv := core.Invoice{InvoiceID: "INV-002", AmountReceived: decimal.Zero}
	rate := decimal.NewFromInt(15)

	if !inv.Subtotal().IsZero() || !inv.TotalAt(rate).IsZero() {
		t.Errorf("empty invoice should total zero, got subtotal %s total %s", inv.Subtotal(), inv.TotalAt(rate))
	}
	if got := inv.StatusAt(rate); got != core.StatusPaid {
		// A zero-total invoice with nothing received has a zero balance.
		t.Errorf("status = %s, want %s", got, core.StatusPaid)
	}
}
