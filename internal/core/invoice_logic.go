package core

import "github.com/shopspring/decimal"

// Derived invoice arithmetic. None of these values are stored; they are
// recomputed from the line items and the VAT rate on every evaluation so the
// base record stays the single source of truth.

// Subtotal sums quantity times unit price over the line items.
func (inv Invoice) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range inv.Items {
		sum = sum.Add(item.Quantity.Mul(item.UnitPrice))
	}
	return sum
}

// VATAt is subtotal * rate/100 for a percentage VAT rate.
func (inv Invoice) VATAt(rate decimal.Decimal) decimal.Decimal {
	return inv.Subtotal().Mul(rate).Div(decimal.NewFromInt(100))
}

// TotalAt is subtotal + VAT.
func (inv Invoice) TotalAt(rate decimal.Decimal) decimal.Decimal {
	return inv.Subtotal().Add(inv.VATAt(rate))
}

// BalanceAt is total minus amount received. An overpaid invoice yields a
// negative balance; the model does not clamp it (the revenue view surfaces
// a warning instead).
func (inv Invoice) BalanceAt(rate decimal.Decimal) decimal.Decimal {
	return inv.TotalAt(rate).Sub(inv.AmountReceived)
}

// StatusAt classifies settlement: Paid when the balance is exactly zero,
// Partially Paid when something was received but a positive balance remains,
// Unpaid otherwise.
func (inv Invoice) StatusAt(rate decimal.Decimal) PaymentStatus {
	balance := inv.BalanceAt(rate)
	switch {
	case balance.IsZero():
		return StatusPaid
	case inv.AmountReceived.IsPositive() && balance.IsPositive():
		return StatusPartiallyPaid
	default:
		return StatusUnpaid
	}
}
