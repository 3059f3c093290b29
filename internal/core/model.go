package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus classifies how much of an invoice has been settled.
type PaymentStatus string

const (
	StatusPaid          PaymentStatus = "Paid"
	StatusPartiallyPaid PaymentStatus = "Partially Paid"
	StatusUnpaid        PaymentStatus = "Unpaid"
)

// LineItem is a single billed line on an invoice.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" semantic:"money"`
}

// Invoice is a base ledger record. Monetary derivations (subtotal, VAT,
// total, balance, status) are computed, never stored; see invoice_logic.go.
//
// CustomerID is the join key to the Customers table; ClientName is carried
// for display only and is resolved from the customer record when possible.
type Invoice struct {
	InvoiceID      string          `json:"invoice_id"`
	IssueDate      time.Time       `json:"issue_date"`
	EventDate      time.Time       `json:"event_date"`
	CustomerID     string          `json:"customer_id"`
	ClientName     string          `json:"client_name"`
	Items          []LineItem      `json:"items"`
	AmountReceived decimal.Decimal `json:"amount_received" semantic:"money"`
}

// Expense is an atomic base ledger record with no derived fields.
//
// VendorID joins to the Vendors table (display name resolved from there).
// VATAmount, when present, is the captured input VAT on this purchase; the
// tax summary prefers captured VAT over the inclusive-price back-calculation.
type Expense struct {
	Date          time.Time        `json:"date"`
	Category      string           `json:"category"`
	VendorID      string           `json:"vendor_id"`
	VendorName    string           `json:"vendor_name"`
	Description   string           `json:"description"`
	Amount        decimal.Decimal  `json:"amount" semantic:"money"`
	PaymentMethod string           `json:"payment_method"`
	Reference     string           `json:"reference"`
	VATAmount     *decimal.Decimal `json:"vat_amount,omitempty" semantic:"money"`
}

// Customer is a reference-table record.
type Customer struct {
	CustomerID       string          `json:"customer_id"`
	Name             string          `json:"name"`
	ContactPerson    string          `json:"contact_person,omitempty"`
	Email            string          `json:"email,omitempty"`
	Phone            string          `json:"phone,omitempty"`
	PaymentTermsDays int             `json:"payment_terms_days"`
	CreditLimit      decimal.Decimal `json:"credit_limit" semantic:"money"`
}

// Vendor is a reference-table record.
type Vendor struct {
	VendorID      string `json:"vendor_id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	PaymentTerms  string `json:"payment_terms"`
}

// VendorPayment is a supplemental payables-ledger record. When a vendor has
// no payment records at all, its purchases are treated as fully paid; once
// any payment exists, the balance owed is purchases minus recorded payments.
type VendorPayment struct {
	Date      time.Time       `json:"date"`
	VendorID  string          `json:"vendor_id"`
	Amount    decimal.Decimal `json:"amount" semantic:"money"`
	Method    string          `json:"method"`
	Reference string          `json:"reference"`
}

// InventoryItem is a base stock record. Quantities are whole units.
type InventoryItem struct {
	StockID           string          `json:"stock_id"`
	Description       string          `json:"description"`
	UnitPrice         decimal.Decimal `json:"unit_price" semantic:"money"`
	QuantityInStore   int64           `json:"quantity_in_store"`
	QuantityRented    int64           `json:"quantity_rented"`
	QuantityInTransit int64           `json:"quantity_in_transit"`
}

// TotalQuantity is in-store + rented + in-transit.
func (it InventoryItem) TotalQuantity() int64 {
	return it.QuantityInStore + it.QuantityRented + it.QuantityInTransit
}

// TotalValue is unit price times total quantity.
func (it InventoryItem) TotalValue() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(it.TotalQuantity()))
}

// BankStatementItem is an uncleared deposit or check on the external bank
// statement used by the reconciliation.
type BankStatementItem struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" semantic:"money"`
}

// BankStatement is the externally supplied input for the bank reconciliation
// statement. It is optional; without one no reconciliation is produced.
type BankStatement struct {
	StatementDate       time.Time           `json:"statement_date"`
	StatementBalance    decimal.Decimal     `json:"statement_balance" semantic:"money"`
	OutstandingDeposits []BankStatementItem `json:"outstanding_deposits"`
	OutstandingChecks   []BankStatementItem `json:"outstanding_checks"`
}
