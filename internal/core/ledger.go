package core

import (
	"fmt"
)

// Ledger is the in-memory source-of-truth store: base transactional records
// plus reference tables. Records enter through the Add methods, which perform
// the ingestion-time reference validation; once ingested they are read-only
// to the engine. Compute never mutates a Ledger.
//
// The Add methods return an error only for hard identity violations
// (duplicate or missing IDs). Soft problems, such as an unknown category,
// payment method, customer, or vendor, are recorded as warning anomalies and
// the record is kept, so statements still compute from whatever did match.
type Ledger struct {
	settings Settings

	invoices  []Invoice
	expenses  []Expense
	customers []Customer
	vendors   []Vendor
	inventory []InventoryItem
	payments  []VendorPayment

	bankStatement *BankStatement

	customerByID map[string]int // index into customers
	vendorByID   map[string]int // index into vendors

	anomalies []Anomaly
}

// NewLedger creates an empty ledger validated against the given settings
// vocabularies.
func NewLedger(settings Settings) *Ledger {
	return &Ledger{
		settings:     settings,
		customerByID: make(map[string]int),
		vendorByID:   make(map[string]int),
	}
}

// ── Ingestion ─────────────────────────────────────────────────────────────────

// AddCustomer ingests a reference-table customer. IDs and names must be
// unique: invoices join by ID, downstream displays join by name.
func (l *Ledger) AddCustomer(c Customer) error {
	if c.CustomerID == "" {
		return fmt.Errorf("customer must have an id")
	}
	if _, dup := l.customerByID[c.CustomerID]; dup {
		return fmt.Errorf("duplicate customer id %q", c.CustomerID)
	}
	for _, existing := range l.customers {
		if existing.Name == c.Name {
			return fmt.Errorf("duplicate customer name %q", c.Name)
		}
	}
	l.customerByID[c.CustomerID] = len(l.customers)
	l.customers = append(l.customers, c)
	return nil
}

// AddVendor ingests a reference-table vendor.
func (l *Ledger) AddVendor(v Vendor) error {
	if v.VendorID == "" {
		return fmt.Errorf("vendor must have an id")
	}
	if _, dup := l.vendorByID[v.VendorID]; dup {
		return fmt.Errorf("duplicate vendor id %q", v.VendorID)
	}
	l.vendorByID[v.VendorID] = len(l.vendors)
	l.vendors = append(l.vendors, v)
	return nil
}

// AddInventoryItem ingests a stock record.
func (l *Ledger) AddInventoryItem(it InventoryItem) error {
	if it.StockID == "" {
		return fmt.Errorf("inventory item must have a stock id")
	}
	for _, existing := range l.inventory {
		if existing.StockID == it.StockID {
			return fmt.Errorf("duplicate stock id %q", it.StockID)
		}
	}
	if it.UnitPrice.IsNegative() {
		return fmt.Errorf("inventory item %s: unit price must be >= 0", it.StockID)
	}
	if it.QuantityInStore < 0 || it.QuantityRented < 0 || it.QuantityInTransit < 0 {
		return fmt.Errorf("inventory item %s: quantities must be >= 0", it.StockID)
	}
	l.inventory = append(l.inventory, it)
	return nil
}

// AddInvoice ingests an invoice. The customer reference is validated here:
// an unknown CustomerID yields a warning anomaly, and the stored ClientName
// is resolved from the customer table when the reference does match.
func (l *Ledger) AddInvoice(inv Invoice) error {
	if inv.InvoiceID == "" {
		return fmt.Errorf("invoice must have an id")
	}
	for _, existing := range l.invoices {
		if existing.InvoiceID == inv.InvoiceID {
			return fmt.Errorf("duplicate invoice id %q", inv.InvoiceID)
		}
	}
	for _, item := range inv.Items {
		if item.Quantity.IsNegative() {
			return fmt.Errorf("invoice %s: line quantity must be >= 0", inv.InvoiceID)
		}
		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("invoice %s: line unit price must be >= 0", inv.InvoiceID)
		}
	}
	if inv.AmountReceived.IsNegative() {
		return fmt.Errorf("invoice %s: amount received must be >= 0", inv.InvoiceID)
	}

	if idx, ok := l.customerByID[inv.CustomerID]; ok {
		// Name resolution is display-only: the ID is the join key.
		inv.ClientName = l.customers[idx].Name
	} else {
		l.anomalies = append(l.anomalies, referenceWarning(
			"invoice "+inv.InvoiceID,
			"customer %q not found; invoice excluded from per-customer totals", inv.CustomerID))
	}

	l.invoices = append(l.invoices, inv)
	return nil
}

// AddExpense ingests an expense, validating its category, payment method,
// and vendor reference against the vocabularies and the vendor table.
func (l *Ledger) AddExpense(e Expense) error {
	if e.Amount.IsNegative() {
		return fmt.Errorf("expense %q: amount must be >= 0", e.Reference)
	}
	subject := "expense " + e.Reference
	if e.Reference == "" {
		subject = fmt.Sprintf("expense on %s", e.Date.Format("2006-01-02"))
	}

	if !l.settings.HasExpenseCategory(e.Category) {
		l.anomalies = append(l.anomalies, referenceWarning(
			subject, "category %q is not in the expense vocabulary; amount reported as unclassified", e.Category))
	}
	if !l.settings.HasPaymentMethod(e.PaymentMethod) {
		l.anomalies = append(l.anomalies, referenceWarning(
			subject, "payment method %q is not in the vocabulary; treated as a bank movement", e.PaymentMethod))
	}

	if idx, ok := l.vendorByID[e.VendorID]; ok {
		e.VendorName = l.vendors[idx].Name
	} else if e.VendorID != "" {
		// Vendor linkage is soft: purchases without a resolvable vendor still
		// count as expenses, they just attribute to no vendor account.
		l.anomalies = append(l.anomalies, referenceWarning(
			subject, "vendor %q not found; expense excluded from per-vendor totals", e.VendorID))
	}

	l.expenses = append(l.expenses, e)
	return nil
}

// AddVendorPayment ingests a payables-ledger payment record.
func (l *Ledger) AddVendorPayment(p VendorPayment) error {
	if p.Amount.IsNegative() {
		return fmt.Errorf("vendor payment %q: amount must be >= 0", p.Reference)
	}
	if _, ok := l.vendorByID[p.VendorID]; !ok {
		l.anomalies = append(l.anomalies, referenceWarning(
			"vendor payment "+p.Reference,
			"vendor %q not found; payment excluded from payables", p.VendorID))
	}
	l.payments = append(l.payments, p)
	return nil
}

// SetBankStatement attaches the externally supplied bank statement used by
// the reconciliation. Passing nil removes it.
func (l *Ledger) SetBankStatement(bs *BankStatement) {
	l.bankStatement = bs
}

// ── Read accessors ────────────────────────────────────────────────────────────
//
// Accessors return the backing slices in insertion order. Callers treat them
// as read-only snapshots; the engine itself never writes through them.

func (l *Ledger) Invoices() []Invoice             { return l.invoices }
func (l *Ledger) Expenses() []Expense             { return l.expenses }
func (l *Ledger) Customers() []Customer           { return l.customers }
func (l *Ledger) Vendors() []Vendor               { return l.vendors }
func (l *Ledger) Inventory() []InventoryItem      { return l.inventory }
func (l *Ledger) VendorPayments() []VendorPayment { return l.payments }
func (l *Ledger) BankStatement() *BankStatement   { return l.bankStatement }

// Anomalies returns the reference problems recorded during ingestion.
func (l *Ledger) Anomalies() []Anomaly { return l.anomalies }

// CustomerByID returns the customer with the given id, if present.
func (l *Ledger) CustomerByID(id string) (Customer, bool) {
	idx, ok := l.customerByID[id]
	if !ok {
		return Customer{}, false
	}
	return l.customers[idx], true
}

// VendorByID returns the vendor with the given id, if present.
func (l *Ledger) VendorByID(id string) (Vendor, bool) {
	idx, ok := l.vendorByID[id]
	if !ok {
		return Vendor{}, false
	}
	return l.vendors[idx], true
}
