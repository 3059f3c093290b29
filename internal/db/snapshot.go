package db

import (
	"context"
	"fmt"
	"time"

	"bookkeeper/internal/core"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Store loads ledger snapshots out of Postgres. The database is the
// data-entry side of the system; the engine only ever reads from it, builds
// an in-memory ledger, and computes. Reference tables load before the
// transactional ones so ingestion can resolve joins.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// LoadSettings reads the single settings row plus the two vocabulary tables.
func (s *Store) LoadSettings(ctx context.Context) (core.Settings, error) {
	var settings core.Settings
	err := s.pool.QueryRow(ctx, `
		SELECT vat_rate, fiscal_year_start, opening_cash, opening_bank,
		       cost_of_services_category, epsilon
		FROM settings WHERE id = 1`,
	).Scan(&settings.VATRate, &settings.FiscalYearStart, &settings.OpeningCash,
		&settings.OpeningBank, &settings.CostOfServicesCategory, &settings.Epsilon)
	if err != nil {
		return core.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	settings.ExpenseCategories, err = s.loadVocabulary(ctx, "expense_categories")
	if err != nil {
		return core.Settings{}, err
	}
	settings.PaymentMethods, err = s.loadVocabulary(ctx, "payment_methods")
	if err != nil {
		return core.Settings{}, err
	}

	if err := settings.Validate(); err != nil {
		return core.Settings{}, fmt.Errorf("stored settings are invalid: %w", err)
	}
	return settings, nil
}

func (s *Store) loadVocabulary(ctx context.Context, table string) ([]string, error) {
	// Table name comes from the two call sites above, never from input.
	rows, err := s.pool.Query(ctx, fmt.Sprintf("SELECT name FROM %s ORDER BY position", table))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// LoadLedger builds an in-memory ledger from the current database contents.
// Soft reference problems surface as anomalies on the returned ledger, the
// same way direct ingestion reports them.
func (s *Store) LoadLedger(ctx context.Context, settings core.Settings) (*core.Ledger, error) {
	ledger := core.NewLedger(settings)

	if err := s.loadCustomers(ctx, ledger); err != nil {
		return nil, err
	}
	if err := s.loadVendors(ctx, ledger); err != nil {
		return nil, err
	}
	if err := s.loadInventory(ctx, ledger); err != nil {
		return nil, err
	}
	if err := s.loadInvoices(ctx, ledger); err != nil {
		return nil, err
	}
	if err := s.loadExpenses(ctx, ledger); err != nil {
		return nil, err
	}
	if err := s.loadVendorPayments(ctx, ledger); err != nil {
		return nil, err
	}
	if err := s.loadBankStatement(ctx, ledger); err != nil {
		return nil, err
	}

	return ledger, nil
}

func (s *Store) loadCustomers(ctx context.Context, ledger *core.Ledger) error {
	rows, err := s.pool.Query(ctx, `
		SELECT customer_id, name, COALESCE(contact_person, ''), COALESCE(email, ''),
		       COALESCE(phone, ''), payment_terms_days, credit_limit
		FROM customers ORDER BY customer_id`)
	if err != nil {
		return fmt.Errorf("load customers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c core.Customer
		if err := rows.Scan(&c.CustomerID, &c.Name, &c.ContactPerson, &c.Email,
			&c.Phone, &c.PaymentTermsDays, &c.CreditLimit); err != nil {
			return fmt.Errorf("scan customer: %w", err)
		}
		if err := ledger.AddCustomer(c); err != nil {
			return fmt.Errorf("ingest customer %s: %w", c.CustomerID, err)
		}
	}
	return rows.Err()
}

func (s *Store) loadVendors(ctx context.Context, ledger *core.Ledger) error {
	rows, err := s.pool.Query(ctx, `
		SELECT vendor_id, name, COALESCE(contact_person, ''), COALESCE(email, ''),
		       COALESCE(payment_terms, '')
		FROM vendors ORDER BY vendor_id`)
	if err != nil {
		return fmt.Errorf("load vendors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v core.Vendor
		if err := rows.Scan(&v.VendorID, &v.Name, &v.ContactPerson, &v.Email, &v.PaymentTerms); err != nil {
			return fmt.Errorf("scan vendor: %w", err)
		}
		if err := ledger.AddVendor(v); err != nil {
			return fmt.Errorf("ingest vendor %s: %w", v.VendorID, err)
		}
	}
	return rows.Err()
}

func (s *Store) loadInventory(ctx context.Context, ledger *core.Ledger) error {
	rows, err := s.pool.Query(ctx, `
		SELECT stock_id, COALESCE(description, ''), unit_price,
		       quantity_in_store, quantity_rented, quantity_in_transit
		FROM inventory_items ORDER BY stock_id`)
	if err != nil {
		return fmt.Errorf("load inventory: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it core.InventoryItem
		if err := rows.Scan(&it.StockID, &it.Description, &it.UnitPrice,
			&it.QuantityInStore, &it.QuantityRented, &it.QuantityInTransit); err != nil {
			return fmt.Errorf("scan inventory item: %w", err)
		}
		if err := ledger.AddInventoryItem(it); err != nil {
			return fmt.Errorf("ingest inventory item %s: %w", it.StockID, err)
		}
	}
	return rows.Err()
}

func (s *Store) loadInvoices(ctx context.Context, ledger *core.Ledger) error {
	itemsByInvoice := make(map[string][]core.LineItem)
	itemRows, err := s.pool.Query(ctx, `
		SELECT invoice_id, COALESCE(description, ''), quantity, unit_price
		FROM invoice_items ORDER BY invoice_id, position`)
	if err != nil {
		return fmt.Errorf("load invoice items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var invoiceID string
		var item core.LineItem
		if err := itemRows.Scan(&invoiceID, &item.Description, &item.Quantity, &item.UnitPrice); err != nil {
			return fmt.Errorf("scan invoice item: %w", err)
		}
		itemsByInvoice[invoiceID] = append(itemsByInvoice[invoiceID], item)
	}
	if err := itemRows.Err(); err != nil {
		return err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT invoice_id, issue_date, event_date, COALESCE(customer_id, ''), amount_received
		FROM invoices ORDER BY invoice_id`)
	if err != nil {
		return fmt.Errorf("load invoices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var inv core.Invoice
		if err := rows.Scan(&inv.InvoiceID, &inv.IssueDate, &inv.EventDate,
			&inv.CustomerID, &inv.AmountReceived); err != nil {
			return fmt.Errorf("scan invoice: %w", err)
		}
		inv.Items = itemsByInvoice[inv.InvoiceID]
		if err := ledger.AddInvoice(inv); err != nil {
			return fmt.Errorf("ingest invoice %s: %w", inv.InvoiceID, err)
		}
	}
	return rows.Err()
}

func (s *Store) loadExpenses(ctx context.Context, ledger *core.Ledger) error {
	rows, err := s.pool.Query(ctx, `
		SELECT expense_date, category, COALESCE(vendor_id, ''), COALESCE(description, ''),
		       amount, payment_method, COALESCE(reference, ''), vat_amount
		FROM expenses ORDER BY id`)
	if err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e core.Expense
		var vat *decimal.Decimal
		if err := rows.Scan(&e.Date, &e.Category, &e.VendorID, &e.Description,
			&e.Amount, &e.PaymentMethod, &e.Reference, &vat); err != nil {
			return fmt.Errorf("scan expense: %w", err)
		}
		e.VATAmount = vat
		if err := ledger.AddExpense(e); err != nil {
			return fmt.Errorf("ingest expense %s: %w", e.Reference, err)
		}
	}
	return rows.Err()
}

func (s *Store) loadVendorPayments(ctx context.Context, ledger *core.Ledger) error {
	rows, err := s.pool.Query(ctx, `
		SELECT payment_date, COALESCE(vendor_id, ''), amount,
		       COALESCE(method, ''), COALESCE(reference, '')
		FROM vendor_payments ORDER BY id`)
	if err != nil {
		return fmt.Errorf("load vendor payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p core.VendorPayment
		if err := rows.Scan(&p.Date, &p.VendorID, &p.Amount, &p.Method, &p.Reference); err != nil {
			return fmt.Errorf("scan vendor payment: %w", err)
		}
		if err := ledger.AddVendorPayment(p); err != nil {
			return fmt.Errorf("ingest vendor payment %s: %w", p.Reference, err)
		}
	}
	return rows.Err()
}

// loadBankStatement attaches the most recent statement, when one exists.
func (s *Store) loadBankStatement(ctx context.Context, ledger *core.Ledger) error {
	var id int64
	var stmt core.BankStatement
	err := s.pool.QueryRow(ctx, `
		SELECT id, statement_date, statement_balance
		FROM bank_statements ORDER BY statement_date DESC, id DESC LIMIT 1`,
	).Scan(&id, &stmt.StatementDate, &stmt.StatementBalance)
	if err == pgx.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load bank statement: %w", err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT kind, item_date, COALESCE(description, ''), amount
		FROM bank_statement_items WHERE statement_id = $1 ORDER BY id`, id)
	if err != nil {
		return fmt.Errorf("load bank statement items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var date time.Time
		var item core.BankStatementItem
		if err := rows.Scan(&kind, &date, &item.Description, &item.Amount); err != nil {
			return fmt.Errorf("scan bank statement item: %w", err)
		}
		item.Date = date
		switch kind {
		case "deposit":
			stmt.OutstandingDeposits = append(stmt.OutstandingDeposits, item)
		case "check":
			stmt.OutstandingChecks = append(stmt.OutstandingChecks, item)
		default:
			return fmt.Errorf("bank statement item: unknown kind %q", kind)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	ledger.SetBankStatement(&stmt)
	return nil
}
