package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethodCash is the payment method routed through the cash-in-hand
// ledger in the Cash Position statement. Every other method is treated as a
// bank movement.
const PaymentMethodCash = "Cash"

// DefaultExpenseCategories is the stock expense vocabulary for a small
// services business. The first entry doubles as the default cost-of-services
// category.
var DefaultExpenseCategories = []string{
	"Equipment Purchase",
	"Equipment Maintenance",
	"Transport/Fuel",
	"Salaries/Wages",
	"Rent",
	"Utilities",
	"Insurance",
	"Marketing",
	"Office Supplies",
	"Professional Fees",
	"Bank Charges",
	"Other",
}

// DefaultPaymentMethods is the stock payment-method vocabulary.
var DefaultPaymentMethods = []string{
	PaymentMethodCash,
	"Bank Transfer",
	"Cheque",
	"Mobile Money",
	"Card",
}

// Settings is the per-run engine configuration. It is created once and never
// mutated afterwards; Compute treats it as a value.
type Settings struct {
	// VATRate is a percentage (15 means 15%), never negative.
	VATRate decimal.Decimal `json:"vat_rate" semantic:"percent"`

	// FiscalYearStart anchors every "year to date" window and the tax year.
	FiscalYearStart time.Time `json:"fiscal_year_start"`

	OpeningCash decimal.Decimal `json:"opening_cash" semantic:"money"`
	OpeningBank decimal.Decimal `json:"opening_bank" semantic:"money"`

	// ExpenseCategories is the closed expense vocabulary, in report order.
	// An expense recorded outside it is a ReferenceError, not a crash.
	ExpenseCategories []string `json:"expense_categories"`

	// PaymentMethods is the closed payment-method vocabulary.
	PaymentMethods []string `json:"payment_methods"`

	// CostOfServicesCategory is the expense category reported as cost of
	// services in the P&L. Must be a member of ExpenseCategories.
	CostOfServicesCategory string `json:"cost_of_services_category"`

	// Epsilon is the tolerance for the balance-sheet and reconciliation
	// invariant checks. Zero is allowed and means exact equality.
	Epsilon decimal.Decimal `json:"epsilon" semantic:"money"`
}

// DefaultSettings returns the stock configuration: 15% VAT, the default
// vocabularies, and a fiscal year starting on the given date.
func DefaultSettings(fiscalYearStart time.Time) Settings {
	return Settings{
		VATRate:                decimal.NewFromInt(15),
		FiscalYearStart:        fiscalYearStart,
		OpeningCash:            decimal.NewFromInt(5000),
		OpeningBank:            decimal.NewFromInt(50000),
		ExpenseCategories:      append([]string(nil), DefaultExpenseCategories...),
		PaymentMethods:         append([]string(nil), DefaultPaymentMethods...),
		CostOfServicesCategory: "Equipment Purchase",
		Epsilon:                decimal.New(1, -2), // 0.01
	}
}

// Validate checks the settings invariants. A Settings value that fails
// Validate must not be passed to Compute.
func (s Settings) Validate() error {
	if s.VATRate.IsNegative() {
		return fmt.Errorf("vat rate must be >= 0, got %s", s.VATRate)
	}
	if s.FiscalYearStart.IsZero() {
		return errors.New("fiscal year start must be set")
	}
	if s.OpeningCash.IsNegative() {
		return fmt.Errorf("opening cash must be >= 0, got %s", s.OpeningCash)
	}
	if s.OpeningBank.IsNegative() {
		return fmt.Errorf("opening bank must be >= 0, got %s", s.OpeningBank)
	}
	if len(s.ExpenseCategories) == 0 {
		return errors.New("at least one expense category is required")
	}
	if err := uniqueNonEmpty("expense category", s.ExpenseCategories); err != nil {
		return err
	}
	if err := uniqueNonEmpty("payment method", s.PaymentMethods); err != nil {
		return err
	}
	if s.CostOfServicesCategory != "" && !contains(s.ExpenseCategories, s.CostOfServicesCategory) {
		return fmt.Errorf("cost-of-services category %q is not in the expense vocabulary", s.CostOfServicesCategory)
	}
	if s.Epsilon.IsNegative() {
		return fmt.Errorf("epsilon must be >= 0, got %s", s.Epsilon)
	}
	return nil
}

// HasExpenseCategory reports whether cat is a member of the expense vocabulary.
func (s Settings) HasExpenseCategory(cat string) bool {
	return contains(s.ExpenseCategories, cat)
}

// HasPaymentMethod reports whether m is a member of the payment-method vocabulary.
func (s Settings) HasPaymentMethod(m string) bool {
	return contains(s.PaymentMethods, m)
}

// fiscalYearEnd is the exclusive upper bound of the tax year.
func (s Settings) fiscalYearEnd() time.Time {
	return s.FiscalYearStart.AddDate(1, 0, 0)
}

func uniqueNonEmpty(what string, values []string) error {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			return fmt.Errorf("empty %s in vocabulary", what)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("duplicate %s %q", what, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
