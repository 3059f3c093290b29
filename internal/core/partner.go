package core

import "github.com/shopspring/decimal"

// CustomerStatus flags a customer account for collection attention.
type CustomerStatus string

const (
	CustomerPaid          CustomerStatus = "Paid"
	CustomerCreditWarning CustomerStatus = "Credit Warning"
	CustomerActive        CustomerStatus = "Active"
)

// CustomerAccount is a customer joined with its invoice totals.
type CustomerAccount struct {
	CustomerID       string          `json:"customer_id"`
	Name             string          `json:"name"`
	PaymentTermsDays int             `json:"payment_terms_days"`
	CreditLimit      decimal.Decimal `json:"credit_limit" semantic:"money"`
	TotalInvoiced    decimal.Decimal `json:"total_invoiced" semantic:"money"`
	TotalPaid        decimal.Decimal `json:"total_paid" semantic:"money"`
	Balance          decimal.Decimal `json:"balance" semantic:"money"`
	Status           CustomerStatus  `json:"status"`
}

// VendorStatus flags whether a vendor account carries an open balance.
type VendorStatus string

const (
	VendorCurrent VendorStatus = "Current"
	VendorPayable VendorStatus = "Payable"
)

// VendorAccount is a vendor joined with its purchase and payment totals.
// With no payment records a vendor defaults to fully paid; once any payment
// exists the balance owed is purchases minus recorded payments.
type VendorAccount struct {
	VendorID       string          `json:"vendor_id"`
	Name           string          `json:"name"`
	PaymentTerms   string          `json:"payment_terms"`
	TotalPurchased decimal.Decimal `json:"total_purchased" semantic:"money"`
	TotalPaid      decimal.Decimal `json:"total_paid" semantic:"money"`
	BalanceOwed    decimal.Decimal `json:"balance_owed" semantic:"money"`
	Status         VendorStatus    `json:"status"`
}

// creditWarningFraction: a balance above 80% of the credit limit flags the
// account.
var creditWarningFraction = decimal.New(8, -1)

func buildCustomerAccounts(s Settings, customers []Customer, invoices []Invoice) []CustomerAccount {
	accounts := make([]CustomerAccount, 0, len(customers))

	for _, c := range customers {
		acct := CustomerAccount{
			CustomerID:       c.CustomerID,
			Name:             c.Name,
			PaymentTermsDays: c.PaymentTermsDays,
			CreditLimit:      c.CreditLimit,
			TotalInvoiced:    decimal.Zero,
			TotalPaid:        decimal.Zero,
		}

		for _, inv := range invoices {
			if inv.CustomerID != c.CustomerID {
				continue
			}
			acct.TotalInvoiced = acct.TotalInvoiced.Add(inv.TotalAt(s.VATRate))
			acct.TotalPaid = acct.TotalPaid.Add(inv.AmountReceived)
		}

		acct.Balance = acct.TotalInvoiced.Sub(acct.TotalPaid)
		switch {
		case acct.Balance.IsZero():
			acct.Status = CustomerPaid
		case acct.Balance.GreaterThan(acct.CreditLimit.Mul(creditWarningFraction)):
			acct.Status = CustomerCreditWarning
		default:
			acct.Status = CustomerActive
		}

		accounts = append(accounts, acct)
	}

	return accounts
}

func buildVendorAccounts(vendors []Vendor, expenses []Expense, payments []VendorPayment) []VendorAccount {
	accounts := make([]VendorAccount, 0, len(vendors))

	for _, v := range vendors {
		acct := VendorAccount{
			VendorID:       v.VendorID,
			Name:           v.Name,
			PaymentTerms:   v.PaymentTerms,
			TotalPurchased: decimal.Zero,
		}

		for _, e := range expenses {
			if e.VendorID == v.VendorID {
				acct.TotalPurchased = acct.TotalPurchased.Add(e.Amount)
			}
		}

		paid := decimal.Zero
		hasPayments := false
		for _, p := range payments {
			if p.VendorID == v.VendorID {
				hasPayments = true
				paid = paid.Add(p.Amount)
			}
		}
		if hasPayments {
			acct.TotalPaid = paid
		} else {
			// No payables ledger for this vendor: purchases count as settled.
			acct.TotalPaid = acct.TotalPurchased
		}

		acct.BalanceOwed = acct.TotalPurchased.Sub(acct.TotalPaid)
		if acct.BalanceOwed.IsZero() {
			acct.Status = VendorCurrent
		} else {
			acct.Status = VendorPayable
		}

		accounts = append(accounts, acct)
	}

	return accounts
}
