package core

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// AgingBucket classifies an outstanding balance by days since issuance.
type AgingBucket string

const (
	BucketCurrent AgingBucket = "Current"  // 30 days or less
	BucketDueSoon AgingBucket = "Due Soon" // 31 to 60 days
	BucketOverdue AgingBucket = "Overdue"  // over 60 days
)

// Rank orders the buckets by severity: Current < Due Soon < Overdue.
func (b AgingBucket) Rank() int {
	switch b {
	case BucketDueSoon:
		return 1
	case BucketOverdue:
		return 2
	default:
		return 0
	}
}

// dueDays is the fixed payment policy: every invoice is due 30 days after
// issuance regardless of the customer's stated terms.
const dueDays = 30

// DebtorRow is one unpaid invoice in the receivables aging.
type DebtorRow struct {
	InvoiceID       string          `json:"invoice_id"`
	IssueDate       time.Time       `json:"issue_date"`
	ClientName      string          `json:"client_name"`
	AmountOwed      decimal.Decimal `json:"amount_owed" semantic:"money"`
	DueDate         time.Time       `json:"due_date"`
	DaysOutstanding int             `json:"days_outstanding" semantic:"days"`
	Status          AgingBucket     `json:"status"`
}

// TradeDebtors is the accounts-receivable aging: unpaid invoices classified
// into buckets, with per-bucket sums and a grand total. Rows are ordered
// ascending by invoice id so repeated evaluations are byte-identical.
type TradeDebtors struct {
	Rows []DebtorRow `json:"rows"`

	CurrentTotal     decimal.Decimal `json:"current_total" semantic:"money"`
	DueSoonTotal     decimal.Decimal `json:"due_soon_total" semantic:"money"`
	OverdueTotal     decimal.Decimal `json:"overdue_total" semantic:"money"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding" semantic:"money"`
}

func classifyAge(days int) AgingBucket {
	switch {
	case days > 60:
		return BucketOverdue
	case days > dueDays:
		return BucketDueSoon
	default:
		return BucketCurrent
	}
}

func buildTradeDebtors(s Settings, invoices []Invoice, asOf time.Time) TradeDebtors {
	td := TradeDebtors{
		CurrentTotal:     decimal.Zero,
		DueSoonTotal:     decimal.Zero,
		OverdueTotal:     decimal.Zero,
		TotalOutstanding: decimal.Zero,
	}

	for _, inv := range invoices {
		balance := inv.BalanceAt(s.VATRate)
		if !balance.IsPositive() {
			continue
		}

		days := daysBetween(inv.IssueDate, asOf)
		bucket := classifyAge(days)

		td.Rows = append(td.Rows, DebtorRow{
			InvoiceID:       inv.InvoiceID,
			IssueDate:       inv.IssueDate,
			ClientName:      inv.ClientName,
			AmountOwed:      balance,
			DueDate:         dateOf(inv.IssueDate).AddDate(0, 0, dueDays),
			DaysOutstanding: days,
			Status:          bucket,
		})

		switch bucket {
		case BucketCurrent:
			td.CurrentTotal = td.CurrentTotal.Add(balance)
		case BucketDueSoon:
			td.DueSoonTotal = td.DueSoonTotal.Add(balance)
		case BucketOverdue:
			td.OverdueTotal = td.OverdueTotal.Add(balance)
		}
		td.TotalOutstanding = td.TotalOutstanding.Add(balance)
	}

	sort.Slice(td.Rows, func(i, j int) bool {
		return td.Rows[i].InvoiceID < td.Rows[j].InvoiceID
	})

	return td
}
