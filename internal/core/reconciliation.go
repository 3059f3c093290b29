package core

import "github.com/shopspring/decimal"

// BankReconciliation compares the externally supplied bank statement,
// adjusted for uncleared items, against the book balance from the Cash
// Position. Difference is surfaced, never hidden; nonzero means unrecorded
// transactions or a data-entry error, not a program fault.
type BankReconciliation struct {
	StatementBalance    decimal.Decimal `json:"statement_balance" semantic:"money"`
	OutstandingDeposits decimal.Decimal `json:"outstanding_deposits" semantic:"money"`
	OutstandingChecks   decimal.Decimal `json:"outstanding_checks" semantic:"money"`
	AdjustedBankBalance decimal.Decimal `json:"adjusted_bank_balance" semantic:"money"`

	BookBalance decimal.Decimal `json:"book_balance" semantic:"money"`
	Difference  decimal.Decimal `json:"difference" semantic:"money"`
}

func buildBankReconciliation(s Settings, stmt BankStatement, cash CashPosition) (BankReconciliation, []Anomaly) {
	rec := BankReconciliation{
		StatementBalance:    stmt.StatementBalance,
		OutstandingDeposits: decimal.Zero,
		OutstandingChecks:   decimal.Zero,
		BookBalance:         cash.ClosingBank,
	}
	for _, d := range stmt.OutstandingDeposits {
		rec.OutstandingDeposits = rec.OutstandingDeposits.Add(d.Amount)
	}
	for _, c := range stmt.OutstandingChecks {
		rec.OutstandingChecks = rec.OutstandingChecks.Add(c.Amount)
	}

	rec.AdjustedBankBalance = rec.StatementBalance.Add(rec.OutstandingDeposits).Sub(rec.OutstandingChecks)
	rec.Difference = rec.AdjustedBankBalance.Sub(rec.BookBalance)

	var anomalies []Anomaly
	if rec.Difference.Abs().GreaterThan(s.Epsilon) {
		anomalies = append(anomalies, invariantAnomaly(SeverityWarning,
			"bank reconciliation",
			"adjusted bank balance %s does not match book balance %s (difference %s)",
			rec.AdjustedBankBalance, rec.BookBalance, rec.Difference))
	}

	return rec, anomalies
}
