package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Calendar-window helpers. Every window is half-open: [from, to). All of
// them derive from the single injected as-of instant so that one Compute
// call sees one consistent "now".

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return dateOf(a).Equal(dateOf(b))
}

// monthWindow is the calendar month containing asOf.
func monthWindow(asOf time.Time) (from, to time.Time) {
	y, m, _ := asOf.Date()
	from = time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// yearWindow is the calendar year containing asOf.
func yearWindow(asOf time.Time) (from, to time.Time) {
	from = time.Date(asOf.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0)
}

// calendarMonth is month m (1-12) of the year containing asOf.
func calendarMonth(asOf time.Time, m int) (from, to time.Time) {
	from = time.Date(asOf.Year(), time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func inWindow(d, from, to time.Time) bool {
	d = dateOf(d)
	return !d.Before(from) && d.Before(to)
}

// onOrAfter implements the year-to-date filters, which have a lower bound
// only: everything on or after the fiscal-year start counts.
func onOrAfter(d, from time.Time) bool {
	return !dateOf(d).Before(from)
}

// daysBetween is the whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(dateOf(b).Sub(dateOf(a)).Hours() / 24)
}

/// guardedDiv is the division policy: any ratio with a zero denominator
// evaluates to zero instead of failing.
func guardedDiv(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}
