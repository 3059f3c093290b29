package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnclassifiedCategory collects expenses whose recorded category is not in
// the configured vocabulary, so misfiled amounts are reported instead of
// silently dropped.
const UnclassifiedCategory = "Unclassified"

// CategoryTotal is one expense category summed over the two standard
// reporting windows.
type CategoryTotal struct {
	Category   string          `json:"category"`
	ThisMonth  decimal.Decimal `json:"this_month" semantic:"money"`
	YearToDate decimal.Decimal `json:"year_to_date" semantic:"money"`
}

// ExpenseRollup sums expenses per configured category. "This month" is the
// calendar month of the as-of date; "year to date" is everything on or after
// the fiscal-year start. Categories appear in vocabulary order, followed by
// the unclassified residual when it is nonzero.
type ExpenseRollup struct {
	Categories []CategoryTotal `json:"categories"`

	Unclassified CategoryTotal `json:"unclassified"`

	ThisMonthTotal  decimal.Decimal `json:"this_month_total" semantic:"money"`
	YearToDateTotal decimal.Decimal `json:"year_to_date_total" semantic:"money"`
}

// CategoryYTD returns the year-to-date sum for one category (zero when the
// category is unknown).
func (r ExpenseRollup) CategoryYTD(category string) decimal.Decimal {
	for _, c := range r.Categories {
		if c.Category == category {
			return c.YearToDate
		}
	}
	return decimal.Zero
}

// CategoryThisMonth returns the this-month sum for one category.
func (r ExpenseRollup) CategoryThisMonth(category string) decimal.Decimal {
	for _, c := range r.Categories {
		if c.Category == category {
			return c.ThisMonth
		}
	}
	return decimal.Zero
}

func buildExpenseRollup(s Settings, expenses []Expense, asOf time.Time) ExpenseRollup {
	rollup := ExpenseRollup{
		Unclassified:    CategoryTotal{Category: UnclassifiedCategory, ThisMonth: decimal.Zero, YearToDate: decimal.Zero},
		ThisMonthTotal:  decimal.Zero,
		YearToDateTotal: decimal.Zero,
	}

	index := make(map[string]int, len(s.ExpenseCategories))
	for _, cat := range s.ExpenseCategories {
		index[cat] = len(rollup.Categories)
		rollup.Categories = append(rollup.Categories, CategoryTotal{
			Category: cat, ThisMonth: decimal.Zero, YearToDate: decimal.Zero,
		})
	}

	monthFrom, monthTo := monthWindow(asOf)

	for _, e := range expenses {
		inMonth := inWindow(e.Date, monthFrom, monthTo)
		inYTD := onOrAfter(e.Date, s.FiscalYearStart)

		target := &rollup.Unclassified
		if idx, ok := index[e.Category]; ok {
			target = &rollup.Categories[idx]
		}
		if inMonth {
			target.ThisMonth = target.ThisMonth.Add(e.Amount)
			rollup.ThisMonthTotal = rollup.ThisMonthTotal.Add(e.Amount)
		}
		if inYTD {
			target.YearToDate = target.YearToDate.Add(e.Amount)
			rollup.YearToDateTotal = rollup.YearToDateTotal.Add(e.Amount)
		}
	}

	return rollup
}

// InventoryRow is one stock record with its derived quantity and value.
type InventoryRow struct {
	StockID           string          `json:"stock_id"`
	Description       string          `json:"description"`
	UnitPrice         decimal.Decimal `json:"unit_price" semantic:"money"`
	QuantityInStore   int64           `json:"quantity_in_store"`
	QuantityRented    int64           `json:"quantity_rented"`
	QuantityInTransit int64           `json:"quantity_in_transit"`
	TotalQuantity     int64           `json:"total_quantity"`
	TotalValue        decimal.Decimal `json:"total_value" semantic:"money"`
}

// InventoryRollup is the stock valuation the balance sheet and dashboard
// depend on, plus per-location quantity totals.
type InventoryRollup struct {
	Items []InventoryRow `json:"items"`

	TotalValue     decimal.Decimal `json:"total_value" semantic:"money"`
	UnitsInStore   int64           `json:"units_in_store"`
	UnitsRented    int64           `json:"units_rented"`
	UnitsInTransit int64           `json:"units_in_transit"`
}

func buildInventoryRollup(items []InventoryItem) InventoryRollup {
	rollup := InventoryRollup{TotalValue: decimal.Zero}

	for _, it := range items {
		value := it.TotalValue()
		rollup.Items = append(rollup.Items, InventoryRow{
			StockID:           it.StockID,
			Description:       it.Description,
			UnitPrice:         it.UnitPrice,
			QuantityInStore:   it.QuantityInStore,
			QuantityRented:    it.QuantityRented,
			QuantityInTransit: it.QuantityInTransit,
			TotalQuantity:     it.TotalQuantity(),
			TotalValue:        value,
		})
		rollup.TotalValue = rollup.TotalValue.Add(value)
		rollup.UnitsInStore += it.QuantityInStore
		rollup.UnitsRented += it.QuantityRented
		rollup.UnitsInTransit += it.QuantityInTransit
	}

	return rollup
}
