package core

import "github.com/shopspring/decimal"

// PLColumn is one reporting period of the Profit & Loss statement.
type PLColumn struct {
	Revenue           decimal.Decimal `json:"revenue" semantic:"money"`
	CostOfServices    decimal.Decimal `json:"cost_of_services" semantic:"money"`
	GrossProfit       decimal.Decimal `json:"gross_profit" semantic:"money"`
	OperatingExpenses decimal.Decimal `json:"operating_expenses" semantic:"money"`
	NetIncome         decimal.Decimal `json:"net_income" semantic:"money"`
	NetMargin         decimal.Decimal `json:"net_margin" semantic:"percent"`
}

// ProfitAndLoss is the two-column P&L: the calendar month of the as-of date
// and year to date. Cost of services is the configured cost-of-services
// category; every other category (plus the unclassified residual) is an
// operating expense.
type ProfitAndLoss struct {
	ThisMonth  PLColumn `json:"this_month"`
	YearToDate PLColumn `json:"year_to_date"`

	// OperatingByCategory lists the operating-expense categories in
	// vocabulary order, for statement rendering.
	OperatingByCategory []CategoryTotal `json:"operating_by_category"`
}

func buildProfitAndLoss(s Settings, revenue RevenueView, rollup ExpenseRollup) ProfitAndLoss {
	var pl ProfitAndLoss

	costMonth := rollup.CategoryThisMonth(s.CostOfServicesCategory)
	costYTD := rollup.CategoryYTD(s.CostOfServicesCategory)

	opMonth := decimal.Zero
	opYTD := decimal.Zero
	for _, c := range rollup.Categories {
		if c.Category == s.CostOfServicesCategory {
			continue
		}
		opMonth = opMonth.Add(c.ThisMonth)
		opYTD = opYTD.Add(c.YearToDate)
		pl.OperatingByCategory = append(pl.OperatingByCategory, c)
	}
	if !rollup.Unclassified.ThisMonth.IsZero() || !rollup.Unclassified.YearToDate.IsZero() {
		opMonth = opMonth.Add(rollup.Unclassified.ThisMonth)
		opYTD = opYTD.Add(rollup.Unclassified.YearToDate)
		pl.OperatingByCategory = append(pl.OperatingByCategory, rollup.Unclassified)
	}

	pl.ThisMonth = plColumn(revenue.ThisMonth, costMonth, opMonth)
	pl.YearToDate = plColumn(revenue.ThisYear, costYTD, opYTD)
	return pl
}

func plColumn(revenue, cost, operating decimal.Decimal) PLColumn {
	gross := revenue.Sub(cost)
	net := gross.Sub(operating)
	return PLColumn{
		Revenue:           revenue,
		CostOfServices:    cost,
		GrossProfit:       gross,
		OperatingExpenses: operating,
		NetIncome:         net,
		NetMargin:         guardedDiv(net, revenue),
	}
}
