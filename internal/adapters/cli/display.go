package cli

import (
	"fmt"
	"strings"

	"bookkeeper/internal/app"
	"bookkeeper/internal/core"

	"github.com/shopspring/decimal"
)

func printStatements(result *app.StatementsResult) {
	b := result.Bundle
	printProfitAndLoss(b)
	printCashPosition(b.CashPosition)
	printTaxSummary(b.TaxSummary)
	printBalanceSheet(b.BalanceSheet)
	if b.BankReconciliation != nil {
		printReconciliation(*b.BankReconciliation)
	}
	printDashboard(b.Dashboard)
	printAnomalies(b.Anomalies)
}

func printProfitAndLoss(b *core.StatementBundle) {
	pl := b.ProfitAndLoss
	fmt.Println()
	fmt.Println(strings.Repeat("=", 66))
	fmt.Printf("  PROFIT & LOSS — as of %s\n", b.AsOf.Format("2006-01-02"))
	fmt.Println(strings.Repeat("=", 66))
	fmt.Printf("  %-28s %16s %16s\n", "", "THIS MONTH", "YEAR TO DATE")
	fmt.Println(strings.Repeat("-", 66))
	row := func(label string, m, y decimal.Decimal) {
		fmt.Printf("  %-28s %16s %16s\n", label, m.StringFixed(2), y.StringFixed(2))
	}
	row("Revenue", pl.ThisMonth.Revenue, pl.YearToDate.Revenue)
	row("Cost of Services", pl.ThisMonth.CostOfServices, pl.YearToDate.CostOfServices)
	row("Gross Profit", pl.ThisMonth.GrossProfit, pl.YearToDate.GrossProfit)
	row("Operating Expenses", pl.ThisMonth.OperatingExpenses, pl.YearToDate.OperatingExpenses)
	fmt.Println(strings.Repeat("-", 66))
	row("NET INCOME", pl.ThisMonth.NetIncome, pl.YearToDate.NetIncome)
	fmt.Println(strings.Repeat("=", 66))
}

func printCashPosition(cp core.CashPosition) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 66))
	fmt.Println("  CASH POSITION")
	fmt.Println(strings.Repeat("=", 66))
	fmt.Printf("  %-28s %16s %16s\n", "", "CASH IN HAND", "CASH AT BANK")
	fmt.Println(strings.Repeat("-", 66))
	fmt.Printf("  %-28s %16s %16s\n", "Opening Balance", cp.OpeningCash.StringFixed(2), cp.OpeningBank.StringFixed(2))
	fmt.Printf("  %-28s %16s %16s\n", "Received (YTD)", cp.CashReceivedYTD.StringFixed(2), cp.BankReceiptsYTD.StringFixed(2))
	fmt.Printf("  %-28s %16s %16s\n", "Paid (YTD)", cp.CashPaidYTD.StringFixed(2), cp.BankPaymentsYTD.StringFixed(2))
	fmt.Println(strings.Repeat("-", 66))
	fmt.Printf("  %-28s %16s %16s\n", "Closing Balance", cp.ClosingCash.StringFixed(2), cp.ClosingBank.StringFixed(2))
	fmt.Printf("  %-28s %33s\n", "TOTAL CASH", cp.TotalCash.StringFixed(2))
	fmt.Println(strings.Repeat("=", 66))
}

func printTaxSummary(ts core.TaxSummary) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 66))
	fmt.Println("  TAX SUMMARY (fiscal year)")
	fmt.Println(strings.Repeat("=", 66))
	fmt.Printf("  %-40s %21s\n", "Revenue Invoiced", ts.RevenueInvoiced.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "Revenue Received", ts.RevenueReceived.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "Outstanding Receivables", ts.OutstandingReceivables.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "VAT Collected on Sales", ts.VATCollected.StringFixed(2))
	label := "VAT on Purchases"
	if ts.VATImputed {
		label = "VAT on Purchases (estimated)"
	}
	fmt.Printf("  %-40s %21s\n", label, ts.VATOnPurchases.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "NET VAT PAYABLE", ts.NetVATPayable.StringFixed(2))
	fmt.Println(strings.Repeat("-", 66))
	fmt.Printf("  %-40s %21s\n", "Total Deductible Expenses", ts.TotalExpenses.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "NET PROFIT BEFORE TAX", ts.NetProfitBeforeTax.StringFixed(2))
	fmt.Println(strings.Repeat("=", 66))
}

func printBalanceSheet(bs core.BalanceSheet) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 66))
	fmt.Println("  BALANCE SHEET")
	fmt.Println(strings.Repeat("=", 66))
	fmt.Printf("  %-40s %21s\n", "Cash in Hand", bs.CashInHand.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "Cash at Bank", bs.CashAtBank.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "Accounts Receivable", bs.AccountsReceivable.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "Inventory", bs.Inventory.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "TOTAL ASSETS", bs.TotalAssets.StringFixed(2))
	fmt.Println(strings.Repeat("-", 66))
	fmt.Printf("  %-40s %21s\n", "Accounts Payable", bs.AccountsPayable.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "VAT Payable", bs.VATPayable.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "TOTAL LIABILITIES", bs.TotalLiabilities.StringFixed(2))
	fmt.Println(strings.Repeat("-", 66))
	fmt.Printf("  %-40s %21s\n", "Opening Capital", bs.OpeningCapital.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "Retained Earnings (YTD)", bs.RetainedEarningsYTD.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "TOTAL EQUITY", bs.TotalEquity.StringFixed(2))
	fmt.Println(strings.Repeat("-", 66))
	fmt.Printf("  %-40s %21s\n", "CHECK (assets - liab - equity)", bs.Check.StringFixed(2))
	fmt.Println(strings.Repeat("=", 66))
}

func printReconciliation(rec core.BankReconciliation) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 66))
	fmt.Println("  BANK RECONCILIATION")
	fmt.Println(strings.Repeat("=", 66))
	fmt.Printf("  %-40s %21s\n", "Statement Balance", rec.StatementBalance.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "Outstanding Deposits", rec.OutstandingDeposits.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "Outstanding Checks", rec.OutstandingChecks.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "Adjusted Bank Balance", rec.AdjustedBankBalance.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "Book Balance", rec.BookBalance.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "DIFFERENCE", rec.Difference.StringFixed(2))
	fmt.Println(strings.Repeat("=", 66))
}

func printDashboard(d core.Dashboard) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 66))
	fmt.Println("  KEY INDICATORS")
	fmt.Println(strings.Repeat("=", 66))
	fmt.Printf("  %-40s %21s\n", "Monthly Net Profit", d.MonthlyNetProfit.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "YTD Net Profit", d.YTDNetProfit.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "Total Cash", d.TotalCash.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "Outstanding Receivables", d.OutstandingReceivables.StringFixed(2))
	fmt.Printf("  %-40s %21s\n", "Days Sales Outstanding", d.DaysSalesOutstanding.StringFixed(1))
	fmt.Printf("  %-40s %21s\n", "Quick Ratio", d.QuickRatio.StringFixed(2))
	fmt.Println(strings.Repeat("=", 66))
}

func printDebtors(td core.TradeDebtors) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Println("  TRADE DEBTORS (receivables aging)")
	fmt.Println(strings.Repeat("=", 78))
	if len(td.Rows) == 0 {
		fmt.Println("  No outstanding invoices.")
		fmt.Println(strings.Repeat("=", 78))
		return
	}
	fmt.Printf("  %-10s %-22s %12s %12s %6s  %s\n", "INVOICE", "CLIENT", "OWED", "DUE", "DAYS", "STATUS")
	fmt.Println(strings.Repeat("-", 78))
	for _, row := range td.Rows {
		fmt.Printf("  %-10s %-22s %12s %12s %6d  %s\n",
			row.InvoiceID, row.ClientName, row.AmountOwed.StringFixed(2),
			row.DueDate.Format("2006-01-02"), row.DaysOutstanding, row.Status)
	}
	fmt.Println(strings.Repeat("-", 78))
	fmt.Printf("  %-34s %12s\n", "Current (0-30 days)", td.CurrentTotal.StringFixed(2))
	fmt.Printf("  %-34s %12s\n", "Due Soon (31-60 days)", td.DueSoonTotal.StringFixed(2))
	fmt.Printf("  %-34s %12s\n", "Overdue (60+ days)", td.OverdueTotal.StringFixed(2))
	fmt.Printf("  %-34s %12s\n", "TOTAL OUTSTANDING", td.TotalOutstanding.StringFixed(2))
	fmt.Println(strings.Repeat("=", 78))
}

func printCashflow(cp core.CashPosition) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 66))
	fmt.Println("  MONTHLY CASH FLOW")
	fmt.Println(strings.Repeat("=", 66))
	fmt.Printf("  %-12s %16s %16s %16s\n", "MONTH", "INFLOW", "OUTFLOW", "NET")
	fmt.Println(strings.Repeat("-", 66))
	for _, m := range cp.Monthly {
		fmt.Printf("  %-12s %16s %16s %16s\n",
			m.Month.String(), m.Inflow.StringFixed(2), m.Outflow.StringFixed(2), m.Net.StringFixed(2))
	}
	fmt.Println(strings.Repeat("=", 66))
}

func printCustomers(result *app.CustomersResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 84))
	fmt.Println("  CUSTOMER ACCOUNTS")
	fmt.Println(strings.Repeat("=", 84))
	if len(result.Customers) == 0 {
		fmt.Println("  No customers found.")
		fmt.Println(strings.Repeat("=", 84))
		return
	}
	fmt.Printf("  %-8s %-24s %13s %13s %13s  %s\n", "ID", "NAME", "INVOICED", "PAID", "BALANCE", "STATUS")
	fmt.Println(strings.Repeat("-", 84))
	for _, c := range result.Customers {
		fmt.Printf("  %-8s %-24s %13s %13s %13s  %s\n",
			c.CustomerID, c.Name, c.TotalInvoiced.StringFixed(2),
			c.TotalPaid.StringFixed(2), c.Balance.StringFixed(2), c.Status)
	}
	fmt.Println(strings.Repeat("=", 84))
}

func printVendors(result *app.VendorsResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 84))
	fmt.Println("  VENDOR ACCOUNTS")
	fmt.Println(strings.Repeat("=", 84))
	if len(result.Vendors) == 0 {
		fmt.Println("  No vendors found.")
		fmt.Println(strings.Repeat("=", 84))
		return
	}
	fmt.Printf("  %-8s %-24s %13s %13s %13s  %s\n", "ID", "NAME", "PURCHASED", "PAID", "OWED", "STATUS")
	fmt.Println(strings.Repeat("-", 84))
	for _, v := range result.Vendors {
		fmt.Printf("  %-8s %-24s %13s %13s %13s  %s\n",
			v.VendorID, v.Name, v.TotalPurchased.StringFixed(2),
			v.TotalPaid.StringFixed(2), v.BalanceOwed.StringFixed(2), v.Status)
	}
	fmt.Println(strings.Repeat("=", 84))
}

func printInventory(result *app.InventoryResult) {
	inv := result.Inventory
	fmt.Println()
	fmt.Println(strings.Repeat("=", 84))
	fmt.Println("  INVENTORY")
	fmt.Println(strings.Repeat("=", 84))
	if len(inv.Items) == 0 {
		fmt.Println("  No stock records.")
		fmt.Println(strings.Repeat("=", 84))
		return
	}
	fmt.Printf("  %-10s %-26s %10s %6s %6s %7s %12s\n", "STOCK", "DESCRIPTION", "PRICE", "STORE", "RENTED", "TRANSIT", "VALUE")
	fmt.Println(strings.Repeat("-", 84))
	for _, it := range inv.Items {
		fmt.Printf("  %-10s %-26s %10s %6d %6d %7d %12s\n",
			it.StockID, it.Description, it.UnitPrice.StringFixed(2),
			it.QuantityInStore, it.QuantityRented, it.QuantityInTransit, it.TotalValue.StringFixed(2))
	}
	fmt.Println(strings.Repeat("-", 84))
	fmt.Printf("  %-62s %12s\n", "TOTAL VALUE", inv.TotalValue.StringFixed(2))
	fmt.Println(strings.Repeat("=", 84))
}

func printCommentary(result *app.CommentaryResult) {
	c := result.Commentary
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("  %s\n", c.Headline)
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println(c.Summary)
	if len(c.Watchpoints) > 0 {
		fmt.Println()
		fmt.Println("  Watchpoints:")
		for _, w := range c.Watchpoints {
			fmt.Printf("  - %s\n", w)
		}
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printAnomalies(anomalies []core.Anomaly) {
	if len(anomalies) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("  ANOMALIES (%d)\n", len(anomalies))
	fmt.Println(strings.Repeat("=", 72))
	for _, a := range anomalies {
		fmt.Printf("  %s\n", a.String())
	}
	fmt.Println(strings.Repeat("=", 72))
}
