package core

import (
	"fmt"
	"time"
)

// StatementBundle is the single immutable result of one Compute call: every
// derived view, statement, and KPI plus the anomalies collected along the
// way. Monetary and percentage fields throughout the bundle carry a
// `semantic` struct tag for downstream formatting; the engine itself does no
// rounding-for-display or locale handling.
type StatementBundle struct {
	AsOf time.Time `json:"as_of"`

	Revenue       RevenueView     `json:"revenue"`
	TradeDebtors  TradeDebtors    `json:"trade_debtors"`
	ExpenseRollup ExpenseRollup   `json:"expense_rollup"`
	Inventory     InventoryRollup `json:"inventory"`

	Customers []CustomerAccount `json:"customers"`
	Vendors   []VendorAccount   `json:"vendors"`

	CashPosition  CashPosition  `json:"cash_position"`
	ProfitAndLoss ProfitAndLoss `json:"profit_and_loss"`
	TaxSummary    TaxSummary    `json:"tax_summary"`
	BalanceSheet  BalanceSheet  `json:"balance_sheet"`

	// BankReconciliation is present only when the ledger carries an external
	// bank statement.
	BankReconciliation *BankReconciliation `json:"bank_reconciliation,omitempty"`

	Dashboard Dashboard `json:"dashboard"`

	Anomalies []Anomaly `json:"anomalies,omitempty"`
}

// evalState is the working set threaded through the derivation graph.
type evalState struct {
	settings Settings
	ledger   *Ledger
	asOf     time.Time
	bundle   *StatementBundle
}

// node is one named derivation in the statement graph. Dependencies are on
// other node names; the graph is evaluated in topological order so every
// cross-statement reference reads an already-computed value.
type node struct {
	name string
	deps []string
	run  func(*evalState)
}

// statementGraph is the explicit derivation DAG:
// ledger/settings → derived views → statements → KPIs.
var statementGraph = []node{
	{name: "revenue", run: func(st *evalState) {
		view, anomalies := buildRevenueView(st.settings, st.ledger.Invoices(), st.asOf)
		st.bundle.Revenue = view
		st.bundle.Anomalies = append(st.bundle.Anomalies, anomalies...)
	}},
	{name: "trade_debtors", run: func(st *evalState) {
		st.bundle.TradeDebtors = buildTradeDebtors(st.settings, st.ledger.Invoices(), st.asOf)
	}},
	{name: "expense_rollup", run: func(st *evalState) {
		st.bundle.ExpenseRollup = buildExpenseRollup(st.settings, st.ledger.Expenses(), st.asOf)
	}},
	{name: "inventory_rollup", run: func(st *evalState) {
		st.bundle.Inventory = buildInventoryRollup(st.ledger.Inventory())
	}},
	{name: "customers", run: func(st *evalState) {
		st.bundle.Customers = buildCustomerAccounts(st.settings, st.ledger.Customers(), st.ledger.Invoices())
	}},
	{name: "vendors", run: func(st *evalState) {
		st.bundle.Vendors = buildVendorAccounts(st.ledger.Vendors(), st.ledger.Expenses(), st.ledger.VendorPayments())
	}},
	{name: "cash_position", run: func(st *evalState) {
		st.bundle.CashPosition = buildCashPosition(st.settings, st.ledger.Invoices(), st.ledger.Expenses(), st.asOf)
	}},
	{name: "profit_and_loss", deps: []string{"revenue", "expense_rollup"}, run: func(st *evalState) {
		st.bundle.ProfitAndLoss = buildProfitAndLoss(st.settings, st.bundle.Revenue, st.bundle.ExpenseRollup)
	}},
	{name: "tax_summary", run: func(st *evalState) {
		st.bundle.TaxSummary = buildTaxSummary(st.settings, st.ledger.Invoices(), st.ledger.Expenses())
	}},
	{name: "balance_sheet",
		deps: []string{"cash_position", "trade_debtors", "inventory_rollup", "tax_summary", "profit_and_loss", "vendors"},
		run: func(st *evalState) {
			bs, anomalies := buildBalanceSheet(st.settings, st.bundle.CashPosition,
				st.bundle.TradeDebtors, st.bundle.Inventory, st.bundle.TaxSummary,
				st.bundle.ProfitAndLoss, st.bundle.Vendors)
			st.bundle.BalanceSheet = bs
			st.bundle.Anomalies = append(st.bundle.Anomalies, anomalies...)
		}},
	{name: "bank_reconciliation", deps: []string{"cash_position"}, run: func(st *evalState) {
		stmt := st.ledger.BankStatement()
		if stmt == nil {
			return
		}
		rec, anomalies := buildBankReconciliation(st.settings, *stmt, st.bundle.CashPosition)
		st.bundle.BankReconciliation = &rec
		st.bundle.Anomalies = append(st.bundle.Anomalies, anomalies...)
	}},
	{name: "dashboard",
		deps: []string{"revenue", "expense_rollup", "trade_debtors", "inventory_rollup", "cash_position", "tax_summary", "balance_sheet"},
		run: func(st *evalState) {
			st.bundle.Dashboard = buildDashboard(st.bundle.Revenue, st.bundle.ExpenseRollup,
				st.bundle.TradeDebtors, st.bundle.Inventory, st.bundle.CashPosition,
				st.bundle.TaxSummary, st.bundle.BalanceSheet)
		}},
}

// Compute evaluates the full statement graph over an immutable ledger
// snapshot. asOf is the injected clock: every "today"/"this month" window in
// one call derives from it, so a call is internally consistent and
// idempotent: identical inputs produce identical bundles. The ledger is
// never mutated; recomputation is always total (the graph is cheap enough to
// evaluate wholesale, and no intermediate value is cached between calls).
func Compute(settings Settings, ledger *Ledger, asOf time.Time) (*StatementBundle, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if ledger == nil {
		return nil, fmt.Errorf("ledger must not be nil")
	}

	order, err := topoOrder(statementGraph)
	if err != nil {
		return nil, err
	}

	st := &evalState{
		settings: settings,
		ledger:   ledger,
		asOf:     asOf,
		bundle:   &StatementBundle{AsOf: dateOf(asOf)},
	}
	// Ingestion anomalies ride along so the caller sees every reference
	// problem next to the statements it affected.
	st.bundle.Anomalies = append(st.bundle.Anomalies, ledger.Anomalies()...)

	for _, n := range order {
		n.run(st)
	}

	return st.bundle, nil
}

// topoOrder returns the nodes in dependency order (Kahn's algorithm, stable
// with respect to declaration order so output is deterministic). A cycle or
// an unknown dependency is a programming error surfaced as an error.
func topoOrder(nodes []node) ([]node, error) {
	byName := make(map[string]int, len(nodes))
	for i, n := range nodes {
		byName[n.name] = i
	}

	indegree := make([]int, len(nodes))
	dependents := make([][]int, len(nodes))
	for i, n := range nodes {
		for _, dep := range n.deps {
			j, ok := byName[dep]
			if !ok {
				return nil, fmt.Errorf("statement graph: %q depends on unknown node %q", n.name, dep)
			}
			indegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	var queue []int
	for i := range nodes {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]node, 0, len(nodes))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, nodes[i])
		for _, j := range dependents[i] {
			indegree[j]--
			if indegree[j] == 0 {
				queue = append(queue, j)
			}
		}
	}

	if len(order) != len(nodes) {
		return nil, fmt.Errorf("statement graph contains a cycle")
	}
	return order, nil
}
