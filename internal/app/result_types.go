package app

import (
	"time"

	"bookkeeper/internal/ai"
	"bookkeeper/internal/core"
)

// StatementsResult is returned by GetStatements.
type StatementsResult struct {
	Bundle *core.StatementBundle
}

// CustomersResult is returned by GetCustomers.
type CustomersResult struct {
	Customers []core.CustomerAccount
	AsOf      time.Time
}

// VendorsResult is returned by GetVendors.
type VendorsResult struct {
	Vendors []core.VendorAccount
	AsOf    time.Time
}

// InventoryResult is returned by GetInventory.
type InventoryResult struct {
	Inventory core.InventoryRollup
	AsOf      time.Time
}

// CommentaryResult is returned by ExplainStatements.
type CommentaryResult struct {
	Commentary *ai.Commentary
	AsOf       time.Time
}
