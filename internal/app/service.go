package app

import (
	"context"
	"time"

	"bookkeeper/internal/core"
)

// SnapshotSource supplies the settings and a ledger snapshot for one
// evaluation. The Postgres store implements it; tests supply in-memory ones.
type SnapshotSource interface {
	LoadSettings(ctx context.Context) (core.Settings, error)
	LoadLedger(ctx context.Context, settings core.Settings) (*core.Ledger, error)
}

// ApplicationService is the single interface all presentation adapters (CLI,
// Web) call. It decouples presentation from the engine. Implementations must
// contain no fmt.Println, no ANSI codes, and no display logic of any kind.
//
// A zero asOf means "now" on the service's clock; any other value pins the
// evaluation instant, which makes every read reproducible.
type ApplicationService interface {
	// GetStatements computes the full statement bundle from a fresh snapshot.
	GetStatements(ctx context.Context, asOf time.Time) (*StatementsResult, error)

	// GetCustomers returns the customer accounts joined with invoice totals.
	GetCustomers(ctx context.Context, asOf time.Time) (*CustomersResult, error)

	// GetVendors returns the vendor accounts joined with purchase and
	// payment totals.
	GetVendors(ctx context.Context, asOf time.Time) (*VendorsResult, error)

	// GetInventory returns the stock valuation rollup.
	GetInventory(ctx context.Context, asOf time.Time) (*InventoryResult, error)

	// ExplainStatements computes a bundle and asks the commentary agent for
	// a plain-language read of it. Requires a configured agent.
	ExplainStatements(ctx context.Context, asOf time.Time) (*CommentaryResult, error)
}
