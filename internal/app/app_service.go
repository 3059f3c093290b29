package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookkeeper/internal/ai"
	"bookkeeper/internal/core"
)

// ErrNoAgent is returned by ExplainStatements when no commentary agent was
// configured (OPENAI_API_KEY not set).
var ErrNoAgent = errors.New("commentary agent not configured")

type appService struct {
	source SnapshotSource
	agent  ai.AgentService
	now    func() time.Time
}

// NewAppService constructs the ApplicationService. agent may be nil; only
// ExplainStatements needs it. now may be nil and defaults to time.Now.
func NewAppService(source SnapshotSource, agent ai.AgentService, now func() time.Time) ApplicationService {
	if now == nil {
		now = time.Now
	}
	return &appService{source: source, agent: agent, now: now}
}

// compute takes a fresh snapshot and evaluates the full statement graph.
func (s *appService) compute(ctx context.Context, asOf time.Time) (*core.StatementBundle, error) {
	if asOf.IsZero() {
		asOf = s.now()
	}

	settings, err := s.source.LoadSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	ledger, err := s.source.LoadLedger(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	bundle, err := core.Compute(settings, ledger, asOf)
	if err != nil {
		return nil, fmt.Errorf("compute statements: %w", err)
	}
	return bundle, nil
}

func (s *appService) GetStatements(ctx context.Context, asOf time.Time) (*StatementsResult, error) {
	bundle, err := s.compute(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return &StatementsResult{Bundle: bundle}, nil
}

func (s *appService) GetCustomers(ctx context.Context, asOf time.Time) (*CustomersResult, error) {
	bundle, err := s.compute(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return &CustomersResult{Customers: bundle.Customers, AsOf: bundle.AsOf}, nil
}

func (s *appService) GetVendors(ctx context.Context, asOf time.Time) (*VendorsResult, error) {
	bundle, err := s.compute(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return &VendorsResult{Vendors: bundle.Vendors, AsOf: bundle.AsOf}, nil
}

func (s *appService) GetInventory(ctx context.Context, asOf time.Time) (*InventoryResult, error) {
	bundle, err := s.compute(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return &InventoryResult{Inventory: bundle.Inventory, AsOf: bundle.AsOf}, nil
}

func (s *appService) ExplainStatements(ctx context.Context, asOf time.Time) (*CommentaryResult, error) {
	if s.agent == nil {
		return nil, ErrNoAgent
	}
	bundle, err := s.compute(ctx, asOf)
	if err != nil {
		return nil, err
	}
	commentary, err := s.agent.ExplainBundle(ctx, bundle)
	if err != nil {
		return nil, fmt.Errorf("explain statements: %w", err)
	}
	return &CommentaryResult{Commentary: commentary, AsOf: bundle.AsOf}, nil
}
