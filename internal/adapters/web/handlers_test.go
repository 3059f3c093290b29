package web_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookkeeper/internal/adapters/web"
	"bookkeeper/internal/app"
	"bookkeeper/internal/core"
)

// fakeService serves a precomputed bundle.
type fakeService struct {
	bundle *core.StatementBundle
	lastAt time.Time
}

func (f *fakeService) GetStatements(ctx context.Context, asOf time.Time) (*app.StatementsResult, error) {
	f.lastAt = asOf
	return &app.StatementsResult{Bundle: f.bundle}, nil
}

func (f *fakeService) GetCustomers(ctx context.Context, asOf time.Time) (*app.CustomersResult, error) {
	return &app.CustomersResult{Customers: f.bundle.Customers, AsOf: f.bundle.AsOf}, nil
}

func (f *fakeService) GetVendors(ctx context.Context, asOf time.Time) (*app.VendorsResult, error) {
	return &app.VendorsResult{Vendors: f.bundle.Vendors, AsOf: f.bundle.AsOf}, nil
}

func (f *fakeService) GetInventory(ctx context.Context, asOf time.Time) (*app.InventoryResult, error) {
	return &app.InventoryResult{Inventory: f.bundle.Inventory, AsOf: f.bundle.AsOf}, nil
}

func (f *fakeService) ExplainStatements(ctx context.Context, asOf time.Time) (*app.CommentaryResult, error) {
	return nil, app.ErrNoAgent
}

func testBundle(t *testing.T) *core.StatementBundle {
	t.Helper()
	settings := core.DefaultSettings(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	bundle, err := core.Compute(settings, core.NewLedger(settings), time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	return bundle
}

func TestHandler_Statements(t *testing.T) {
	svc := &fakeService{bundle: testBundle(t)}
	handler := web.NewHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/statements?as_of=2025-06-15", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("X-Request-ID"); got == "" {
		t.Errorf("expected an X-Request-ID header")
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if _, ok := body["balance_sheet"]; !ok {
		t.Errorf("response is missing balance_sheet: %v", body)
	}
	if want := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC); !svc.lastAt.Equal(want) {
		t.Errorf("as_of passed to service = %s, want %s", svc.lastAt, want)
	}
}

func TestHandler_BadAsOf(t *testing.T) {
	handler := web.NewHandler(&fakeService{bundle: testBundle(t)})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard?as_of=june", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["code"] != "BAD_REQUEST" {
		t.Errorf("code = %v, want BAD_REQUEST", body["code"])
	}
}

func TestHandler_CommentaryWithoutAgent(t *testing.T) {
	handler := web.NewHandler(&fakeService{bundle: testBundle(t)})

	req := httptest.NewRequest(http.MethodGet, "/api/commentary", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestHandler_Health(t *testing.T) {
	handler := web.NewHandler(&fakeService{bundle: testBundle(t)})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
