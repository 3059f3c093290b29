package web

import (
	"errors"
	"net/http"
	"time"

	"bookkeeper/internal/app"

	"github.com/go-chi/chi/v5"
)

// Handler serves the read-only statements API. Every endpoint computes from
// a fresh ledger snapshot; an optional as_of=YYYY-MM-DD query parameter pins
// the evaluation date.
type Handler struct {
	svc    app.ApplicationService
	router chi.Router
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)

	r.Get("/api/health", h.health)
	r.Get("/api/statements", h.statements)
	r.Get("/api/dashboard", h.dashboard)
	r.Get("/api/debtors", h.debtors)
	r.Get("/api/anomalies", h.anomalies)
	r.Get("/api/customers", h.customers)
	r.Get("/api/vendors", h.vendors)
	r.Get("/api/inventory", h.inventory)
	r.Get("/api/commentary", h.commentary)

	h.router = r
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// asOfParam parses the optional as_of query parameter. A zero return means
// "now".
func asOfParam(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (h *Handler) statements(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfParam(r)
	if err != nil {
		writeError(w, r, "as_of must be YYYY-MM-DD", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	res, err := h.svc.GetStatements(r.Context(), asOf)
	if err != nil {
		writeError(w, r, err.Error(), "COMPUTE_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, res.Bundle)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfParam(r)
	if err != nil {
		writeError(w, r, "as_of must be YYYY-MM-DD", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	res, err := h.svc.GetStatements(r.Context(), asOf)
	if err != nil {
		writeError(w, r, err.Error(), "COMPUTE_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, res.Bundle.Dashboard)
}

func (h *Handler) debtors(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfParam(r)
	if err != nil {
		writeError(w, r, "as_of must be YYYY-MM-DD", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	res, err := h.svc.GetStatements(r.Context(), asOf)
	if err != nil {
		writeError(w, r, err.Error(), "COMPUTE_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, res.Bundle.TradeDebtors)
}

func (h *Handler) anomalies(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfParam(r)
	if err != nil {
		writeError(w, r, "as_of must be YYYY-MM-DD", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	res, err := h.svc.GetStatements(r.Context(), asOf)
	if err != nil {
		writeError(w, r, err.Error(), "COMPUTE_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{
		"as_of":     res.Bundle.AsOf,
		"anomalies": res.Bundle.Anomalies,
	})
}

func (h *Handler) customers(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfParam(r)
	if err != nil {
		writeError(w, r, "as_of must be YYYY-MM-DD", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	res, err := h.svc.GetCustomers(r.Context(), asOf)
	if err != nil {
		writeError(w, r, err.Error(), "COMPUTE_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) vendors(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfParam(r)
	if err != nil {
		writeError(w, r, "as_of must be YYYY-MM-DD", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	res, err := h.svc.GetVendors(r.Context(), asOf)
	if err != nil {
		writeError(w, r, err.Error(), "COMPUTE_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) inventory(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfParam(r)
	if err != nil {
		writeError(w, r, "as_of must be YYYY-MM-DD", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	res, err := h.svc.GetInventory(r.Context(), asOf)
	if err != nil {
		writeError(w, r, err.Error(), "COMPUTE_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) commentary(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfParam(r)
	if err != nil {
		writeError(w, r, "as_of must be YYYY-MM-DD", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	res, err := h.svc.ExplainStatements(r.Context(), asOf)
	if errors.Is(err, app.ErrNoAgent) {
		writeError(w, r, "commentary agent not configured", "NO_AGENT", http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		writeError(w, r, err.Error(), "COMPUTE_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, res)
}
