package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// ready gates readiness during startup and graceful shutdown.
var ready atomic.Bool

// SetReady flips the readiness gate. The server marks itself unready before
// draining connections so load balancers stop routing to it.
func SetReady(v bool) {
	ready.Store(v)
}

// StoreChecker represents the basket store probe.
type StoreChecker interface {
	Ping(ctx context.Context, timeout time.Duration) error
}

// CatalogChecker reports how many products are loaded.
type CatalogChecker interface {
	Size() int
}

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	Store        StoreChecker
	Catalog      CatalogChecker
	StoreTimeout time.Duration
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on the store probe and a loaded catalog.
func (h Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !ready.Load() || h.Store == nil || h.Catalog == nil {
		http.Error(w, "dependencies unavailable", http.StatusServiceUnavailable)
		return
	}
	storeStatus := "ok"
	if err := h.Store.Ping(r.Context(), h.storeTimeout()); err != nil {
		storeStatus = err.Error()
	}
	catalogStatus := "ok"
	if h.Catalog.Size() == 0 {
		catalogStatus = "catalog empty"
	}
	status := map[string]string{
		"store":   storeStatus,
		"catalog": catalogStatus,
	}
	w.Header().Set("Content-Type", "application/json")
	if storeStatus != "ok" || catalogStatus != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(status)
}

func (h Handler) storeTimeout() time.Duration {
	if h.StoreTimeout <= 0 {
		return 300 * time.Millisecond
	}
	return h.StoreTimeout
}
