package httpadapter

import (
	"net/http"

	"radio-mediaplan/internal/resilience"
)

// handleHealth reports the circuit state of outbound providers. The service
// stays up while a provider is down, so the status code is always 200 and
// the body says "degraded".
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := healthResponse{Status: "ok", Providers: []resilience.ProviderHealth{}}
	if h.health != nil {
		resp.Providers = h.health.Health()
	}
	for _, p := range resp.Providers {
		if !p.Healthy() {
			resp.Status = "degraded"
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
