package httpadapter

import "net/http"

func (h *Handler) handleStations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Catalog(r.Context()).Stations)
}

func (h *Handler) handleSlots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Catalog(r.Context()).Slots)
}

func (h *Handler) handleTiers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Catalog(r.Context()).Tiers.Sorted())
}
