package httpadapter

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"radio-mediaplan/internal/adapter/export"
	"radio-mediaplan/internal/core/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleCalculate prices a PlanInput. Input errors produce HTTP 400.
func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var in domain.PlanInput
	if !h.decode(w, r, &in) {
		return
	}
	res, err := h.svc.Calculate(r.Context(), in)
	if err != nil {
		h.fail(w, r, "calculate", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handlePlan generates a media plan for a business description. Advisor
// quota errors produce HTTP 429 and 402.
func (h *Handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if !h.decode(w, r, &req) {
		return
	}
	plan, err := h.svc.Plan(r.Context(), req.Query)
	if err != nil {
		h.fail(w, r, "plan", err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// handleExport prices a draft and returns it as a JSON or XLSX attachment,
// selected by the format query parameter (json by default).
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "xlsx" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported format %q", format))
		return
	}

	var draft domain.PlanDraft
	if !h.decode(w, r, &draft) {
		return
	}
	plan, err := h.svc.Compose(r.Context(), draft)
	if err != nil {
		h.fail(w, r, "export", err)
		return
	}
	doc := export.NewDocument(*plan, h.svc.Catalog(r.Context()))

	var (
		buf         bytes.Buffer
		contentType string
	)
	switch format {
	case "xlsx":
		contentType = xlsxContentType
		err = export.WriteXLSX(&buf, doc)
	default:
		contentType = "application/json"
		err = export.WriteJSON(&buf, doc)
	}
	if err != nil {
		h.fail(w, r, "export", err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.FileName(format)))
	if _, err = buf.WriteTo(w); err != nil {
		h.logger.Error("write export error", slog.Any("error", err))
	}
}

// handleSend emails a priced draft to the client and the sales desk.
func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if !h.decode(w, r, &req) {
		return
	}
	contact := domain.Contact{Name: req.Contact.Name, Email: req.Contact.Email, Phone: req.Contact.Phone}
	res, err := h.svc.Send(r.Context(), contact, req.Draft)
	if err != nil {
		h.fail(w, r, "send", err)
		return
	}
	writeJSON(w, http.StatusOK, sendResponse{Success: true, EmailResults: *res})
}
