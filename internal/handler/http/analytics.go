package http

import (
	"net/http"

	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/utils"
)

func (h *Handler) analyticsOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.services.Analytics.Overview(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, overview, http.StatusOK)
}

func (h *Handler) analyticsBookings(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.services.Analytics.Bookings(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, analytics, http.StatusOK)
}

func (h *Handler) analyticsRevenue(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.services.Analytics.Revenue(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, analytics, http.StatusOK)
}

func (h *Handler) analyticsSalons(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.services.Analytics.Salons(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, analytics, http.StatusOK)
}

func (h *Handler) analyticsServices(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.services.Analytics.Services(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, analytics, http.StatusOK)
}

func (h *Handler) analyticsUsers(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.services.Analytics.Users(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, analytics, http.StatusOK)
}

// analyticsExport streams the CSV export as an attachment.
func (h *Handler) analyticsExport(w http.ResponseWriter, r *http.Request) {
	csvData, err := h.services.Analytics.Export(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="analytics.csv"`)
	if _, err = w.Write(csvData); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing CSV export failed")
	}
}
