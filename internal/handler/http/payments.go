package http

import (
	"net/http"

	"github.com/blushrz/salon-admin/internal/utils"
	"github.com/blushrz/salon-admin/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.services.Payments.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, payments, http.StatusOK)
}

func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) {
	payment, err := h.services.Payments.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, payment, http.StatusOK)
}

func (h *Handler) refundPayment(w http.ResponseWriter, r *http.Request) {
	var body models.RefundRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	refunded, err := h.services.Payments.Refund(r.Context(), chi.URLParam(r, "id"), body.Reason)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, refunded, http.StatusOK)
}

func (h *Handler) webhookLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.services.Payments.WebhookLogs(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, logs, http.StatusOK)
}
