package http

import (
	"net/http"

	"github.com/blushrz/salon-admin/internal/utils"
	"github.com/blushrz/salon-admin/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.services.Notifications.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, notifications, http.StatusOK)
}

func (h *Handler) createNotification(w http.ResponseWriter, r *http.Request) {
	var n models.Notification
	if !decodeJSON(w, r, &n) {
		return
	}

	created, err := h.services.Notifications.Create(r.Context(), n)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) sendNotification(w http.ResponseWriter, r *http.Request) {
	var req models.SendNotificationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sent, err := h.services.Notifications.Send(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, sent, http.StatusOK)
}

func (h *Handler) updateNotification(w http.ResponseWriter, r *http.Request) {
	var n models.Notification
	if !decodeJSON(w, r, &n) {
		return
	}
	n.ID = chi.URLParam(r, "id")

	updated, err := h.services.Notifications.Update(r.Context(), n)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteNotification(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Notifications.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
