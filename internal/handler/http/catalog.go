package http

import (
	"net/http"

	"github.com/blushrz/salon-admin/internal/utils"
	"github.com/blushrz/salon-admin/models"
	"github.com/go-chi/chi/v5"
)

// ── Bookable services ───────────────────────────────────────────────────────

func (h *Handler) listServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.Catalog.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, services, http.StatusOK)
}

func (h *Handler) getService(w http.ResponseWriter, r *http.Request) {
	service, err := h.services.Catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, service, http.StatusOK)
}

func (h *Handler) createService(w http.ResponseWriter, r *http.Request) {
	var service models.Service
	if !decodeJSON(w, r, &service) {
		return
	}

	created, err := h.services.Catalog.Create(r.Context(), service)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateService(w http.ResponseWriter, r *http.Request) {
	var service models.Service
	if !decodeJSON(w, r, &service) {
		return
	}
	service.ID = chi.URLParam(r, "id")

	updated, err := h.services.Catalog.Update(r.Context(), service)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Catalog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── Staff ───────────────────────────────────────────────────────────────────

func (h *Handler) listStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.services.Staff.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, staff, http.StatusOK)
}

func (h *Handler) getStaffMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.services.Staff.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, member, http.StatusOK)
}

func (h *Handler) createStaffMember(w http.ResponseWriter, r *http.Request) {
	var member models.Staff
	if !decodeJSON(w, r, &member) {
		return
	}

	created, err := h.services.Staff.Create(r.Context(), member)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateStaffMember(w http.ResponseWriter, r *http.Request) {
	var member models.Staff
	if !decodeJSON(w, r, &member) {
		return
	}
	member.ID = chi.URLParam(r, "id")

	updated, err := h.services.Staff.Update(r.Context(), member)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteStaffMember(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Staff.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
