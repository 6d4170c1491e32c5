package http

import (
	"net/http"

	"github.com/blushrz/salon-admin/internal/utils"
	"github.com/blushrz/salon-admin/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listSalons(w http.ResponseWriter, r *http.Request) {
	salons, err := h.services.Salons.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, salons, http.StatusOK)
}

func (h *Handler) getSalon(w http.ResponseWriter, r *http.Request) {
	salon, err := h.services.Salons.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, salon, http.StatusOK)
}

func (h *Handler) createSalon(w http.ResponseWriter, r *http.Request) {
	var salon models.Salon
	if !decodeJSON(w, r, &salon) {
		return
	}

	created, err := h.services.Salons.Create(r.Context(), salon)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateSalon(w http.ResponseWriter, r *http.Request) {
	var salon models.Salon
	if !decodeJSON(w, r, &salon) {
		return
	}
	salon.ID = chi.URLParam(r, "id")

	updated, err := h.services.Salons.Update(r.Context(), salon)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteSalon(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Salons.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateSalonStatus(w http.ResponseWriter, r *http.Request) {
	var body models.StatusUpdate
	if !decodeJSON(w, r, &body) {
		return
	}

	err := h.services.Salons.UpdateStatus(r.Context(), chi.URLParam(r, "id"), models.EntityStatus(body.Status))
	if err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) salonServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.Salons.Services(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, services, http.StatusOK)
}

func (h *Handler) salonStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.services.Salons.Staff(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, staff, http.StatusOK)
}

func (h *Handler) salonAvailability(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateQuery(w, r)
	if !ok {
		return
	}

	slots, err := h.services.Salons.Availability(r.Context(), chi.URLParam(r, "id"), date)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, slots, http.StatusOK)
}
