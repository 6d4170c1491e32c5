package http

import (
	"net/http"

	"github.com/blushrz/salon-admin/internal/utils"
	"github.com/blushrz/salon-admin/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.services.Offers.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, offers, http.StatusOK)
}

func (h *Handler) getOffer(w http.ResponseWriter, r *http.Request) {
	offer, err := h.services.Offers.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, offer, http.StatusOK)
}

func (h *Handler) createOffer(w http.ResponseWriter, r *http.Request) {
	var offer models.Offer
	if !decodeJSON(w, r, &offer) {
		return
	}

	created, err := h.services.Offers.Create(r.Context(), offer)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateOffer(w http.ResponseWriter, r *http.Request) {
	var offer models.Offer
	if !decodeJSON(w, r, &offer) {
		return
	}
	offer.ID = chi.URLParam(r, "id")

	updated, err := h.services.Offers.Update(r.Context(), offer)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteOffer(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Offers.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
