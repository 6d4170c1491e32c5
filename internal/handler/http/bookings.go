package http

import (
	"net/http"
	"time"

	"github.com/blushrz/salon-admin/internal/app"
	"github.com/blushrz/salon-admin/internal/utils"
	"github.com/blushrz/salon-admin/models"
	"github.com/go-chi/chi/v5"
)

// dateQueryLayout is the wire format of the "date" query parameter used by
// the by-date and availability endpoints.
const dateQueryLayout = "2006-01-02"

// parseDateQuery reads the required "date" query parameter. On a missing or
// malformed value it writes the 400 response itself and returns false.
func parseDateQuery(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		respondBadRequest(w, app.MsgMissingDateParam)
		return time.Time{}, false
	}

	date, err := time.Parse(dateQueryLayout, raw)
	if err != nil {
		respondBadRequest(w, app.MsgInvalidDateParam)
		return time.Time{}, false
	}

	return date, true
}

func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.services.Bookings.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, bookings, http.StatusOK)
}

func (h *Handler) bookingsByDate(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateQuery(w, r)
	if !ok {
		return
	}

	bookings, err := h.services.Bookings.ListByDate(r.Context(), date)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, bookings, http.StatusOK)
}

func (h *Handler) bookingsBySalon(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.services.Bookings.ListBySalon(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, bookings, http.StatusOK)
}

func (h *Handler) getBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.services.Bookings.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, booking, http.StatusOK)
}

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	var booking models.Booking
	if !decodeJSON(w, r, &booking) {
		return
	}

	created, err := h.services.Bookings.Create(r.Context(), booking)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateBooking(w http.ResponseWriter, r *http.Request) {
	var booking models.Booking
	if !decodeJSON(w, r, &booking) {
		return
	}
	booking.ID = chi.URLParam(r, "id")

	updated, err := h.services.Bookings.Update(r.Context(), booking)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Bookings.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var body models.StatusUpdate
	if !decodeJSON(w, r, &body) {
		return
	}

	err := h.services.Bookings.UpdateStatus(r.Context(), chi.URLParam(r, "id"), models.BookingStatus(body.Status))
	if err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
