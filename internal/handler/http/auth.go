package http

import (
	"net/http"

	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/utils"
	"github.com/blushrz/salon-admin/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	admin, pair, err := h.services.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Info().Str("admin_id", admin.ID).Msg("admin logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         admin,
	}, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RefreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pair, err := h.services.Auth.Refresh(ctx, req.RefreshToken)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RefreshResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, http.StatusOK)
}

// logout is stateless on the server side. Tokens are short-lived JWTs; the
// client discards its stored pair. The endpoint exists so the dashboard has a
// single auth surface to call.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if admin, ok := utils.GetAdminFromContext(r.Context()); ok {
		logger.FromRequest(r).Info().Str("admin_id", admin.ID).Msg("admin logged out")
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	admin, ok := utils.GetAdminFromContext(r.Context())
	if !ok {
		respondUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	utils.WriteJSON(w, admin, http.StatusOK)
}
