package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blushrz/salon-admin/internal/app"
	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/service"
	"github.com/blushrz/salon-admin/internal/store"
	"github.com/blushrz/salon-admin/internal/utils"
	"github.com/blushrz/salon-admin/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:         http.StatusUnprocessableEntity,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrInvalidToken:       http.StatusUnauthorized,

	store.ErrNotFound:   http.StatusNotFound,
	store.ErrDuplicate:  http.StatusConflict,
	store.ErrReferenced: http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError maps err to an HTTP status and writes the uniform
// {"message": ...} error body the dashboard client parses.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		utils.WriteJSON(w, models.ErrorResponse{Message: http.StatusText(status)}, status)
		return
	}

	log.Debug().Err(err).Int("status", status).Send()
	utils.WriteJSON(w, models.ErrorResponse{Message: err.Error()}, status)
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Message: message}, http.StatusUnauthorized)
}

func respondBadRequest(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Message: message}, http.StatusBadRequest)
}

// decodeJSON decodes the request body into v. On failure it writes the 400
// response itself and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg(app.MsgInvalidJSON)
		respondBadRequest(w, app.MsgInvalidJSON)
		return false
	}
	return true
}
