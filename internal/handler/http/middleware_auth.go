package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/blushrz/salon-admin/internal/app"
	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/utils"
)

// auth enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// via the auth service, and on success stores the authenticated admin in the
// request context under [utils.AdminCtxKey] before delegating to the next
// handler. Requests with a missing, malformed, or invalid token are rejected
// with 401 and the uniform error body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			respondUnauthorized(w, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			respondUnauthorized(w, err.Error())
			return
		}

		admin, err := h.services.Auth.VerifyAccessToken(tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("access token rejected")
			respondUnauthorized(w, app.MsgInvalidToken)
			return
		}

		// Store the admin in the context so downstream handlers can retrieve
		// the caller's identity without re-parsing the token.
		ctx := context.WithValue(r.Context(), utils.AdminCtxKey, admin)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token from a raw
// "Authorization" header value of the form "<scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
