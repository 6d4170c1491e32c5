// Package service implements the admin API business logic: authentication
// with JWT token pairs, CRUD over the repositories with push-event
// publication, analytics aggregation, and notification delivery.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blushrz/salon-admin/internal/config"
	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/store"
	"github.com/blushrz/salon-admin/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Token kinds embedded in the claims so an access token can never be used
// where a refresh token is expected, and vice versa.
const (
	tokenKindAccess  = "access"
	tokenKindRefresh = "refresh"
)

// TokenPair is an access/refresh token couple minted at login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// adminClaims carries the admin identity inside both tokens, so the
// middleware and the hub can authorize without a database round-trip.
type adminClaims struct {
	jwt.RegisteredClaims

	Kind        string   `json:"kind"`
	Name        string   `json:"name,omitempty"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
}

// AuthService authenticates dashboard operators and manages token pairs.
type AuthService struct {
	admins store.AdminRepository
	cfg    config.Auth
	logger *logger.Logger
}

// NewAuthService builds the authentication service.
func NewAuthService(admins store.AdminRepository, cfg config.Auth, log *logger.Logger) *AuthService {
	return &AuthService{admins: admins, cfg: cfg, logger: log}
}

// Login verifies credentials and mints a token pair. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.Admin, TokenPair, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Admin{}, TokenPair{}, ErrInvalidCredentials
		}
		return models.Admin{}, TokenPair{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return models.Admin{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.issuePair(admin)
	if err != nil {
		return models.Admin{}, TokenPair{}, err
	}

	now := time.Now().UTC()
	if err = s.admins.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		s.logger.Warn().Err(err).Str("admin", admin.ID).Msg("recording last login failed")
	}
	admin.LastLogin = now

	s.logger.Info().Str("email", admin.Email).Msg("admin authenticated")

	return admin, pair, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. The admin record
// is re-read so revoked accounts and changed permissions take effect.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.parse(refreshToken, tokenKindRefresh)
	if err != nil {
		return TokenPair{}, err
	}

	admin, err := s.admins.Get(ctx, claims.Subject)
	if err != nil {
		return TokenPair{}, fmt.Errorf("%w: unknown subject", ErrInvalidToken)
	}

	return s.issuePair(admin)
}

// VerifyAccessToken validates an access token and reconstructs the admin
// identity from its claims.
func (s *AuthService) VerifyAccessToken(accessToken string) (models.Admin, error) {
	claims, err := s.parse(accessToken, tokenKindAccess)
	if err != nil {
		return models.Admin{}, err
	}

	return models.Admin{
		ID:          claims.Subject,
		Name:        claims.Name,
		Email:       claims.Email,
		Role:        claims.Role,
		Permissions: claims.Permissions,
	}, nil
}

func (s *AuthService) issuePair(admin models.Admin) (TokenPair, error) {
	access, err := s.sign(admin, tokenKindAccess, s.cfg.AccessTokenTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := s.sign(admin, tokenKindRefresh, s.cfg.RefreshTokenTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) sign(admin models.Admin, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := adminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			Issuer:    s.cfg.TokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Kind:        kind,
		Name:        admin.Name,
		Email:       admin.Email,
		Role:        admin.Role,
		Permissions: admin.Permissions,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.TokenSignKey))
}

func (s *AuthService) parse(tokenString, wantKind string) (*adminClaims, error) {
	claims := &adminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.TokenSignKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Kind != wantKind {
		return nil, fmt.Errorf("%w: wrong token kind", ErrInvalidToken)
	}

	return claims, nil
}
