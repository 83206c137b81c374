package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rizkyfm/job-board-api/internal/config"
	"github.com/rizkyfm/job-board-api/internal/model"
)

type TokenServiceInterface interface {
	Generate(id uuid.UUID, role model.Role) (string, error)
	Verify(token string) (model.Principal, error)
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService() *TokenService {
	cfg := config.LoadJWTConfig()
	return &TokenService{secret: []byte(cfg.Secret), expiry: cfg.Expiry}
}

func (s *TokenService) Generate(id uuid.UUID, role model.Role) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses a bearer token and returns the principal it encodes. Any
// failure (bad signature, expiry, malformed subject or role) is reported as a
// single opaque error; callers map it to 401.
func (s *TokenService) Verify(raw string) (model.Principal, error) {
	token, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return model.Anonymous(), err
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return model.Anonymous(), errors.New("invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Anonymous(), fmt.Errorf("invalid subject: %w", err)
	}

	role := model.Role(claims.Role)
	if role != model.RoleCandidate && role != model.RoleCompany {
		return model.Anonymous(), errors.New("invalid role claim")
	}

	return model.Principal{Role: role, ID: id}, nil
}
