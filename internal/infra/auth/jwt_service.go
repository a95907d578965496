// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"goveggie/config"
	"goveggie/internal/domain/entity"
	"goveggie/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing tokens.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.Auth.JWTSecret,
		ttl:    cfg.Auth.TokenTTL,
	}, nil
}

// GenerateToken creates a new long-lived access token for a given user.
// Mobile sessions stay valid until the TTL elapses; there is no refresh flow.
func (s *jwtService) GenerateToken(userID int64, role entity.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10),
		"uid":  userID,
		"role": role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	claims := &service.Claims{Role: entity.RoleUser}

	switch uid := mapClaims["uid"].(type) {
	case float64:
		claims.UserID = int64(uid)
	case string:
		parsed, err := strconv.ParseInt(uid, 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid uid claim")
		}
		claims.UserID = parsed
	default:
		// Tokens minted before the uid claim carried only sub.
		sub, err := mapClaims.GetSubject()
		if err != nil {
			return nil, errors.Wrap(err, "missing subject claim")
		}
		parsed, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid subject claim")
		}
		claims.UserID = parsed
	}

	if role, ok := mapClaims["role"].(string); ok && entity.Role(role).IsValid() {
		claims.Role = entity.Role(role)
	}

	return claims, nil
}
