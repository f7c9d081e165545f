package users_services

import (
	"fmt"
	"time"

	users_interfaces "diligent-backend/internal/features/users/interfaces"
	users_models "diligent-backend/internal/features/users/models"
	errors_utils "diligent-backend/internal/util/errors"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors_utils.NewUnauthenticated("Invalid or expired token")

type TokenClaims struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secretKeyProvider users_interfaces.SecretKeyProvider
	ttl               time.Duration
	now               func() time.Time
}

func (s *TokenService) Issue(userID uuid.UUID, email string) (string, error) {
	secretKey, err := s.secretKeyProvider.GetSecretKey()
	if err != nil {
		return "", fmt.Errorf("failed to get secret key: %w", err)
	}

	issuedAt := s.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		ID:    userID,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	})

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// Verify fails with ErrInvalidToken for any bad signature, algorithm,
// payload or expiry.
func (s *TokenService) Verify(token string) (*TokenClaims, error) {
	secretKey, err := s.secretKeyProvider.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	claims := &TokenClaims{}
	parsedToken, err := jwt.ParseWithClaims(
		token,
		claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !parsedToken.Valid || claims.ID == uuid.Nil || claims.Email == "" ||
		claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (c *TokenClaims) Identity() users_models.Identity {
	return users_models.Identity{ID: c.ID, Email: c.Email}
}
