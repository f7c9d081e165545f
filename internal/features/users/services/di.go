package users_services

import (
	"log/slog"
	"time"

	users_interfaces "diligent-backend/internal/features/users/interfaces"
)

func NewTokenService(
	secretKeyProvider users_interfaces.SecretKeyProvider,
	ttl time.Duration,
) *TokenService {
	return &TokenService{
		secretKeyProvider: secretKeyProvider,
		ttl:               ttl,
		now:               time.Now,
	}
}

func NewUserService(
	userRepository users_interfaces.UserRepository,
	tokenService *TokenService,
	log *slog.Logger,
) *UserService {
	return &UserService{
		userRepository: userRepository,
		tokenService:   tokenService,
		log:            log,
	}
}
