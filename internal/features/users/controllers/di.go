package users_controllers

import (
	users_services "diligent-backend/internal/features/users/services"

	"golang.org/x/time/rate"
)

func NewUserController(
	userService *users_services.UserService,
	tokenService *users_services.TokenService,
	loginRateLimit float64,
	loginRateBurst int,
) *UserController {
	return &UserController{
		userService:  userService,
		tokenService: tokenService,
		loginLimiter: rate.NewLimiter(rate.Limit(loginRateLimit), loginRateBurst),
	}
}
