package users_controllers

import (
	"net/http"

	users_dto "diligent-backend/internal/features/users/dto"
	users_middleware "diligent-backend/internal/features/users/middleware"
	users_services "diligent-backend/internal/features/users/services"
	errors_utils "diligent-backend/internal/util/errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type UserController struct {
	userService  *users_services.UserService
	tokenService *users_services.TokenService
	loginLimiter *rate.Limiter
}

func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/login", c.Login)
	router.GET("/validate-token", c.ValidateToken)
}

func (c *UserController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/logout", c.Logout)

	userRoutes := router.Group("/users")
	userRoutes.GET("/me", c.GetCurrentUser)
	userRoutes.PATCH("/me/preferences", c.UpdatePreferences)
	userRoutes.PATCH("/me/status", c.UpdateStatus)
}

// Login
// @Summary Sign in with email and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.LoginRequestDTO true "Credentials"
// @Success 200 {object} users_dto.LoginResponseDTO
// @Failure 400 {object} errors_utils.ErrorResponse
// @Failure 401 {object} errors_utils.ErrorResponse
// @Failure 429 {object} errors_utils.ErrorResponse
// @Router /login [post]
func (c *UserController) Login(ctx *gin.Context) {
	if !c.loginLimiter.Allow() {
		errors_utils.Respond(
			ctx,
			http.StatusTooManyRequests,
			"Rate limit exceeded. Please try again later.",
		)
		return
	}

	var request users_dto.LoginRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		errors_utils.Respond(ctx, http.StatusBadRequest, "Email and password are required")
		return
	}

	response, err := c.userService.Authenticate(ctx.Request.Context(), &request)
	if err != nil {
		errors_utils.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ValidateToken
// @Summary Check whether a bearer token is valid
// @Tags users
// @Produce json
// @Success 200 {object} users_dto.TokenValidationResponseDTO
// @Failure 401 {object} errors_utils.ErrorResponse
// @Router /validate-token [get]
func (c *UserController) ValidateToken(ctx *gin.Context) {
	token, ok := users_middleware.ExtractBearerToken(ctx.GetHeader("Authorization"))
	if !ok {
		errors_utils.Respond(ctx, http.StatusUnauthorized, "Invalid header format")
		return
	}

	claims, err := c.tokenService.Verify(token)
	if err != nil {
		errors_utils.Respond(ctx, http.StatusUnauthorized, "Token validation failed")
		return
	}

	ctx.JSON(http.StatusOK, users_dto.TokenValidationResponseDTO{
		Valid: true,
		Decoded: users_dto.DecodedTokenDTO{
			ID:    claims.ID,
			Email: claims.Email,
			Iat:   claims.IssuedAt.Unix(),
			Exp:   claims.ExpiresAt.Unix(),
		},
		Message: "Token is valid",
	})
}

// Logout
// @Summary Sign out
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users_dto.MessageResponseDTO
// @Failure 401 {object} errors_utils.ErrorResponse
// @Router /logout [post]
func (c *UserController) Logout(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		errors_utils.Respond(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	c.userService.Logout(ctx.Request.Context(), user)

	ctx.JSON(http.StatusOK, users_dto.MessageResponseDTO{Message: "Logout successful"})
}

// GetCurrentUser
// @Summary Get the signed in user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users_dto.UserProfileResponseDTO
// @Failure 401 {object} errors_utils.ErrorResponse
// @Failure 404 {object} errors_utils.ErrorResponse
// @Router /users/me [get]
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		errors_utils.Respond(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	profile, err := c.userService.GetProfile(ctx.Request.Context(), user.ID)
	if err != nil {
		errors_utils.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// UpdatePreferences
// @Summary Remember the last opened workspace, channel and message
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body users_dto.UpdatePreferencesRequestDTO true "Preference keys to change"
// @Success 200 {object} users_dto.PreferencesResponseDTO
// @Failure 400 {object} errors_utils.ErrorResponse
// @Failure 401 {object} errors_utils.ErrorResponse
// @Failure 404 {object} errors_utils.ErrorResponse
// @Router /users/me/preferences [patch]
func (c *UserController) UpdatePreferences(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		errors_utils.Respond(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var request users_dto.UpdatePreferencesRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		errors_utils.Respond(ctx, http.StatusBadRequest, "Invalid request format")
		return
	}

	preferences, err := c.userService.UpdatePreferences(ctx.Request.Context(), user.ID, &request)
	if err != nil {
		errors_utils.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users_dto.PreferencesResponseDTO{Preferences: preferences})
}

// UpdateStatus
// @Summary Set presence status
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body users_dto.UpdateStatusRequestDTO true "active or away"
// @Success 200 {object} users_dto.StatusResponseDTO
// @Failure 400 {object} errors_utils.ErrorResponse
// @Failure 401 {object} errors_utils.ErrorResponse
// @Failure 404 {object} errors_utils.ErrorResponse
// @Router /users/me/status [patch]
func (c *UserController) UpdateStatus(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		errors_utils.Respond(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var request users_dto.UpdateStatusRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		errors_utils.RespondWithError(ctx, users_services.ErrInvalidStatus)
		return
	}

	status, err := c.userService.UpdateStatus(ctx.Request.Context(), user.ID, request.Status)
	if err != nil {
		errors_utils.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users_dto.StatusResponseDTO{Status: string(status)})
}
