package users_middleware

import (
	"net/http"
	"strings"

	users_models "diligent-backend/internal/features/users/models"
	users_services "diligent-backend/internal/features/users/services"
	errors_utils "diligent-backend/internal/util/errors"

	"github.com/gin-gonic/gin"
)

const identityContextKey = "identity"

// AuthMiddleware verifies the bearer token and stores the caller identity.
// The user row is not loaded; handlers that need it fetch it themselves.
func AuthMiddleware(tokenService *users_services.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			errors_utils.Respond(ctx, http.StatusUnauthorized, "Access token is missing")
			return
		}

		token, ok := ExtractBearerToken(authHeader)
		if !ok {
			errors_utils.Respond(ctx, http.StatusUnauthorized, users_services.ErrInvalidToken.Message)
			return
		}

		claims, err := tokenService.Verify(token)
		if err != nil {
			errors_utils.RespondWithError(ctx, err)
			return
		}

		ctx.Set(identityContextKey, claims.Identity())
		ctx.Next()
	}
}

func ExtractBearerToken(authHeader string) (string, bool) {
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func GetUserFromContext(ctx *gin.Context) (users_models.Identity, bool) {
	value, exists := ctx.Get(identityContextKey)
	if !exists {
		return users_models.Identity{}, false
	}

	identity, ok := value.(users_models.Identity)
	return identity, ok
}

