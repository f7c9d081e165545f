package errors_utils

import (
	"errors"
	"net/http"

	"diligent-backend/internal/util/logger"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func Respond(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Code: status, Message: message})
}

// RespondWithError writes the single {code, message} error body. Errors
// without a kind are logged and reported as a bare 500.
func RespondWithError(ctx *gin.Context, err error) {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		Respond(ctx, HTTPStatus(appErr.Kind), appErr.Message)
		return
	}

	logger.GetLogger().Error(
		"Unhandled request error",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)

	Respond(ctx, http.StatusInternalServerError, "Internal server error")
}
