package system_healthcheck

import (
	"net/http"

	errors_utils "diligent-backend/internal/util/errors"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/system/health", c.CheckHealth)
}

// CheckHealth
// @Summary Check that the API can reach its database
// @Tags system
// @Produce json
// @Success 200 {object} system_healthcheck.HealthcheckResponse
// @Failure 503 {object} errors_utils.ErrorResponse
// @Router /system/health [get]
func (c *HealthcheckController) CheckHealth(ctx *gin.Context) {
	if err := c.healthcheckService.IsHealthy(ctx.Request.Context()); err != nil {
		errors_utils.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, HealthcheckResponse{Status: "ok"})
}
