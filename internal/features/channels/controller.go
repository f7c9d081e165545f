package channels

import (
	"net/http"

	users_middleware "diligent-backend/internal/features/users/middleware"
	errors_utils "diligent-backend/internal/util/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChannelController struct {
	channelService *ChannelService
}

func (c *ChannelController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/workspaces/:id/channels", c.GetChannels)
}

// GetChannels
// @Summary List channels of a workspace
// @Description Channels ordered by name; the caller must be a workspace member
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Success 200 {object} channels.ListChannelsResponseDTO
// @Failure 400 {object} errors_utils.ErrorResponse
// @Failure 401 {object} errors_utils.ErrorResponse
// @Failure 403 {object} errors_utils.ErrorResponse
// @Router /workspaces/{id}/channels [get]
func (c *ChannelController) GetChannels(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		errors_utils.Respond(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errors_utils.Respond(ctx, http.StatusBadRequest, "Invalid workspace ID")
		return
	}

	channels, err := c.channelService.ListChannels(ctx.Request.Context(), workspaceID, user.ID)
	if err != nil {
		errors_utils.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ListChannelsResponseDTO{Channels: channels})
}
