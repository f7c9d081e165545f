package messages_controllers

import (
	"net/http"

	messages_dto "diligent-backend/internal/features/messages/dto"
	messages_services "diligent-backend/internal/features/messages/services"
	users_middleware "diligent-backend/internal/features/users/middleware"
	errors_utils "diligent-backend/internal/util/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MessageController struct {
	messageService *messages_services.MessageService
}

func (c *MessageController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/channels/:id/messages", c.GetMessages)
	router.POST("/channels/:id/messages", c.CreateMessage)
	router.DELETE("/messages/:id", c.DeleteMessage)
}

// GetMessages
// @Summary List messages of a channel
// @Description Live messages in chronological order with sender email and name
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Channel ID"
// @Success 200 {object} messages_dto.ListMessagesResponseDTO
// @Failure 400 {object} errors_utils.ErrorResponse
// @Failure 401 {object} errors_utils.ErrorResponse
// @Failure 403 {object} errors_utils.ErrorResponse
// @Failure 404 {object} errors_utils.ErrorResponse
// @Router /channels/{id}/messages [get]
func (c *MessageController) GetMessages(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		errors_utils.Respond(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	channelID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errors_utils.Respond(ctx, http.StatusBadRequest, "Invalid channel ID")
		return
	}

	messages, err := c.messageService.ListMessages(ctx.Request.Context(), channelID, user.ID)
	if err != nil {
		errors_utils.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, messages_dto.ListMessagesResponseDTO{Messages: messages})
}

// CreateMessage
// @Summary Post a message or a reply to a channel
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Channel ID"
// @Param request body messages_dto.CreateMessageRequestDTO true "Message"
// @Success 201 {object} messages_dto.CreateMessageResponseDTO
// @Failure 400 {object} errors_utils.ErrorResponse
// @Failure 401 {object} errors_utils.ErrorResponse
// @Failure 403 {object} errors_utils.ErrorResponse
// @Failure 404 {object} errors_utils.ErrorResponse
// @Router /channels/{id}/messages [post]
func (c *MessageController) CreateMessage(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		errors_utils.Respond(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	channelID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errors_utils.Respond(ctx, http.StatusBadRequest, "Invalid channel ID")
		return
	}

	var request messages_dto.CreateMessageRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		errors_utils.Respond(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	message, err := c.messageService.CreateMessage(ctx.Request.Context(), channelID, user.ID, &request)
	if err != nil {
		errors_utils.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, messages_dto.CreateMessageResponseDTO{Message: message})
}

// DeleteMessage
// @Summary Soft delete a message
// @Description Only the sender may delete; deleted messages disappear from listings
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} messages_dto.DeleteMessageResponseDTO
// @Failure 400 {object} errors_utils.ErrorResponse
// @Failure 401 {object} errors_utils.ErrorResponse
// @Failure 403 {object} errors_utils.ErrorResponse
// @Failure 404 {object} errors_utils.ErrorResponse
// @Router /messages/{id} [delete]
func (c *MessageController) DeleteMessage(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		errors_utils.Respond(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	messageID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errors_utils.Respond(ctx, http.StatusBadRequest, "Invalid message ID")
		return
	}

	if err := c.messageService.DeleteMessage(ctx.Request.Context(), messageID, user.ID); err != nil {
		errors_utils.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, messages_dto.DeleteMessageResponseDTO{Message: "Message deleted"})
}
