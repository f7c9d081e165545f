package mail

import (
	"net/http"

	errors_utils "diligent-backend/internal/util/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MailController struct {
	mailService *MailService
}

func (c *MailController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/mailbox", c.GetMailboxes)
	router.GET("/mail", c.GetMail)
	router.GET("/mail/:id", c.GetMailByID)
	router.PUT("/mail/:id", c.MoveMail)
}

// GetMailboxes
// @Summary List mailbox names
// @Tags mail
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Failure 401 {object} errors_utils.ErrorResponse
// @Router /mailbox [get]
func (c *MailController) GetMailboxes(ctx *gin.Context) {
	names, err := c.mailService.ListMailboxNames(ctx.Request.Context())
	if err != nil {
		errors_utils.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, names)
}

// GetMail
// @Summary List mail in a mailbox, newest first
// @Tags mail
// @Produce json
// @Security BearerAuth
// @Param mailbox query string true "Mailbox name"
// @Success 200 {array} mail.MailSummaryDTO
// @Failure 400 {object} errors_utils.ErrorResponse
// @Failure 401 {object} errors_utils.ErrorResponse
// @Failure 404 {object} errors_utils.ErrorResponse
// @Router /mail [get]
func (c *MailController) GetMail(ctx *gin.Context) {
	summaries, err := c.mailService.ListMail(ctx.Request.Context(), ctx.Query("mailbox"))
	if err != nil {
		errors_utils.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summaries)
}

// GetMailByID
// @Summary Get a mail with its content
// @Tags mail
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mail ID"
// @Success 200 {object} mail.MailDTO
// @Failure 400 {object} errors_utils.ErrorResponse
// @Failure 401 {object} errors_utils.ErrorResponse
// @Failure 404 {object} errors_utils.ErrorResponse
// @Router /mail/{id} [get]
func (c *MailController) GetMailByID(ctx *gin.Context) {
	mailID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errors_utils.Respond(ctx, http.StatusBadRequest, "Invalid mail ID")
		return
	}

	mail, err := c.mailService.GetMail(ctx.Request.Context(), mailID)
	if err != nil {
		errors_utils.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mail)
}

// MoveMail
// @Summary Move a mail to another mailbox
// @Tags mail
// @Security BearerAuth
// @Param id path string true "Mail ID"
// @Param mailbox query string true "Target mailbox name"
// @Success 204
// @Failure 400 {object} errors_utils.ErrorResponse
// @Failure 401 {object} errors_utils.ErrorResponse
// @Failure 404 {object} errors_utils.ErrorResponse
// @Failure 409 {object} errors_utils.ErrorResponse
// @Router /mail/{id} [put]
func (c *MailController) MoveMail(ctx *gin.Context) {
	mailID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errors_utils.Respond(ctx, http.StatusBadRequest, "Invalid mail ID")
		return
	}

	if err := c.mailService.MoveMail(ctx.Request.Context(), mailID, ctx.Query("mailbox")); err != nil {
		errors_utils.RespondWithError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
