package workspaces_controllers

import (
	"net/http"

	"diligent-backend/internal/features/audit_logs"
	users_middleware "diligent-backend/internal/features/users/middleware"
	workspaces_dto "diligent-backend/internal/features/workspaces/dto"
	workspaces_services "diligent-backend/internal/features/workspaces/services"
	errors_utils "diligent-backend/internal/util/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkspaceController struct {
	workspaceService *workspaces_services.WorkspaceService
}

func (c *WorkspaceController) RegisterRoutes(router *gin.RouterGroup) {
	workspaceRoutes := router.Group("/workspaces")

	workspaceRoutes.GET("", c.GetWorkspaces)
	workspaceRoutes.GET("/:id/audit-logs", c.GetWorkspaceAuditLogs)
}

// GetWorkspaces
// @Summary List user's workspaces
// @Description Get list of workspaces the user is a member of
// @Tags workspaces
// @Produce json
// @Security BearerAuth
// @Success 200 {object} workspaces_dto.ListWorkspacesResponseDTO
// @Failure 401 {object} errors_utils.ErrorResponse
// @Router /workspaces [get]
func (c *WorkspaceController) GetWorkspaces(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		errors_utils.Respond(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	workspaces, err := c.workspaceService.GetUserWorkspaces(ctx.Request.Context(), user.ID)
	if err != nil {
		errors_utils.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, workspaces_dto.ListWorkspacesResponseDTO{Workspaces: workspaces})
}

// GetWorkspaceAuditLogs
// @Summary Get workspace audit logs
// @Description Retrieve audit logs for a specific workspace (member access required)
// @Tags workspaces
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Param limit query int false "Limit number of results" default(100)
// @Param offset query int false "Offset for pagination" default(0)
// @Param beforeDate query string false "Filter logs created before this date (RFC3339 format)" format(date-time)
// @Success 200 {object} audit_logs.GetAuditLogsResponse
// @Failure 400 {object} errors_utils.ErrorResponse
// @Failure 401 {object} errors_utils.ErrorResponse
// @Failure 403 {object} errors_utils.ErrorResponse
// @Router /workspaces/{id}/audit-logs [get]
func (c *WorkspaceController) GetWorkspaceAuditLogs(ctx *gin.Context) {
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

	request := &audit_logs.GetAuditLogsRequest{}
	if err := ctx.ShouldBindQuery(request); err != nil {
		errors_utils.Respond(ctx, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	response, err := c.workspaceService.GetWorkspaceAuditLogs(
		ctx.Request.Context(),
		workspaceID,
		user.ID,
		request,
	)
	if err != nil {
		errors_utils.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
