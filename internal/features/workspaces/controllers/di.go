package workspaces_controllers

import (
	workspaces_services "diligent-backend/internal/features/workspaces/services"
)

func NewWorkspaceController(
	workspaceService *workspaces_services.WorkspaceService,
) *WorkspaceController {
	return &WorkspaceController{workspaceService: workspaceService}
}
