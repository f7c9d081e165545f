package workspaces_dto

import workspaces_models "diligent-backend/internal/features/workspaces/models"

type ListWorkspacesResponseDTO struct {
	Workspaces []*workspaces_models.Workspace `json:"workspaces"`
}
