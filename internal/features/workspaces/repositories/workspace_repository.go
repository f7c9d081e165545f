package workspaces_repositories

import (
	"context"

	workspaces_models "diligent-backend/internal/features/workspaces/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WorkspaceRepository struct {
	db *gorm.DB
}

func (r *WorkspaceRepository) CreateWorkspace(
	ctx context.Context,
	workspace *workspaces_models.Workspace,
) error {
	if workspace.ID == uuid.Nil {
		workspace.ID = uuid.New()
	}

	if workspace.WorkspaceData == nil {
		workspace.WorkspaceData = datatypes.JSONMap{}
	}

	return r.db.WithContext(ctx).Create(workspace).Error
}

func (r *WorkspaceRepository) GetUserWorkspaces(
	ctx context.Context,
	userID uuid.UUID,
) ([]*workspaces_models.Workspace, error) {
	workspaces := make([]*workspaces_models.Workspace, 0)

	err := r.db.WithContext(ctx).
		Table("workspaces w").
		Select("w.id, w.name, w.workspace_data").
		Joins("JOIN workspace_members wm ON w.id = wm.workspace_id").
		Where("wm.member_id = ?", userID).
		Order("w.name ASC, w.id ASC").
		Scan(&workspaces).Error

	return workspaces, err
}
