package workspaces_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Workspace struct {
	ID            uuid.UUID         `json:"id"             gorm:"column:id"`
	Name          string            `json:"name"           gorm:"column:name"`
	WorkspaceData datatypes.JSONMap `json:"workspace_data" gorm:"column:workspace_data"`
}

func (Workspace) TableName() string {
	return "workspaces"
}
