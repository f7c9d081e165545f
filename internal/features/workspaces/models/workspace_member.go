package workspaces_models

import "github.com/google/uuid"

// WorkspaceMember is the membership fact that gates every workspace scoped
// operation.
type WorkspaceMember struct {
	WorkspaceID uuid.UUID `json:"workspaceId" gorm:"column:workspace_id;primaryKey"`
	MemberID    uuid.UUID `json:"memberId"    gorm:"column:member_id;primaryKey"`
}

func (WorkspaceMember) TableName() string {
	return "workspace_members"
}
