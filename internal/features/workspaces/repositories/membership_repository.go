package workspaces_repositories

import (
	"context"

	workspaces_models "diligent-backend/internal/features/workspaces/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepository struct {
	db *gorm.DB
}

func (r *MembershipRepository) IsMember(
	ctx context.Context,
	workspaceID, userID uuid.UUID,
) (bool, error) {
	var exists bool

	err := r.db.WithContext(ctx).Raw(
		`SELECT EXISTS (
		     SELECT 1 FROM workspace_members WHERE workspace_id = ? AND member_id = ?
		 )`,
		workspaceID,
		userID,
	).Scan(&exists).Error

	return exists, err
}

func (r *MembershipRepository) AddMember(ctx context.Context, workspaceID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&workspaces_models.WorkspaceMember{WorkspaceID: workspaceID, MemberID: userID}).
		Error
}
