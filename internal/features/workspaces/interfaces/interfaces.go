//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=../mocks/mock_interfaces.go -package=workspaces_mocks

package workspaces_interfaces

import (
	"context"

	"diligent-backend/internal/features/audit_logs"
	workspaces_models "diligent-backend/internal/features/workspaces/models"

	"github.com/google/uuid"
)

type WorkspaceRepository interface {
	GetUserWorkspaces(ctx context.Context, userID uuid.UUID) ([]*workspaces_models.Workspace, error)
}

type MembershipRepository interface {
	IsMember(ctx context.Context, workspaceID, userID uuid.UUID) (bool, error)
}

type AuditLogReader interface {
	GetWorkspaceAuditLogs(
		ctx context.Context,
		workspaceID uuid.UUID,
		request *audit_logs.GetAuditLogsRequest,
	) (*audit_logs.GetAuditLogsResponse, error)
}
