package workspaces_services

import (
	"context"
	"fmt"

	"diligent-backend/internal/features/audit_logs"
	workspaces_interfaces "diligent-backend/internal/features/workspaces/interfaces"
	workspaces_models "diligent-backend/internal/features/workspaces/models"
	errors_utils "diligent-backend/internal/util/errors"

	"github.com/google/uuid"
)

var ErrNotWorkspaceMember = errors_utils.NewForbidden("You are not a member of this workspace")

type WorkspaceService struct {
	workspaceRepository workspaces_interfaces.WorkspaceRepository
	membershipService   *MembershipService
	auditLogReader      workspaces_interfaces.AuditLogReader
}

func (s *WorkspaceService) GetUserWorkspaces(
	ctx context.Context,
	userID uuid.UUID,
) ([]*workspaces_models.Workspace, error) {
	workspaces, err := s.workspaceRepository.GetUserWorkspaces(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspaces: %w", err)
	}

	return workspaces, nil
}

func (s *WorkspaceService) GetWorkspaceAuditLogs(
	ctx context.Context,
	workspaceID uuid.UUID,
	userID uuid.UUID,
	request *audit_logs.GetAuditLogsRequest,
) (*audit_logs.GetAuditLogsResponse, error) {
	err := s.membershipService.RequireMember(ctx, workspaceID, userID, ErrNotWorkspaceMember)
	if err != nil {
		return nil, err
	}

	return s.auditLogReader.GetWorkspaceAuditLogs(ctx, workspaceID, request)
}
