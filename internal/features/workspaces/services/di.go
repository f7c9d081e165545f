package workspaces_services

import (
	workspaces_interfaces "diligent-backend/internal/features/workspaces/interfaces"
)

func NewMembershipService(
	membershipRepository workspaces_interfaces.MembershipRepository,
) *MembershipService {
	return &MembershipService{membershipRepository: membershipRepository}
}

func NewWorkspaceService(
	workspaceRepository workspaces_interfaces.WorkspaceRepository,
	membershipService *MembershipService,
	auditLogReader workspaces_interfaces.AuditLogReader,
) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepository: workspaceRepository,
		membershipService:   membershipService,
		auditLogReader:      auditLogReader,
	}
}
