package workspaces_services

import (
	"context"
	"fmt"

	workspaces_interfaces "diligent-backend/internal/features/workspaces/interfaces"

	"github.com/google/uuid"
)

// MembershipService answers the only authorization question in the system:
// does this user belong to this workspace.
type MembershipService struct {
	membershipRepository workspaces_interfaces.MembershipRepository
}

func (s *MembershipService) IsMember(ctx context.Context, workspaceID, userID uuid.UUID) (bool, error) {
	isMember, err := s.membershipRepository.IsMember(ctx, workspaceID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check workspace membership: %w", err)
	}

	return isMember, nil
}

// RequireMember returns deniedErr when the user is not a member, so callers
// can pick the wording of the 403.
func (s *MembershipService) RequireMember(
	ctx context.Context,
	workspaceID, userID uuid.UUID,
	deniedErr error,
) error {
	isMember, err := s.IsMember(ctx, workspaceID, userID)
	if err != nil {
		return err
	}

	if !isMember {
		return deniedErr
	}

	return nil
}
