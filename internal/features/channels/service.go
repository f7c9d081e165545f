package channels

import (
	"context"
	"fmt"

	workspaces_services "diligent-backend/internal/features/workspaces/services"
	errors_utils "diligent-backend/internal/util/errors"

	"github.com/google/uuid"
)

var (
	ErrChannelNotFound  = errors_utils.NewNotFound("Channel not found")
	ErrChannelForbidden = errors_utils.NewForbidden("You do not have access to this channel")
)

type ChannelService struct {
	channelStore      ChannelStore
	membershipService *workspaces_services.MembershipService
}

func (s *ChannelService) ListChannels(
	ctx context.Context,
	workspaceID uuid.UUID,
	userID uuid.UUID,
) ([]*Channel, error) {
	err := s.membershipService.RequireMember(
		ctx,
		workspaceID,
		userID,
		workspaces_services.ErrNotWorkspaceMember,
	)
	if err != nil {
		return nil, err
	}

	channels, err := s.channelStore.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channels: %w", err)
	}

	return channels, nil
}

// ResolveAccessibleChannel performs the two-hop check for channel scoped
// requests: the channel must exist and the user must belong to its workspace.
func (s *ChannelService) ResolveAccessibleChannel(
	ctx context.Context,
	channelID uuid.UUID,
	userID uuid.UUID,
) (uuid.UUID, error) {
	workspaceID, err := s.channelStore.GetWorkspaceID(ctx, channelID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to get channel: %w", err)
	}

	if workspaceID == nil {
		return uuid.Nil, ErrChannelNotFound
	}

	err = s.membershipService.RequireMember(ctx, *workspaceID, userID, ErrChannelForbidden)
	if err != nil {
		return uuid.Nil, err
	}

	return *workspaceID, nil
}
