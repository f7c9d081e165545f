package channels

import (
	workspaces_services "diligent-backend/internal/features/workspaces/services"

	"gorm.io/gorm"
)

func NewChannelRepository(db *gorm.DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

func NewChannelService(
	channelStore ChannelStore,
	membershipService *workspaces_services.MembershipService,
) *ChannelService {
	return &ChannelService{
		channelStore:      channelStore,
		membershipService: membershipService,
	}
}

func NewChannelController(channelService *ChannelService) *ChannelController {
	return &ChannelController{channelService: channelService}
}
