package channels

import (
	"context"

	"diligent-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChannelRepository struct {
	db *gorm.DB
}

func (r *ChannelRepository) Create(ctx context.Context, channel *Channel) error {
	if channel.ID == uuid.Nil {
		channel.ID = uuid.New()
	}

	if channel.ChannelData == nil {
		channel.ChannelData = datatypes.JSONMap{}
	}

	return r.db.WithContext(ctx).Create(channel).Error
}

func (r *ChannelRepository) ListByWorkspace(
	ctx context.Context,
	workspaceID uuid.UUID,
) ([]*Channel, error) {
	channels := make([]*Channel, 0)

	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("name ASC, id ASC").
		Find(&channels).Error

	return channels, err
}

func (r *ChannelRepository) GetWorkspaceID(
	ctx context.Context,
	channelID uuid.UUID,
) (*uuid.UUID, error) {
	var channel Channel

	err := r.db.WithContext(ctx).
		Select("workspace_id").
		Where("id = ?", channelID).
		First(&channel).Error
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}

		return nil, err
	}

	return &channel.WorkspaceID, nil
}
