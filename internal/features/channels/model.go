package channels

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Channel struct {
	ID          uuid.UUID         `json:"id"           gorm:"column:id"`
	WorkspaceID uuid.UUID         `json:"-"            gorm:"column:workspace_id"`
	Name        string            `json:"name"         gorm:"column:name"`
	ChannelData datatypes.JSONMap `json:"channel_data" gorm:"column:channel_data"`
}

func (Channel) TableName() string {
	return "channels"
}
