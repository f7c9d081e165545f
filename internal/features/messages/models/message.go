package messages_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Message struct {
	ID          uuid.UUID         `json:"id"           gorm:"column:id;primaryKey"`
	ChannelID   uuid.UUID         `json:"channel_id"   gorm:"column:channel_id"`
	SenderID    uuid.UUID         `json:"sender_id"    gorm:"column:sender_id"`
	ParentID    *uuid.UUID        `json:"parent_id"    gorm:"column:parent_id"`
	Content     string            `json:"content"      gorm:"column:content"`
	SentAt      time.Time         `json:"sent_at"      gorm:"column:sent_at"`
	IsDeleted   bool              `json:"is_deleted"   gorm:"column:is_deleted"`
	MessageData datatypes.JSONMap `json:"message_data" gorm:"column:message_data"`
}

// ParentSameChannelConstraint ties parent_id to a message of the same channel.
const ParentSameChannelConstraint = "messages_parent_same_channel_fkey"

func (Message) TableName() string {
	return "messages"
}

func (m *Message) IsReply() bool {
	return m.ParentID != nil
}

// MessageView is a message joined with its sender's identity.
type MessageView struct {
	Message
	SenderEmail string `json:"sender_email" gorm:"column:sender_email"`
	SenderName  string `json:"sender_name"  gorm:"column:sender_name"`
}
