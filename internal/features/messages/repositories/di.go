package messages_repositories

import "gorm.io/gorm"

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}
