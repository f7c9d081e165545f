package messages_services

import (
	"log/slog"

	messages_interfaces "diligent-backend/internal/features/messages/interfaces"
)

func NewMessageService(
	messageRepository messages_interfaces.MessageRepository,
	channelAccessResolver messages_interfaces.ChannelAccessResolver,
	log *slog.Logger,
) *MessageService {
	return &MessageService{
		messageRepository:     messageRepository,
		channelAccessResolver: channelAccessResolver,
		log:                   log,
	}
}
