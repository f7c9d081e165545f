package messages_controllers

import messages_services "diligent-backend/internal/features/messages/services"

func NewMessageController(messageService *messages_services.MessageService) *MessageController {
	return &MessageController{messageService: messageService}
}
