package messages_dto

import (
	messages_models "diligent-backend/internal/features/messages/models"
)

type CreateMessageRequestDTO struct {
	Content string `json:"content"`
	// ParentID is kept as text so that an unparsable reference is reported
	// after the channel checks, like any other bad parent.
	ParentID *string `json:"parent_id"`
}

type ListMessagesResponseDTO struct {
	Messages []*messages_models.MessageView `json:"messages"`
}

type CreateMessageResponseDTO struct {
	Message *messages_models.MessageView `json:"message"`
}

type DeleteMessageResponseDTO struct {
	Message string `json:"message"`
}
