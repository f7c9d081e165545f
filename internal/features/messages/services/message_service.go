package messages_services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	messages_dto "diligent-backend/internal/features/messages/dto"
	messages_interfaces "diligent-backend/internal/features/messages/interfaces"
	messages_models "diligent-backend/internal/features/messages/models"
	"diligent-backend/internal/storage"
	errors_utils "diligent-backend/internal/util/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var (
	ErrEmptyContent       = errors_utils.NewValidation("Message content cannot be empty")
	ErrParentNotInChannel = errors_utils.NewValidation("Parent message not found in this channel")
	ErrMessageNotFound    = errors_utils.NewNotFound("Message not found")
	ErrNotMessageSender   = errors_utils.NewForbidden("Only the sender can delete this message")
)

type MessageService struct {
	messageRepository     messages_interfaces.MessageRepository
	channelAccessResolver messages_interfaces.ChannelAccessResolver
	auditLogWriter        messages_interfaces.AuditLogWriter
	log                   *slog.Logger
}

func (s *MessageService) SetAuditLogWriter(writer messages_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *MessageService) ListMessages(
	ctx context.Context,
	channelID uuid.UUID,
	userID uuid.UUID,
) ([]*messages_models.MessageView, error) {
	if _, err := s.channelAccessResolver.ResolveAccessibleChannel(ctx, channelID, userID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepository.ListByChannel(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	return messages, nil
}

// CreateMessage validates content, then channel access, then the parent
// reference, and only then writes.
func (s *MessageService) CreateMessage(
	ctx context.Context,
	channelID uuid.UUID,
	senderID uuid.UUID,
	request *messages_dto.CreateMessageRequestDTO,
) (*messages_models.MessageView, error) {
	if strings.TrimSpace(request.Content) == "" {
		return nil, ErrEmptyContent
	}

	if _, err := s.channelAccessResolver.ResolveAccessibleChannel(ctx, channelID, senderID); err != nil {
		return nil, err
	}

	parentID, err := s.resolveParent(ctx, channelID, request.ParentID)
	if err != nil {
		return nil, err
	}

	message, err := s.messageRepository.Create(ctx, &messages_models.Message{
		ChannelID: channelID,
		SenderID:  senderID,
		ParentID:  parentID,
		Content:   request.Content,
	})
	if err != nil {
		// the composite foreign key is the last word on a parent from
		// another channel
		if parentID != nil &&
			storage.IsForeignKeyViolationOf(err, messages_models.ParentSameChannelConstraint) {
			return nil, ErrParentNotInChannel
		}

		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	s.log.Debug("Message created", "messageId", message.ID, "channelId", channelID, "reply", message.IsReply())
	return message, nil
}

func (s *MessageService) DeleteMessage(
	ctx context.Context,
	messageID uuid.UUID,
	userID uuid.UUID,
) error {
	message, err := s.messageRepository.GetByID(ctx, messageID)
	if err != nil {
		return fmt.Errorf("failed to get message: %w", err)
	}

	if message == nil {
		return ErrMessageNotFound
	}

	workspaceID, err := s.channelAccessResolver.ResolveAccessibleChannel(ctx, message.ChannelID, userID)
	if err != nil {
		return err
	}

	if message.IsDeleted {
		return ErrMessageNotFound
	}

	if message.SenderID != userID {
		return ErrNotMessageSender
	}

	deleted, err := s.messageRepository.SoftDelete(ctx, messageID)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	if !deleted {
		return ErrMessageNotFound
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			ctx,
			fmt.Sprintf("Message %s deleted", messageID),
			lo.ToPtr(userID),
			lo.ToPtr(workspaceID),
		)
	}

	return nil
}

func (s *MessageService) resolveParent(
	ctx context.Context,
	channelID uuid.UUID,
	rawParentID *string,
) (*uuid.UUID, error) {
	if lo.FromPtr(rawParentID) == "" {
		return nil, nil
	}

	parentID, err := uuid.Parse(*rawParentID)
	if err != nil {
		return nil, ErrParentNotInChannel
	}

	exists, err := s.messageRepository.ParentExistsInChannel(ctx, parentID, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to check parent message: %w", err)
	}

	if !exists {
		return nil, ErrParentNotInChannel
	}

	return &parentID, nil
}
