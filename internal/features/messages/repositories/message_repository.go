package messages_repositories

import (
	"context"
	"fmt"

	messages_models "diligent-backend/internal/features/messages/models"
	"diligent-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The sender name falls back to the local part of the email when the
// profile carries no name.
const messageViewColumns = `m.id, m.channel_id, m.sender_id, m.parent_id, m.content,
	m.sent_at, m.is_deleted, m.message_data,
	mb.email AS sender_email,
	COALESCE(NULLIF(mb.user_data->>'name', ''), split_part(mb.email, '@', 1)) AS sender_name`

type MessageRepository struct {
	db *gorm.DB
}

func (r *MessageRepository) ListByChannel(
	ctx context.Context,
	channelID uuid.UUID,
) ([]*messages_models.MessageView, error) {
	messages := make([]*messages_models.MessageView, 0)

	err := r.db.WithContext(ctx).
		Table("messages m").
		Select(messageViewColumns).
		Joins("JOIN members mb ON mb.id = m.sender_id").
		Where("m.channel_id = ? AND m.is_deleted = false", channelID).
		Order("m.sent_at ASC, m.id ASC").
		Scan(&messages).Error

	return messages, err
}

func (r *MessageRepository) GetByID(
	ctx context.Context,
	messageID uuid.UUID,
) (*messages_models.Message, error) {
	var message messages_models.Message

	err := r.db.WithContext(ctx).Where("id = ?", messageID).First(&message).Error
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}

		return nil, err
	}

	return &message, nil
}

func (r *MessageRepository) ParentExistsInChannel(
	ctx context.Context,
	parentID uuid.UUID,
	channelID uuid.UUID,
) (bool, error) {
	var exists bool

	err := r.db.WithContext(ctx).
		Raw(
			`SELECT EXISTS (
				SELECT 1 FROM messages
				WHERE id = ? AND channel_id = ? AND is_deleted = false
			)`,
			parentID,
			channelID,
		).
		Scan(&exists).Error

	return exists, err
}

// Create inserts the message stamped with the database clock and returns it
// joined with the sender in the same statement.
func (r *MessageRepository) Create(
	ctx context.Context,
	message *messages_models.Message,
) (*messages_models.MessageView, error) {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}

	var view messages_models.MessageView

	result := r.db.WithContext(ctx).
		Raw(
			`WITH m AS (
				INSERT INTO messages (id, channel_id, sender_id, parent_id, content, sent_at)
				VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
				RETURNING *
			)
			SELECT `+messageViewColumns+`
			FROM m
			JOIN members mb ON mb.id = m.sender_id`,
			message.ID,
			message.ChannelID,
			message.SenderID,
			message.ParentID,
			message.Content,
		).
		Scan(&view)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("message %s was not returned after insert", message.ID)
	}

	return &view, nil
}

func (r *MessageRepository) SoftDelete(ctx context.Context, messageID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&messages_models.Message{}).
		Where("id = ? AND is_deleted = false", messageID).
		Update("is_deleted", true)

	return result.RowsAffected > 0, result.Error
}
