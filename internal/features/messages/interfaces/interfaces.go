//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=../mocks/mock_interfaces.go -package=messages_mocks

package messages_interfaces

import (
	"context"

	messages_models "diligent-backend/internal/features/messages/models"

	"github.com/google/uuid"
)

type MessageRepository interface {
	ListByChannel(ctx context.Context, channelID uuid.UUID) ([]*messages_models.MessageView, error)
	// GetByID returns nil when the message does not exist.
	GetByID(ctx context.Context, messageID uuid.UUID) (*messages_models.Message, error)
	ParentExistsInChannel(ctx context.Context, parentID uuid.UUID, channelID uuid.UUID) (bool, error)
	Create(ctx context.Context, message *messages_models.Message) (*messages_models.MessageView, error)
	SoftDelete(ctx context.Context, messageID uuid.UUID) (bool, error)
}

// ChannelAccessResolver returns the workspace of a channel the user may access.
type ChannelAccessResolver interface {
	ResolveAccessibleChannel(ctx context.Context, channelID uuid.UUID, userID uuid.UUID) (uuid.UUID, error)
}

type AuditLogWriter interface {
	WriteAuditLog(ctx context.Context, message string, userID *uuid.UUID, workspaceID *uuid.UUID)
}
