//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock_interfaces_test.go -package=channels

package channels

import (
	"context"

	"github.com/google/uuid"
)

type ChannelStore interface {
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*Channel, error)
	// GetWorkspaceID returns nil when the channel does not exist.
	GetWorkspaceID(ctx context.Context, channelID uuid.UUID) (*uuid.UUID, error)
}
