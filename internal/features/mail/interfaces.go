//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock_interfaces_test.go -package=mail

package mail

import (
	"context"

	"github.com/google/uuid"
)

type MailStore interface {
	ListMailboxes(ctx context.Context) ([]*Mailbox, error)
	// FindMailbox returns nil when no mailbox carries the name.
	FindMailbox(ctx context.Context, name string, ignoreCase bool) (*Mailbox, error)
	ListByMailbox(ctx context.Context, mailboxID uuid.UUID) ([]*Mail, error)
	// GetByID returns nil when the mail does not exist.
	GetByID(ctx context.Context, mailID uuid.UUID) (*Mail, error)
	Move(ctx context.Context, mailID uuid.UUID, mailboxID uuid.UUID) (bool, error)
}
