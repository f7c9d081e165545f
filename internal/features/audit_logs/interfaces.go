//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock_interfaces_test.go -package=audit_logs

package audit_logs

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AuditLogStore interface {
	Create(ctx context.Context, auditLog *AuditLog) error
	FindByWorkspace(
		ctx context.Context,
		workspaceID uuid.UUID,
		limit, offset int,
		beforeDate *time.Time,
	) ([]*AuditLogDTO, error)
	CountByWorkspace(ctx context.Context, workspaceID uuid.UUID, beforeDate *time.Time) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
