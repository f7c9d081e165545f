package audit_logs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type AuditLogService struct {
	store AuditLogStore
	log   *slog.Logger
	now   func() time.Time
}

// WriteAuditLog never fails the caller; store errors are only logged.
func (s *AuditLogService) WriteAuditLog(
	ctx context.Context,
	message string,
	userID *uuid.UUID,
	workspaceID *uuid.UUID,
) {
	auditLog := &AuditLog{
		ID:          uuid.New(),
		UserID:      userID,
		WorkspaceID: workspaceID,
		Message:     message,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.store.Create(context.WithoutCancel(ctx), auditLog); err != nil {
		s.log.Error("Failed to write audit log", "error", err, "message", message)
	}
}

func (s *AuditLogService) GetWorkspaceAuditLogs(
	ctx context.Context,
	workspaceID uuid.UUID,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	request.Normalize()

	auditLogs, err := s.store.FindByWorkspace(
		ctx,
		workspaceID,
		request.Limit,
		request.Offset,
		request.BeforeDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logs: %w", err)
	}

	total, err := s.store.CountByWorkspace(ctx, workspaceID, request.BeforeDate)
	if err != nil {
		return nil, fmt.Errorf("failed to count audit logs: %w", err)
	}

	return &GetAuditLogsResponse{
		AuditLogs: auditLogs,
		Total:     total,
		Limit:     request.Limit,
		Offset:    request.Offset,
	}, nil
}

func (s *AuditLogService) CleanOldAuditLogs(
	ctx context.Context,
	retention time.Duration,
) (int64, error) {
	cutoff := s.now().UTC().Add(-retention)

	deleted, err := s.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old audit logs: %w", err)
	}

	return deleted, nil
}
