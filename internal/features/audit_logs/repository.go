package audit_logs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func (r *AuditLogRepository) Create(ctx context.Context, auditLog *AuditLog) error {
	if auditLog.ID == uuid.Nil {
		auditLog.ID = uuid.New()
	}

	return r.db.WithContext(ctx).Create(auditLog).Error
}

func (r *AuditLogRepository) FindByWorkspace(
	ctx context.Context,
	workspaceID uuid.UUID,
	limit, offset int,
	beforeDate *time.Time,
) ([]*AuditLogDTO, error) {
	auditLogs := make([]*AuditLogDTO, 0)

	query := r.db.WithContext(ctx).
		Table("audit_logs al").
		Select(`al.id, al.user_id, al.workspace_id, al.message, al.created_at,
			m.email AS user_email, m.user_data->>'name' AS user_name, w.name AS workspace_name`).
		Joins("LEFT JOIN members m ON al.user_id = m.id").
		Joins("LEFT JOIN workspaces w ON al.workspace_id = w.id").
		Where("al.workspace_id = ?", workspaceID)

	if beforeDate != nil {
		query = query.Where("al.created_at < ?", *beforeDate)
	}

	err := query.
		Order("al.created_at DESC, al.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&auditLogs).Error

	return auditLogs, err
}

func (r *AuditLogRepository) CountByWorkspace(
	ctx context.Context,
	workspaceID uuid.UUID,
	beforeDate *time.Time,
) (int64, error) {
	var count int64

	query := r.db.WithContext(ctx).
		Model(&AuditLog{}).
		Where("workspace_id = ?", workspaceID)

	if beforeDate != nil {
		query = query.Where("created_at < ?", *beforeDate)
	}

	err := query.Count(&count).Error
	return count, err
}

func (r *AuditLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&AuditLog{})

	return result.RowsAffected, result.Error
}
