package audit_logs

import (
	"log/slog"
	"time"

	"gorm.io/gorm"
)

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func NewAuditLogService(store AuditLogStore, log *slog.Logger) *AuditLogService {
	return &AuditLogService{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

func NewAuditLogCleanupService(
	auditLogService *AuditLogService,
	retentionDays int,
	log *slog.Logger,
) *AuditLogCleanupService {
	return &AuditLogCleanupService{
		auditLogService: auditLogService,
		retention:       time.Duration(retentionDays) * 24 * time.Hour,
		log:             log,
	}
}
