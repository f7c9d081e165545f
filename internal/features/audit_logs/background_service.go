package audit_logs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const cleanupSchedule = "@daily"

// AuditLogCleanupService drops audit log entries older than the retention
// period once a day.
type AuditLogCleanupService struct {
	auditLogService *AuditLogService
	retention       time.Duration
	log             *slog.Logger
}

func (s *AuditLogCleanupService) Run(ctx context.Context) error {
	scheduler := cron.New(cron.WithLogger(cronLogger{s.log}))

	if _, err := scheduler.AddFunc(cleanupSchedule, func() { s.cleanOnce(ctx) }); err != nil {
		return err
	}

	s.cleanOnce(ctx)

	scheduler.Start()
	<-ctx.Done()
	<-scheduler.Stop().Done()

	return nil
}

func (s *AuditLogCleanupService) cleanOnce(ctx context.Context) {
	deleted, err := s.auditLogService.CleanOldAuditLogs(ctx, s.retention)
	if err != nil {
		s.log.Error("Failed to clean old audit logs", "error", err)
		return
	}

	if deleted > 0 {
		s.log.Info("Old audit logs cleaned", "deleted", deleted)
	}
}

type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
