package system_healthcheck

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	errors_utils "diligent-backend/internal/util/errors"
)

var ErrDatabaseUnavailable = errors_utils.New(errors_utils.KindUnavailable, "database is unavailable")

type HealthcheckService struct {
	databasePinger DatabasePinger
	timeout        time.Duration
	log            *slog.Logger
}

func (s *HealthcheckService) IsHealthy(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.databasePinger.Ping(ctx); err != nil {
		s.log.Warn("Database ping failed", "error", err)
		return fmt.Errorf("%w: %v", ErrDatabaseUnavailable, err)
	}

	return nil
}
