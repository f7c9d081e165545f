package system_healthcheck

import (
	"log/slog"
	"time"
)

const defaultPingTimeout = 3 * time.Second

func NewHealthcheckService(databasePinger DatabasePinger, log *slog.Logger) *HealthcheckService {
	return &HealthcheckService{
		databasePinger: databasePinger,
		timeout:        defaultPingTimeout,
		log:            log,
	}
}

func NewHealthcheckController(healthcheckService *HealthcheckService) *HealthcheckController {
	return &HealthcheckController{healthcheckService: healthcheckService}
}
