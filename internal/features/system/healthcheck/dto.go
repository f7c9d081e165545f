package system_healthcheck

type HealthcheckResponse struct {
	Status string `json:"status"`
}
