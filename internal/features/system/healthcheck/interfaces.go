//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock_interfaces_test.go -package=system_healthcheck

package system_healthcheck

import "context"

type DatabasePinger interface {
	Ping(ctx context.Context) error
}
