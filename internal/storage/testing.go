package storage

import (
	"os"
	"testing"

	"diligent-backend/internal/util/logger"

	"gorm.io/gorm"
)

// GetTestDb opens the integration database named by TEST_DATABASE_DSN and
// skips the test when it is not configured. The schema must already be
// migrated.
func GetTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	db, err := Open(Options{Dsn: dsn, MaxOpenConns: 4, MaxIdleConns: 2}, logger.GetLogger())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = Close(db)
	})

	return db
}
