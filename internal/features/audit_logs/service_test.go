package audit_logs

import (
	"context"
	"errors"
	"testing"
	"time"

	"diligent-backend/internal/util/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestAuditLogService(t *testing.T) (*AuditLogService, *MockAuditLogStore) {
	ctrl := gomock.NewController(t)
	store := NewMockAuditLogStore(ctrl)

	service := NewAuditLogService(store, logger.GetLogger())
	service.now = func() time.Time { return fixedNow }

	return service, store
}

func Test_WriteAuditLog_StoresEntry(t *testing.T) {
	service, store := newTestAuditLogService(t)
	userID, workspaceID := uuid.New(), uuid.New()

	store.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, auditLog *AuditLog) error {
			assert.NotEqual(t, uuid.Nil, auditLog.ID)
			assert.Equal(t, "Message deleted", auditLog.Message)
			assert.Equal(t, &userID, auditLog.UserID)
			assert.Equal(t, &workspaceID, auditLog.WorkspaceID)
			assert.Equal(t, fixedNow, auditLog.CreatedAt)
			return nil
		})

	service.WriteAuditLog(context.Background(), "Message deleted", &userID, &workspaceID)
}

func Test_WriteAuditLog_WhenStoreFails_DoesNotPanic(t *testing.T) {
	service, store := newTestAuditLogService(t)

	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db is down"))

	assert.NotPanics(t, func() {
		service.WriteAuditLog(context.Background(), "User signed in", nil, nil)
	})
}

func Test_GetWorkspaceAuditLogs_NormalizesPaging(t *testing.T) {
	tests := []struct {
		name           string
		request        GetAuditLogsRequest
		expectedLimit  int
		expectedOffset int
	}{
		{"defaults", GetAuditLogsRequest{}, DefaultAuditLogsLimit, 0},
		{"custom", GetAuditLogsRequest{Limit: 5, Offset: 10}, 5, 10},
		{"capped", GetAuditLogsRequest{Limit: 50000}, MaxAuditLogsLimit, 0},
		{"negative offset", GetAuditLogsRequest{Limit: 1, Offset: -3}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := newTestAuditLogService(t)
			ctx := context.Background()
			workspaceID := uuid.New()
			logs := []*AuditLogDTO{{ID: uuid.New(), Message: "hello"}}

			store.EXPECT().
				FindByWorkspace(ctx, workspaceID, tt.expectedLimit, tt.expectedOffset, nil).
				Return(logs, nil)
			store.EXPECT().CountByWorkspace(ctx, workspaceID, nil).Return(int64(42), nil)

			request := tt.request
			response, err := service.GetWorkspaceAuditLogs(ctx, workspaceID, &request)
			require.NoError(t, err)

			assert.Equal(t, logs, response.AuditLogs)
			assert.Equal(t, int64(42), response.Total)
			assert.Equal(t, tt.expectedLimit, response.Limit)
			assert.Equal(t, tt.expectedOffset, response.Offset)
		})
	}
}

func Test_CleanOldAuditLogs_DeletesBeforeRetentionCutoff(t *testing.T) {
	service, store := newTestAuditLogService(t)
	ctx := context.Background()

	store.EXPECT().
		DeleteOlderThan(ctx, fixedNow.Add(-90*24*time.Hour)).
		Return(int64(7), nil)

	deleted, err := service.CleanOldAuditLogs(ctx, 90*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
}

func Test_CleanupService_RunsOnStartAndStopsWithContext(t *testing.T) {
	service, store := newTestAuditLogService(t)

	store.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), nil).MinTimes(1)

	cleanupService := NewAuditLogCleanupService(service, 30, logger.GetLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cleanupService.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup service did not stop")
	}
}
