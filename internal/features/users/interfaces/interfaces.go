//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=../mocks/mock_interfaces.go -package=users_mocks

package users_interfaces

import (
	"context"

	users_enums "diligent-backend/internal/features/users/enums"
	users_models "diligent-backend/internal/features/users/models"

	"github.com/google/uuid"
)

type AuditLogWriter interface {
	WriteAuditLog(ctx context.Context, message string, userID *uuid.UUID, workspaceID *uuid.UUID)
}

type SecretKeyProvider interface {
	GetSecretKey() (string, error)
}

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*users_models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*users_models.User, error)
	TouchLastLogin(ctx context.Context, userID uuid.UUID) error
	MergePreferences(
		ctx context.Context,
		userID uuid.UUID,
		patch map[string]any,
	) (map[string]any, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, status users_enums.UserStatus) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}
