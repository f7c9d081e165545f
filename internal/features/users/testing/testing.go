package users_testing

import (
	"context"
	"testing"
	"time"

	"diligent-backend/internal/features/encryption/secrets"
	users_models "diligent-backend/internal/features/users/models"
	users_repositories "diligent-backend/internal/features/users/repositories"
	users_services "diligent-backend/internal/features/users/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const TestSecret = "test-secret-key"

func NewTestTokenService() *users_services.TokenService {
	return users_services.NewTokenService(
		secrets.NewSecretKeyService(TestSecret, ""),
		24*time.Hour,
	)
}

// IssueBearerToken returns a ready to use Authorization header value.
func IssueBearerToken(
	t *testing.T,
	tokenService *users_services.TokenService,
	userID uuid.UUID,
	email string,
) string {
	t.Helper()

	token, err := tokenService.Issue(userID, email)
	require.NoError(t, err)

	return "Bearer " + token
}

// CreateTestUser inserts a member with a unique email and the given display
// name. An empty name leaves the profile bag without one.
func CreateTestUser(t *testing.T, db *gorm.DB, name string, password string) *users_models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &users_models.User{
		Email:        "user-" + uuid.New().String()[:8] + "@books.com",
		PasswordHash: string(hash),
		Profile:      datatypes.NewJSONType(users_models.UserProfile{Name: name}),
	}

	repository := users_repositories.NewUserRepository(db)
	require.NoError(t, repository.CreateUser(context.Background(), user))

	return user
}
