package workspaces_testing

import (
	"context"
	"testing"

	users_middleware "diligent-backend/internal/features/users/middleware"
	users_services "diligent-backend/internal/features/users/services"
	workspaces_models "diligent-backend/internal/features/workspaces/models"
	workspaces_repositories "diligent-backend/internal/features/workspaces/repositories"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateTestRouter mounts controllers under /api/v0 behind the auth middleware.
func CreateTestRouter(
	tokenService *users_services.TokenService,
	controllers ...ControllerInterface,
) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v0 := router.Group("/api/v0")
	protected := v0.Group("")
	protected.Use(users_middleware.AuthMiddleware(tokenService))

	for _, controller := range controllers {
		controller.RegisterRoutes(protected)
	}

	return router
}

// CreateTestWorkspace inserts a workspace and its members directly.
func CreateTestWorkspace(
	t *testing.T,
	db *gorm.DB,
	name string,
	memberIDs ...uuid.UUID,
) *workspaces_models.Workspace {
	t.Helper()
	ctx := context.Background()

	workspace := &workspaces_models.Workspace{
		Name:          name,
		WorkspaceData: map[string]any{"description": name},
	}
	require.NoError(t, workspaces_repositories.NewWorkspaceRepository(db).CreateWorkspace(ctx, workspace))

	membershipRepository := workspaces_repositories.NewMembershipRepository(db)
	for _, memberID := range memberIDs {
		require.NoError(t, membershipRepository.AddMember(ctx, workspace.ID, memberID))
	}

	t.Cleanup(func() {
		db.Delete(&workspaces_models.Workspace{}, "id = ?", workspace.ID)
	})

	return workspace
}
