package users_controllers

import (
	"net/http"
	"testing"
	"time"

	users_dto "diligent-backend/internal/features/users/dto"
	users_middleware "diligent-backend/internal/features/users/middleware"
	users_mocks "diligent-backend/internal/features/users/mocks"
	users_models "diligent-backend/internal/features/users/models"
	users_services "diligent-backend/internal/features/users/services"
	users_testing "diligent-backend/internal/features/users/testing"
	"diligent-backend/internal/util/logger"
	test_utils "diligent-backend/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type testRouter struct {
	router       *gin.Engine
	repository   *users_mocks.MockUserRepository
	tokenService *users_services.TokenService
}

func createTestRouter(t *testing.T, loginRateBurst int) *testRouter {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	repository := users_mocks.NewMockUserRepository(ctrl)
	auditLogWriter := users_mocks.NewMockAuditLogWriter(ctrl)
	auditLogWriter.EXPECT().WriteAuditLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	tokenService := users_testing.NewTestTokenService()
	userService := users_services.NewUserService(repository, tokenService, logger.GetLogger())
	userService.SetAuditLogWriter(auditLogWriter)

	controller := NewUserController(userService, tokenService, 1000, loginRateBurst)

	router := gin.New()
	v0 := router.Group("/api/v0")
	controller.RegisterRoutes(v0)

	protected := v0.Group("")
	protected.Use(users_middleware.AuthMiddleware(tokenService))
	controller.RegisterProtectedRoutes(protected)

	return &testRouter{router, repository, tokenService}
}

func createTestUser(t *testing.T, password string) *users_models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &users_models.User{
		ID:           uuid.New(),
		Email:        "molly@books.com",
		PasswordHash: string(hash),
	}
}

func Test_Login_WithValidCredentials_ReturnsTokenAndUser(t *testing.T) {
	tr := createTestRouter(t, 10)
	user := createTestUser(t, "mollymember")

	tr.repository.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	tr.repository.EXPECT().TouchLastLogin(gomock.Any(), user.ID).Return(nil)

	var response users_dto.LoginResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		tr.router,
		"/api/v0/login",
		"",
		users_dto.LoginRequestDTO{Email: user.Email, Password: "mollymember"},
		http.StatusOK,
		&response,
	)

	assert.NotEmpty(t, response.Token)
	assert.Equal(t, user.ID, response.User.ID)
	assert.Equal(t, "molly", response.User.Name)
	assert.Equal(t, "member", response.User.Role)

	var validation users_dto.TokenValidationResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		tr.router,
		"/api/v0/validate-token",
		"Bearer "+response.Token,
		http.StatusOK,
		&validation,
	)
	assert.True(t, validation.Valid)
	assert.Equal(t, user.ID, validation.Decoded.ID)
	assert.Equal(t, int64(24*60*60), validation.Decoded.Exp-validation.Decoded.Iat)
}

func Test_Login_WithWrongPassword_Returns401(t *testing.T) {
	tr := createTestRouter(t, 10)
	user := createTestUser(t, "mollymember")

	tr.repository.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

	resp := test_utils.MakePostRequest(
		t,
		tr.router,
		"/api/v0/login",
		"",
		users_dto.LoginRequestDTO{Email: user.Email, Password: "nope"},
		http.StatusUnauthorized,
	)
	assert.Equal(t, "Invalid email or password", test_utils.ErrorMessage(t, resp))
}

func Test_Login_WithUnknownEmail_Returns401(t *testing.T) {
	tr := createTestRouter(t, 10)

	tr.repository.EXPECT().GetUserByEmail(gomock.Any(), "ghost@books.com").Return(nil, nil)

	resp := test_utils.MakePostRequest(
		t,
		tr.router,
		"/api/v0/login",
		"",
		users_dto.LoginRequestDTO{Email: "ghost@books.com", Password: "whatever"},
		http.StatusUnauthorized,
	)
	assert.Equal(t, "user does not exist", test_utils.ErrorMessage(t, resp))
}

func Test_Login_WithMalformedBody_Returns400(t *testing.T) {
	tr := createTestRouter(t, 10)

	test_utils.MakePostRequest(t, tr.router, "/api/v0/login", "", "{not json", http.StatusBadRequest)
	test_utils.MakePostRequest(
		t,
		tr.router,
		"/api/v0/login",
		"",
		map[string]string{"email": "molly@books.com"},
		http.StatusBadRequest,
	)
}

func Test_Login_WhenRateLimitExceeded_Returns429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewUserController(nil, users_testing.NewTestTokenService(), 0.0001, 1)
	controller.RegisterRoutes(router.Group("/api/v0"))

	test_utils.MakePostRequest(t, router, "/api/v0/login", "", "{", http.StatusBadRequest)
	resp := test_utils.MakePostRequest(t, router, "/api/v0/login", "", "{", http.StatusTooManyRequests)
	assert.Equal(t, "Rate limit exceeded. Please try again later.", test_utils.ErrorMessage(t, resp))
}

func Test_ProtectedRoutes_WithoutToken_Return401(t *testing.T) {
	tr := createTestRouter(t, 10)

	resp := test_utils.MakeGetRequest(t, tr.router, "/api/v0/users/me", "", http.StatusUnauthorized)
	assert.Equal(t, "Access token is missing", test_utils.ErrorMessage(t, resp))

	resp = test_utils.MakeGetRequest(
		t,
		tr.router,
		"/api/v0/users/me",
		"Bearer not-a-token",
		http.StatusUnauthorized,
	)
	assert.Equal(t, "Invalid or expired token", test_utils.ErrorMessage(t, resp))

	test_utils.MakePostRequest(t, tr.router, "/api/v0/logout", "Token abc", nil, http.StatusUnauthorized)
}

func Test_ValidateToken_WithBadHeader_Returns401(t *testing.T) {
	tr := createTestRouter(t, 10)

	resp := test_utils.MakeGetRequest(t, tr.router, "/api/v0/validate-token", "", http.StatusUnauthorized)
	assert.Equal(t, "Invalid header format", test_utils.ErrorMessage(t, resp))

	resp = test_utils.MakeGetRequest(
		t,
		tr.router,
		"/api/v0/validate-token",
		"Bearer forged",
		http.StatusUnauthorized,
	)
	assert.Equal(t, "Token validation failed", test_utils.ErrorMessage(t, resp))
}

func Test_ValidateToken_WithoutIssuedAt_Returns401(t *testing.T) {
	tr := createTestRouter(t, 10)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    uuid.NewString(),
		"email": "molly@books.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(users_testing.TestSecret))
	assert.NoError(t, err)

	resp := test_utils.MakeGetRequest(
		t,
		tr.router,
		"/api/v0/validate-token",
		"Bearer "+signed,
		http.StatusUnauthorized,
	)
	assert.Equal(t, "Token validation failed", test_utils.ErrorMessage(t, resp))
}

func Test_Logout_ReturnsMessage(t *testing.T) {
	tr := createTestRouter(t, 10)
	token := users_testing.IssueBearerToken(t, tr.tokenService, uuid.New(), "molly@books.com")

	var response users_dto.MessageResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		tr.router,
		"/api/v0/logout",
		token,
		nil,
		http.StatusOK,
		&response,
	)
	assert.Equal(t, "Logout successful", response.Message)
}

func Test_GetCurrentUser_ReturnsProfileWithDefaults(t *testing.T) {
	tr := createTestRouter(t, 10)
	user := createTestUser(t, "mollymember")
	token := users_testing.IssueBearerToken(t, tr.tokenService, user.ID, user.Email)

	tr.repository.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)

	var profile map[string]any
	test_utils.MakeGetRequestAndUnmarshal(t, tr.router, "/api/v0/users/me", token, http.StatusOK, &profile)

	assert.Equal(t, user.ID.String(), profile["id"])
	assert.Equal(t, "molly", profile["name"])
	assert.Equal(t, "member", profile["role"])
	assert.Equal(t, "active", profile["status"])
	assert.Nil(t, profile["lastLogin"])
	assert.Equal(t, map[string]any{
		"lastWorkspace": nil,
		"lastChannel":   nil,
		"lastMessage":   nil,
	}, profile["preferences"])
}

func Test_GetCurrentUser_WhenUserVanished_Returns404(t *testing.T) {
	tr := createTestRouter(t, 10)
	userID := uuid.New()
	token := users_testing.IssueBearerToken(t, tr.tokenService, userID, "gone@books.com")

	tr.repository.EXPECT().GetUserByID(gomock.Any(), userID).Return(nil, nil)

	resp := test_utils.MakeGetRequest(t, tr.router, "/api/v0/users/me", token, http.StatusNotFound)
	assert.Equal(t, "User not found", test_utils.ErrorMessage(t, resp))
}

func Test_UpdatePreferences_DistinguishesNullFromAbsent(t *testing.T) {
	tr := createTestRouter(t, 10)
	userID := uuid.New()
	token := users_testing.IssueBearerToken(t, tr.tokenService, userID, "molly@books.com")

	tr.repository.EXPECT().
		MergePreferences(gomock.Any(), userID, map[string]any{"lastChannel": nil}).
		Return(map[string]any{"lastWorkspace": "ws-1", "lastChannel": nil}, nil)

	var response users_dto.PreferencesResponseDTO
	test_utils.MakePatchRequestAndUnmarshal(
		t,
		tr.router,
		"/api/v0/users/me/preferences",
		token,
		`{"lastChannel": null}`,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "ws-1", response.Preferences["lastWorkspace"])
	assert.Contains(t, response.Preferences, "lastMessage")
}

func Test_UpdateStatus_WithInvalidStatus_Returns400(t *testing.T) {
	tr := createTestRouter(t, 10)
	token := users_testing.IssueBearerToken(t, tr.tokenService, uuid.New(), "molly@books.com")

	resp := test_utils.MakeRequest(t, tr.router, test_utils.RequestOptions{
		Method:         http.MethodPatch,
		URL:            "/api/v0/users/me/status",
		Body:           users_dto.UpdateStatusRequestDTO{Status: "busy"},
		AuthToken:      token,
		ExpectedStatus: http.StatusBadRequest,
	})
	assert.Equal(t, `Status must be either "active" or "away"`, test_utils.ErrorMessage(t, resp))
}

func Test_UpdateStatus_WithAway_ReturnsStatus(t *testing.T) {
	tr := createTestRouter(t, 10)
	userID := uuid.New()
	token := users_testing.IssueBearerToken(t, tr.tokenService, userID, "molly@books.com")

	tr.repository.EXPECT().UpdateStatus(gomock.Any(), userID, gomock.Any()).Return(true, nil)

	var response users_dto.StatusResponseDTO
	test_utils.MakePatchRequestAndUnmarshal(
		t,
		tr.router,
		"/api/v0/users/me/status",
		token,
		users_dto.UpdateStatusRequestDTO{Status: "away"},
		http.StatusOK,
		&response,
	)
	assert.Equal(t, "away", response.Status)
}
