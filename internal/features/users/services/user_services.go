package users_services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	users_dto "diligent-backend/internal/features/users/dto"
	users_enums "diligent-backend/internal/features/users/enums"
	users_interfaces "diligent-backend/internal/features/users/interfaces"
	users_models "diligent-backend/internal/features/users/models"
	errors_utils "diligent-backend/internal/util/errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailNotFound  = errors_utils.NewUnauthenticated("user does not exist")
	ErrBadCredentials = errors_utils.NewUnauthenticated("Invalid email or password")
	ErrUserNotFound   = errors_utils.NewNotFound("User not found")
	ErrInvalidStatus  = errors_utils.NewValidation(`Status must be either "active" or "away"`)
)

type UserService struct {
	userRepository users_interfaces.UserRepository
	tokenService   *TokenService
	auditLogWriter users_interfaces.AuditLogWriter
	log            *slog.Logger
}

func (s *UserService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *UserService) Authenticate(
	ctx context.Context,
	request *users_dto.LoginRequestDTO,
) (*users_dto.LoginResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, ErrEmailNotFound
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password))
	if err != nil {
		s.log.Debug("Rejected sign in", "userId", user.ID)
		return nil, ErrBadCredentials
	}

	if err := s.userRepository.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	token, err := s.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	s.writeAuditLog(ctx, fmt.Sprintf("User signed in with email: %s", user.Email), &user.ID)

	return &users_dto.LoginResponseDTO{
		Token: token,
		User: users_dto.UserViewDTO{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.DisplayName(),
			Role:  string(user.RoleOrDefault()),
		},
	}, nil
}

func (s *UserService) Logout(ctx context.Context, identity users_models.Identity) {
	s.writeAuditLog(ctx, fmt.Sprintf("User signed out: %s", identity.Email), &identity.ID)
}

func (s *UserService) GetProfile(
	ctx context.Context,
	userID uuid.UUID,
) (*users_dto.UserProfileResponseDTO, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, ErrUserNotFound
	}

	return &users_dto.UserProfileResponseDTO{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.DisplayName(),
		Role:        string(user.RoleOrDefault()),
		Status:      string(user.StatusOrDefault()),
		LastLogin:   user.Profile.Data().LastLogin,
		Preferences: user.PreferencesOrDefault(),
	}, nil
}

// UpdatePreferences touches only the keys present in the request; an
// explicit null clears a key.
func (s *UserService) UpdatePreferences(
	ctx context.Context,
	userID uuid.UUID,
	request *users_dto.UpdatePreferencesRequestDTO,
) (map[string]any, error) {
	patch := map[string]any{}

	for key, raw := range map[string]json.RawMessage{
		users_models.PreferenceLastWorkspace: request.LastWorkspace,
		users_models.PreferenceLastChannel:   request.LastChannel,
		users_models.PreferenceLastMessage:   request.LastMessage,
	} {
		if len(raw) == 0 {
			continue
		}

		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, errors_utils.NewValidation("Invalid preferences")
		}

		patch[key] = value
	}

	preferences, err := s.userRepository.MergePreferences(ctx, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}

	if preferences == nil {
		return nil, ErrUserNotFound
	}

	return users_models.MergePreferences(preferences), nil
}

func (s *UserService) UpdateStatus(
	ctx context.Context,
	userID uuid.UUID,
	status string,
) (users_enums.UserStatus, error) {
	userStatus := users_enums.UserStatus(status)
	if !userStatus.IsValid() {
		return "", ErrInvalidStatus
	}

	updated, err := s.userRepository.UpdateStatus(ctx, userID, userStatus)
	if err != nil {
		return "", fmt.Errorf("failed to update status: %w", err)
	}

	if !updated {
		return "", ErrUserNotFound
	}

	s.writeAuditLog(ctx, fmt.Sprintf("User status changed to %s", userStatus), &userID)

	return userStatus, nil
}

func (s *UserService) ChangeUserPasswordByEmail(
	ctx context.Context,
	email string,
	newPassword string,
) error {
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return errors.New("user with this email does not exist")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, user.ID, string(hashedPassword)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.writeAuditLog(ctx, "Password changed", &user.ID)

	return nil
}

func (s *UserService) writeAuditLog(ctx context.Context, message string, userID *uuid.UUID) {
	if s.auditLogWriter == nil {
		return
	}

	s.auditLogWriter.WriteAuditLog(ctx, message, userID, nil)
}
