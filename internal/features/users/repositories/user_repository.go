package users_repositories

import (
	"context"
	"encoding/json"
	"fmt"

	users_enums "diligent-backend/internal/features/users/enums"
	users_models "diligent-backend/internal/features/users/models"
	"diligent-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*users_models.User, error) {
	var user users_models.User

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByID(
	ctx context.Context,
	userID uuid.UUID,
) (*users_models.User, error) {
	var user users_models.User

	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		`UPDATE members
		 SET user_data = jsonb_set(user_data, '{last_login}', to_jsonb(now()), true)
		 WHERE id = ?`,
		userID,
	).Error
}

// MergePreferences applies patch onto user_data.preferences in one statement.
// Returns nil when the user does not exist.
func (r *UserRepository) MergePreferences(
	ctx context.Context,
	userID uuid.UUID,
	patch map[string]any,
) (map[string]any, error) {
	patchJSON, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode preferences: %w", err)
	}

	var row struct {
		Preferences datatypes.JSON
	}

	result := r.db.WithContext(ctx).Raw(
		`UPDATE members
		 SET user_data = jsonb_set(
		     user_data,
		     '{preferences}',
		     COALESCE(user_data->'preferences', '{}'::jsonb) || ?::jsonb,
		     true
		 )
		 WHERE id = ?
		 RETURNING user_data->'preferences' AS preferences`,
		string(patchJSON),
		userID,
	).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, nil
	}

	preferences := map[string]any{}
	if err := json.Unmarshal(row.Preferences, &preferences); err != nil {
		return nil, fmt.Errorf("failed to decode preferences: %w", err)
	}

	return preferences, nil
}

// UpdateStatus reports false when no user row matched.
func (r *UserRepository) UpdateStatus(
	ctx context.Context,
	userID uuid.UUID,
	status users_enums.UserStatus,
) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE members
		 SET user_data = jsonb_set(user_data, '{status}', to_jsonb(?::text), true)
		 WHERE id = ?`,
		string(status),
		userID,
	)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *UserRepository) UpdatePassword(
	ctx context.Context,
	userID uuid.UUID,
	passwordHash string,
) error {
	return r.db.WithContext(ctx).Model(&users_models.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}

// CreateUser is used by seeding and tests; users have no sign-up route.
func (r *UserRepository) CreateUser(ctx context.Context, user *users_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	return r.db.WithContext(ctx).Create(user).Error
}
