package users_models

import (
	"strings"
	"time"

	users_enums "diligent-backend/internal/features/users/enums"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	PreferenceLastWorkspace = "lastWorkspace"
	PreferenceLastChannel   = "lastChannel"
	PreferenceLastMessage   = "lastMessage"
)

var PreferenceKeys = []string{
	PreferenceLastWorkspace,
	PreferenceLastChannel,
	PreferenceLastMessage,
}

// UserProfile is the user_data attribute bag. Every field is optional.
type UserProfile struct {
	Name        string         `json:"name,omitempty"`
	Role        string         `json:"role,omitempty"`
	Status      string         `json:"status,omitempty"`
	LastLogin   *time.Time     `json:"last_login,omitempty"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

type User struct {
	ID           uuid.UUID                       `json:"id"       gorm:"column:id"`
	Email        string                          `json:"email"    gorm:"column:email"`
	PasswordHash string                          `json:"-"        gorm:"column:password_hash"`
	Profile      datatypes.JSONType[UserProfile] `json:"userData" gorm:"column:user_data"`
}

func (User) TableName() string {
	return "members"
}

// DisplayName falls back to the local part of the email.
func (u *User) DisplayName() string {
	if name := u.Profile.Data().Name; name != "" {
		return name
	}

	localPart, _, _ := strings.Cut(u.Email, "@")
	return localPart
}

func (u *User) RoleOrDefault() users_enums.UserRole {
	if role := u.Profile.Data().Role; role != "" {
		return users_enums.UserRole(role)
	}

	return users_enums.UserRoleMember
}

func (u *User) StatusOrDefault() users_enums.UserStatus {
	if status := u.Profile.Data().Status; status != "" {
		return users_enums.UserStatus(status)
	}

	return users_enums.UserStatusActive
}

// PreferencesOrDefault always carries the three known keys, null when unset.
func (u *User) PreferencesOrDefault() map[string]any {
	return MergePreferences(u.Profile.Data().Preferences)
}

func MergePreferences(stored map[string]any) map[string]any {
	preferences := make(map[string]any, len(PreferenceKeys))
	for _, key := range PreferenceKeys {
		preferences[key] = nil
	}

	for key, value := range stored {
		preferences[key] = value
	}

	return preferences
}
