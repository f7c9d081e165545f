package users_enums

type UserStatus string

const (
	UserStatusActive UserStatus = "active"
	UserStatusAway   UserStatus = "away"
)

// IsValid validates the UserStatus
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusAway:
		return true
	default:
		return false
	}
}
