package users_dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type LoginRequestDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserViewDTO struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

type LoginResponseDTO struct {
	Token string      `json:"token"`
	User  UserViewDTO `json:"user"`
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}

type UserProfileResponseDTO struct {
	ID          uuid.UUID      `json:"id"`
	Email       string         `json:"email"`
	Name        string         `json:"name"`
	Role        string         `json:"role"`
	Status      string         `json:"status"`
	LastLogin   *time.Time     `json:"lastLogin"`
	Preferences map[string]any `json:"preferences"`
}

// UpdatePreferencesRequestDTO keeps raw values so that an absent key and an
// explicit null can be told apart.
type UpdatePreferencesRequestDTO struct {
	LastWorkspace json.RawMessage `json:"lastWorkspace"`
	LastChannel   json.RawMessage `json:"lastChannel"`
	LastMessage   json.RawMessage `json:"lastMessage"`
}

type PreferencesResponseDTO struct {
	Preferences map[string]any `json:"preferences"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status"`
}

type StatusResponseDTO struct {
	Status string `json:"status"`
}

type TokenValidationResponseDTO struct {
	Valid   bool            `json:"valid"`
	Decoded DecodedTokenDTO `json:"decoded"`
	Message string          `json:"message"`
}

type DecodedTokenDTO struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Iat   int64     `json:"iat"`
	Exp   int64     `json:"exp"`
}
