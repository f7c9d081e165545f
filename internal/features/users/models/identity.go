package users_models

import "github.com/google/uuid"

// Identity is what a verified bearer token proves about the caller.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
