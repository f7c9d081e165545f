package users_repositories

import "gorm.io/gorm"

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}
