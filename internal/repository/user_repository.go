package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mluksch/personboard/internal/model"
	"gorm.io/gorm"
)

// UserRepository is an interface that defines the methods required for user data management.
type UserRepository interface {
	// AddUser adds a new user to the database.
	AddUser(ctx context.Context, user *model.User) (addedUser *model.User, err error)

	// GetUserByID retrieves a user from the database by their userID.
	GetUserByID(ctx context.Context, userID int64) (user *model.User, err error)

	// GetUserByUsername retrieves a user from the database by their username.
	GetUserByUsername(ctx context.Context, username string) (user *model.User, err error)
}

// UserRepositoryImpl implements the UserRepository interface.
type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepositoryImpl instance with the provided database.
func NewUserRepository(db *gorm.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{
		db: db,
	}
}

func (ur *UserRepositoryImpl) AddUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := ur.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}

	return user, nil
}

func (ur *UserRepositoryImpl) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	var user model.User
	err := ur.db.WithContext(ctx).First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return &user, nil
}

func (ur *UserRepositoryImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := ur.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &user, nil
}
