package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quizengine_backend/internals/constants"
	"quizengine_backend/internals/features/users/model"
)

// ErrEmailTaken signals a duplicate registration. The controller maps it to a
// 400 naming the conflicting email.
var ErrEmailTaken = errors.New("email already registered")

// FindByEmail resolves a user by its login name. Absence surfaces as
// gorm.ErrRecordNotFound, which the auth middleware treats as 401.
func FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.WithContext(ctx).
		Where("user_email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Register stores a new account with a bcrypt-hashed password and the default
// role. The model is built fresh here so the insert can never carry a client
// supplied ID or role.
func Register(ctx context.Context, db *gorm.DB, email, password string) (*model.UserModel, error) {
	if _, err := FindByEmail(ctx, db, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.UserModel{
		Email:    email,
		Password: string(hash),
		Role:     constants.RoleUser,
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckPassword compares a stored hash against a submitted plaintext.
func CheckPassword(hash, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
}
