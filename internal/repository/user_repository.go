package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/iliyamo/movie-catalog/internal/model"
	"github.com/iliyamo/movie-catalog/internal/utils"
)

type UserRepo struct{ DB *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password, inserts the user and returns it.
func (r *UserRepo) Create(ctx context.Context, email, username, password string, cost int) (*model.User, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		Email:        normalizeEmail(email),
		Username:     strings.TrimSpace(username),
		PasswordHash: hash,
	}
	if err := r.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, translate(err)
	}
	return u, nil
}

// ExistsByEmailOrUsername reports whether either unique field is taken.
func (r *UserRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.User{}).
		Where("email = ? OR username = ?", normalizeEmail(email), strings.TrimSpace(username)).
		Count(&n).Error
	return n > 0, err
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.DB.WithContext(ctx).Where("email = ?", normalizeEmail(email)).Take(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.DB.WithContext(ctx).Where("id = ?", id).Take(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// CountMovies returns how many catalog entries the user owns.
func (r *UserRepo) CountMovies(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Movie{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
