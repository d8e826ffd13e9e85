package gormdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"user-management-service/internal/domain"
	"user-management-service/internal/domain/entities"
	"user-management-service/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entities.User, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("find all users: %w", err)
	}

	users := make([]*entities.User, 0, len(models))
	for i := range models {
		users = append(users, r.mapToEntity(&models[i]))
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, "id = ?", id)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *UserRepository) Save(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	userModel := UserModel{
		ID:    userEntity.ID,
		Name:  userEntity.Name,
		Email: userEntity.Email,
	}

	db := r.db.WithContext(ctx)
	var err error
	if userEntity.IsPersisted() {
		// Updates never falls back to an insert, so a row deleted since it
		// was loaded stays deleted.
		result := db.Model(&UserModel{ID: userEntity.ID}).Select("*").Updates(&userModel)
		if result.Error == nil && result.RowsAffected == 0 {
			return nil, nil
		}
		err = result.Error
	} else {
		err = db.Create(&userModel).Error
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &domain.DuplicateEmailError{Email: userEntity.Email}
		}
		return nil, fmt.Errorf("save user: %w", err)
	}

	// Read back the stored row so callers see exactly what was committed
	return r.FindByID(ctx, userModel.ID)
}

func (r *UserRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&UserModel{}, id).Error; err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&UserModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *UserRepository) findOne(ctx context.Context, cond string, arg any) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) exists(ctx context.Context, cond string, arg any) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&UserModel{}).Where(cond, arg).Limit(1).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return n > 0, nil
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		ID:    userModel.ID,
		Name:  userModel.Name,
		Email: userModel.Email,
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Older driver builds do not translate every constraint error.
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
