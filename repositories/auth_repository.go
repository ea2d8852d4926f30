package repositories

import (
	"context"
	"errors"

	"gin-pantry/models"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("User not found")

type IAuthRepository interface {
	CreateUser(ctx context.Context, user *models.User, preference models.UserPreference) error
	FindUser(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, userID uint) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
	DeleteUser(ctx context.Context, userID uint) error
}

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) IAuthRepository {
	return &AuthRepository{db: db}
}

// CreateUser stores the user together with its default preferences.
func (r *AuthRepository) CreateUser(ctx context.Context, user *models.User, preference models.UserPreference) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		preference.UserID = user.ID
		return tx.Create(&preference).Error
	})
}

func (r *AuthRepository) FindUser(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *AuthRepository) FindUserByID(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *AuthRepository) UpdateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Model(user).
		Select("name", "email", "updated_at").
		Updates(user).Error
}

func (r *AuthRepository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteUser removes the account and every row it owns in one transaction.
func (r *AuthRepository) DeleteUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipeIDs []uint
		if err := tx.Model(&models.Recipe{}).Where("user_id = ?", userID).Pluck("id", &recipeIDs).Error; err != nil {
			return err
		}
		if err := deleteRecipeChildren(tx, recipeIDs); err != nil {
			return err
		}
		steps := []func() error{
			func() error { return tx.Where("user_id = ?", userID).Delete(&models.MealPlan{}).Error },
			func() error { return tx.Where("user_id = ?", userID).Delete(&models.Recipe{}).Error },
			func() error { return tx.Where("user_id = ?", userID).Delete(&models.PantryItem{}).Error },
			func() error { return tx.Where("user_id = ?", userID).Delete(&models.ShoppingListItem{}).Error },
			func() error { return tx.Where("user_id = ?", userID).Delete(&models.UserPreference{}).Error },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}
		result := tx.Delete(&models.User{}, "id = ?", userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}
