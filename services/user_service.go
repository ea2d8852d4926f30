package services

import (
	"context"
	"errors"

	"gin-pantry/dto"
	"gin-pantry/models"
	"gin-pantry/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type IUserService interface {
	GetProfile(ctx context.Context, userID uint) (*models.User, *models.UserPreference, error)
	UpdateProfile(ctx context.Context, userID uint, input dto.UpdateProfileInput) (*models.User, error)
	UpdatePreferences(ctx context.Context, userID uint, input dto.UpdatePreferencesInput) (*models.UserPreference, error)
	ChangePassword(ctx context.Context, userID uint, input dto.ChangePasswordInput) error
	DeleteAccount(ctx context.Context, userID uint) error
}

type UserService struct {
	users       repositories.IAuthRepository
	preferences repositories.IPreferenceRepository
}

func NewUserService(users repositories.IAuthRepository, preferences repositories.IPreferenceRepository) IUserService {
	return &UserService{users: users, preferences: preferences}
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, *models.UserPreference, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	preference, err := s.preferences.FindByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if preference == nil {
		defaults := models.DefaultPreference(userID)
		preference = &defaults
	}
	return user, preference, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input dto.UpdateProfileInput) (*models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email != user.Email {
			other, err := s.users.FindUser(ctx, email)
			if err == nil && other.ID != user.ID {
				return nil, ErrEmailInUse
			}
			if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
				return nil, err
			}
		}
		user.Email = email
	}

	if err := s.users.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdatePreferences(ctx context.Context, userID uint, input dto.UpdatePreferencesInput) (*models.UserPreference, error) {
	current, err := s.preferences.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	preference := models.DefaultPreference(userID)
	if current != nil {
		preference = *current
	}

	if input.DietaryRestrictions != nil {
		preference.DietaryRestrictions = datatypes.JSONSlice[string](*input.DietaryRestrictions)
	}
	if input.Allergies != nil {
		preference.Allergies = datatypes.JSONSlice[string](*input.Allergies)
	}
	if input.PreferredCuisines != nil {
		preference.PreferredCuisines = datatypes.JSONSlice[string](*input.PreferredCuisines)
	}
	if input.DefaultServings != nil {
		preference.DefaultServings = *input.DefaultServings
	}
	if input.MeasurementUnit != nil {
		preference.MeasurementUnit = *input.MeasurementUnit
	}

	return s.preferences.Upsert(ctx, preference)
}

func (s *UserService) ChangePassword(ctx context.Context, userID uint, input dto.ChangePasswordInput) error {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return ErrInvalidPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, string(hashedPassword))
}

func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.users.DeleteUser(ctx, userID)
}
