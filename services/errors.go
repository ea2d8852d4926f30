package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidPassword    = errors.New("invalid current password")
	ErrEmailInUse         = errors.New("email already in use")
	ErrTokenBlacklisted   = errors.New("token is blacklisted")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNoIngredients      = errors.New("at least one ingredient is required to generate a recipe")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrStartDateRequired  = errors.New("start date is required")
	ErrAIDisabled         = errors.New("recipe generation is not configured")
	ErrBlankName          = errors.New("name must not be blank")
)
