package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	DefaultServings        = 4
	DefaultMeasurementUnit = "metric"
)

type UserPreference struct {
	ID                  uint                        `gorm:"primaryKey" json:"id"`
	UserID              uint                        `gorm:"not null;uniqueIndex" json:"user_id"`
	DietaryRestrictions datatypes.JSONSlice[string] `json:"dietary_restrictions"`
	Allergies           datatypes.JSONSlice[string] `json:"allergies"`
	PreferredCuisines   datatypes.JSONSlice[string] `json:"preferred_cuisines"`
	DefaultServings     int                         `gorm:"not null;default:4" json:"default_servings"`
	MeasurementUnit     string                      `gorm:"not null;default:'metric'" json:"measurement_unit"`
	CreatedAt           time.Time                   `json:"created_at"`
	UpdatedAt           time.Time                   `json:"updated_at"`
}

// DefaultPreference is stored for every new account.
func DefaultPreference(userID uint) UserPreference {
	return UserPreference{
		UserID:              userID,
		DietaryRestrictions: datatypes.JSONSlice[string]{},
		Allergies:           datatypes.JSONSlice[string]{},
		PreferredCuisines:   datatypes.JSONSlice[string]{},
		DefaultServings:     DefaultServings,
		MeasurementUnit:     DefaultMeasurementUnit,
	}
}
