package repositories

import (
	"context"
	"errors"

	"gin-pantry/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IPreferenceRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*models.UserPreference, error)
	Upsert(ctx context.Context, preference models.UserPreference) (*models.UserPreference, error)
}

type PreferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) IPreferenceRepository {
	return &PreferenceRepository{db: db}
}

// FindByUserID returns nil without an error when the user has no stored preferences.
func (r *PreferenceRepository) FindByUserID(ctx context.Context, userID uint) (*models.UserPreference, error) {
	var preference models.UserPreference
	err := r.db.WithContext(ctx).First(&preference, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &preference, nil
}

func (r *PreferenceRepository) Upsert(ctx context.Context, preference models.UserPreference) (*models.UserPreference, error) {
	var saved models.UserPreference
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		preference.ID = 0
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"dietary_restrictions",
				"allergies",
				"preferred_cuisines",
				"default_servings",
				"measurement_unit",
				"updated_at",
			}),
		}).Create(&preference).Error
		if err != nil {
			return err
		}
		return tx.First(&saved, "user_id = ?", preference.UserID).Error
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
