package repositories

import (
	"context"
	"time"

	"gin-pantry/dto"
	"gin-pantry/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const mealTypeOrder = "CASE meal_type WHEN 'breakfast' THEN 1 WHEN 'lunch' THEN 2 WHEN 'dinner' THEN 3 ELSE 4 END"

type IMealPlanRepository interface {
	Upsert(ctx context.Context, entry models.MealPlan) (*models.MealPlan, error)
	FindByDateRange(ctx context.Context, userID uint, start, end time.Time) ([]models.MealPlan, error)
	FindUpcoming(ctx context.Context, userID uint, today time.Time, limit int) ([]models.MealPlan, error)
	Delete(ctx context.Context, entryID uint, userID uint) (*models.MealPlan, error)
	Stats(ctx context.Context, userID uint, today time.Time) (*dto.MealPlanStats, error)
}

type MealPlanRepository struct {
	db *gorm.DB
}

func NewMealPlanRepository(db *gorm.DB) IMealPlanRepository {
	return &MealPlanRepository{db: db}
}

// Upsert assigns a recipe to the (user, date, meal type) slot, replacing the
// recipe of an existing entry instead of adding a second one.
func (r *MealPlanRepository) Upsert(ctx context.Context, entry models.MealPlan) (*models.MealPlan, error) {
	var saved models.MealPlan
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "meal_date"}, {Name: "meal_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"recipe_id", "updated_at"}),
		}).Create(&entry).Error
		if err != nil {
			return err
		}
		return tx.Preload("Recipe").
			Where("user_id = ? AND meal_date = ? AND meal_type = ?", entry.UserID, entry.MealDate, entry.MealType).
			First(&saved).Error
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *MealPlanRepository) FindByDateRange(ctx context.Context, userID uint, start, end time.Time) ([]models.MealPlan, error) {
	entries := []models.MealPlan{}
	err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ? AND meal_date >= ? AND meal_date <= ?", userID, datatypes.Date(start), datatypes.Date(end)).
		Order("meal_date ASC").
		Order(mealTypeOrder).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *MealPlanRepository) FindUpcoming(ctx context.Context, userID uint, today time.Time, limit int) ([]models.MealPlan, error) {
	entries := []models.MealPlan{}
	err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ? AND meal_date >= ?", userID, datatypes.Date(today)).
		Order("meal_date ASC").
		Order(mealTypeOrder).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *MealPlanRepository) Delete(ctx context.Context, entryID uint, userID uint) (*models.MealPlan, error) {
	var entry models.MealPlan
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&entry, "id = ? AND user_id = ?", entryID, userID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MealPlan{}, "id = ? AND user_id = ?", entryID, userID).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *MealPlanRepository) Stats(ctx context.Context, userID uint, today time.Time) (*dto.MealPlanStats, error) {
	var stats dto.MealPlanStats
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.MealPlan{}).Where("user_id = ?", userID)
	}
	if err := base().Count(&stats.TotalPlannedMeals).Error; err != nil {
		return nil, err
	}
	err := base().
		Where("meal_date >= ? AND meal_date < ?", datatypes.Date(today), datatypes.Date(today.AddDate(0, 0, 7))).
		Count(&stats.ThisWeekCount).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
