package repositories

import (
	"context"
	"strings"
	"time"

	"gin-pantry/dto"
	"gin-pantry/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type IPantryRepository interface {
	FindAll(ctx context.Context, userID uint, filter dto.PantryFilter) ([]models.PantryItem, error)
	FindById(ctx context.Context, itemID uint, userID uint) (*models.PantryItem, error)
	FindExpiring(ctx context.Context, userID uint, from, to time.Time) ([]models.PantryItem, error)
	Create(ctx context.Context, newItem models.PantryItem) (*models.PantryItem, error)
	Update(ctx context.Context, item models.PantryItem) (*models.PantryItem, error)
	Delete(ctx context.Context, itemID uint, userID uint) (*models.PantryItem, error)
	Stats(ctx context.Context, userID uint, today time.Time) (*dto.PantryStats, error)
}

type PantryRepository struct {
	db *gorm.DB
}

func NewPantryRepository(db *gorm.DB) IPantryRepository {
	return &PantryRepository{db: db}
}

func (r *PantryRepository) FindAll(ctx context.Context, userID uint, filter dto.PantryFilter) ([]models.PantryItem, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.IsRunningLow != nil {
		query = query.Where("is_running_low = ?", *filter.IsRunningLow)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	items := []models.PantryItem{}
	if err := query.Order("created_at DESC").Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PantryRepository) FindById(ctx context.Context, itemID uint, userID uint) (*models.PantryItem, error) {
	var item models.PantryItem
	result := r.db.WithContext(ctx).First(&item, "id = ? AND user_id = ?", itemID, userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

// FindExpiring returns items whose expiration date falls within [from, to].
func (r *PantryRepository) FindExpiring(ctx context.Context, userID uint, from, to time.Time) ([]models.PantryItem, error) {
	items := []models.PantryItem{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiration_date IS NOT NULL", userID).
		Where("expiration_date >= ? AND expiration_date <= ?", datatypes.Date(from), datatypes.Date(to)).
		Order("expiration_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PantryRepository) Create(ctx context.Context, newItem models.PantryItem) (*models.PantryItem, error) {
	result := r.db.WithContext(ctx).Create(&newItem)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newItem, nil
}

func (r *PantryRepository) Update(ctx context.Context, item models.PantryItem) (*models.PantryItem, error) {
	if err := updateOwned(r.db.WithContext(ctx), &item, item.ID, item.UserID); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PantryRepository) Delete(ctx context.Context, itemID uint, userID uint) (*models.PantryItem, error) {
	var item models.PantryItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ? AND user_id = ?", itemID, userID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PantryItem{}, "id = ? AND user_id = ?", itemID, userID).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PantryRepository) Stats(ctx context.Context, userID uint, today time.Time) (*dto.PantryStats, error) {
	var stats dto.PantryStats
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.PantryItem{}).Where("user_id = ?", userID)
	}

	if err := base().Count(&stats.TotalItems).Error; err != nil {
		return nil, err
	}
	if err := base().Distinct("category").Count(&stats.TotalCategories).Error; err != nil {
		return nil, err
	}
	if err := base().Where("is_running_low = ?", true).Count(&stats.RunningLowCount).Error; err != nil {
		return nil, err
	}
	err := base().
		Where("expiration_date >= ? AND expiration_date <= ?", datatypes.Date(today), datatypes.Date(today.AddDate(0, 0, 7))).
		Count(&stats.ExpiringSoonCount).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
