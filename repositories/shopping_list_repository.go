package repositories

import (
	"context"
	"time"

	"gin-pantry/models"
	"gin-pantry/shopping"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type IShoppingListRepository interface {
	FindAll(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
	FindById(ctx context.Context, itemID uint, userID uint) (*models.ShoppingListItem, error)
	Create(ctx context.Context, item models.ShoppingListItem) (*models.ShoppingListItem, error)
	Update(ctx context.Context, item models.ShoppingListItem) (*models.ShoppingListItem, error)
	ToggleChecked(ctx context.Context, itemID uint, userID uint) (*models.ShoppingListItem, error)
	Delete(ctx context.Context, itemID uint, userID uint) (*models.ShoppingListItem, error)
	ClearChecked(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
	ClearAll(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
	GenerateFromMealPlan(ctx context.Context, userID uint, start, end time.Time) error
	MoveCheckedToPantry(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
}

type ShoppingListRepository struct {
	db *gorm.DB
}

func NewShoppingListRepository(db *gorm.DB) IShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

func (r *ShoppingListRepository) FindAll(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	items := []models.ShoppingListItem{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category ASC").
		Order("ingredient_name ASC").
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ShoppingListRepository) FindById(ctx context.Context, itemID uint, userID uint) (*models.ShoppingListItem, error) {
	var item models.ShoppingListItem
	if err := r.db.WithContext(ctx).First(&item, "id = ? AND user_id = ?", itemID, userID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ShoppingListRepository) Create(ctx context.Context, item models.ShoppingListItem) (*models.ShoppingListItem, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ShoppingListRepository) Update(ctx context.Context, item models.ShoppingListItem) (*models.ShoppingListItem, error) {
	if err := updateOwned(r.db.WithContext(ctx), &item, item.ID, item.UserID); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ShoppingListRepository) ToggleChecked(ctx context.Context, itemID uint, userID uint) (*models.ShoppingListItem, error) {
	var item models.ShoppingListItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ShoppingListItem{}).
			Where("id = ? AND user_id = ?", itemID, userID).
			Update("is_checked", gorm.Expr("NOT is_checked"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&item, "id = ? AND user_id = ?", itemID, userID).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ShoppingListRepository) Delete(ctx context.Context, itemID uint, userID uint) (*models.ShoppingListItem, error) {
	var item models.ShoppingListItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ? AND user_id = ?", itemID, userID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ShoppingListItem{}, "id = ? AND user_id = ?", itemID, userID).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ShoppingListRepository) ClearChecked(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	return r.deleteWhere(ctx, "user_id = ? AND is_checked = ?", userID, true)
}

func (r *ShoppingListRepository) ClearAll(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	return r.deleteWhere(ctx, "user_id = ?", userID)
}

func (r *ShoppingListRepository) deleteWhere(ctx context.Context, query string, args ...any) ([]models.ShoppingListItem, error) {
	items := []models.ShoppingListItem{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(query, args...).Order("id ASC").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Delete(&models.ShoppingListItem{}, idsOf(items)).Error
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GenerateFromMealPlan rebuilds the meal-plan-derived rows of the user's list from
// the recipes scheduled in [start, end], net of pantry stock. Manually added rows
// are left alone. Everything happens in one transaction.
func (r *ShoppingListRepository) GenerateFromMealPlan(ctx context.Context, userID uint, start, end time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND from_meal_plan = ?", userID, true).
			Delete(&models.ShoppingListItem{}).Error
		if err != nil {
			return err
		}

		var required []shopping.Requirement
		err = tx.Table("meal_plans AS mp").
			Select("MIN(ri.ingredient_name) AS ingredient_name, ri.unit AS unit, SUM(ri.quantity) AS total_quantity").
			Joins("JOIN recipe_ingredients AS ri ON ri.recipe_id = mp.recipe_id").
			Where("mp.user_id = ? AND mp.meal_date >= ? AND mp.meal_date <= ?", userID, datatypes.Date(start), datatypes.Date(end)).
			Group("LOWER(ri.ingredient_name), ri.unit").
			Scan(&required).Error
		if err != nil {
			return err
		}
		if len(required) == 0 {
			return nil
		}

		var pantry []models.PantryItem
		if err := tx.Select("name", "quantity", "unit").Where("user_id = ?", userID).Find(&pantry).Error; err != nil {
			return err
		}

		shortfalls := shopping.ComputeShortfalls(required, pantry)
		if len(shortfalls) == 0 {
			return nil
		}
		rows := make([]models.ShoppingListItem, len(shortfalls))
		for i, s := range shortfalls {
			rows[i] = models.ShoppingListItem{
				UserID:         userID,
				IngredientName: s.IngredientName,
				Quantity:       s.Quantity,
				Unit:           s.Unit,
				Category:       models.DefaultCategory,
				FromMealPlan:   true,
			}
		}
		return tx.Create(&rows).Error
	})
}

// MoveCheckedToPantry copies every checked row into the pantry as a new pantry
// item and removes those rows from the list, atomically. Existing pantry rows with
// the same name are not merged.
func (r *ShoppingListRepository) MoveCheckedToPantry(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	checked := []models.ShoppingListItem{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND is_checked = ?", userID, true).
			Order("id ASC").
			Find(&checked).Error
		if err != nil {
			return err
		}
		if len(checked) == 0 {
			return nil
		}

		for _, item := range checked {
			pantryItem := models.PantryItem{
				UserID:   userID,
				Name:     item.IngredientName,
				Quantity: item.Quantity,
				Unit:     item.Unit,
				Category: item.Category,
			}
			if err := tx.Create(&pantryItem).Error; err != nil {
				return err
			}
		}

		return tx.Where("user_id = ?", userID).Delete(&models.ShoppingListItem{}, idsOf(checked)).Error
	})
	if err != nil {
		return nil, err
	}
	return checked, nil
}

func idsOf(items []models.ShoppingListItem) []uint {
	ids := make([]uint, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
