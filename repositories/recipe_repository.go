package repositories

import (
	"context"
	"strings"

	"gin-pantry/dto"
	"gin-pantry/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultRecipeLimit = 20
	maxRecipeLimit     = 100
)

var recipeSortColumns = map[string]string{
	"created_at": "created_at",
	"name":       "name",
	"prep_time":  "prep_time",
	"cook_time":  "cook_time",
	"difficulty": "difficulty",
}

type IRecipeRepository interface {
	FindAll(ctx context.Context, userID uint, filter dto.RecipeFilter) ([]models.Recipe, error)
	FindRecent(ctx context.Context, userID uint, limit int) ([]models.Recipe, error)
	FindById(ctx context.Context, recipeID uint, userID uint) (*models.Recipe, error)
	Create(ctx context.Context, recipe models.Recipe) (*models.Recipe, error)
	Update(ctx context.Context, recipe models.Recipe, ingredients *[]models.RecipeIngredient, nutrition *models.RecipeNutrition) (*models.Recipe, error)
	Delete(ctx context.Context, recipeID uint, userID uint) (*models.Recipe, error)
	Stats(ctx context.Context, userID uint) (*dto.RecipeStats, error)
}

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) IRecipeRepository {
	return &RecipeRepository{db: db}
}

func (r *RecipeRepository) FindAll(ctx context.Context, userID uint, filter dto.RecipeFilter) ([]models.Recipe, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}
	if filter.CuisineType != "" {
		query = query.Where("cuisine_type = ?", filter.CuisineType)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.DietaryTag != "" {
		query = whereHasTag(query, "dietary_tags", filter.DietaryTag)
	}
	if filter.MaxCookTime > 0 {
		query = query.Where("cook_time <= ?", filter.MaxCookTime)
	}

	column, ok := recipeSortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	order := "DESC"
	if filter.SortOrder == "asc" {
		order = "ASC"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultRecipeLimit
	}
	if limit > maxRecipeLimit {
		limit = maxRecipeLimit
	}

	recipes := []models.Recipe{}
	err := query.
		Preload("Nutrition").
		Order(column + " " + order).
		Order("id " + order).
		Limit(limit).
		Offset(filter.Offset).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// whereHasTag matches rows whose JSON string array column contains tag.
func whereHasTag(query *gorm.DB, column string, tag string) *gorm.DB {
	if query.Dialector.Name() == "postgres" {
		return query.Where(column+" @> ?", datatypes.JSONSlice[string]{tag})
	}
	return query.Where("EXISTS (SELECT 1 FROM json_each("+column+") WHERE json_each.value = ?)", tag)
}

func (r *RecipeRepository) FindRecent(ctx context.Context, userID uint, limit int) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	err := r.db.WithContext(ctx).
		Preload("Nutrition").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *RecipeRepository) FindById(ctx context.Context, recipeID uint, userID uint) (*models.Recipe, error) {
	return findRecipe(r.db.WithContext(ctx), recipeID, userID)
}

func findRecipe(tx *gorm.DB, recipeID uint, userID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := tx.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC").Order("id ASC")
		}).
		Preload("Nutrition").
		First(&recipe, "id = ? AND user_id = ?", recipeID, userID).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Create stores the recipe, its ingredients and its nutrition in one transaction.
func (r *RecipeRepository) Create(ctx context.Context, recipe models.Recipe) (*models.Recipe, error) {
	ingredients := recipe.Ingredients
	nutrition := recipe.Nutrition
	recipe.Ingredients = nil
	recipe.Nutrition = nil

	var saved *models.Recipe
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&recipe).Error; err != nil {
			return err
		}
		if err := insertIngredients(tx, recipe.ID, ingredients); err != nil {
			return err
		}
		if nutrition != nil {
			nutrition.ID = 0
			nutrition.RecipeID = recipe.ID
			if err := tx.Create(nutrition).Error; err != nil {
				return err
			}
		}
		var err error
		saved, err = findRecipe(tx, recipe.ID, recipe.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// Update writes the recipe columns. A non-nil ingredients list replaces the stored one,
// a non-nil nutrition replaces the stored nutrition row.
func (r *RecipeRepository) Update(ctx context.Context, recipe models.Recipe, ingredients *[]models.RecipeIngredient, nutrition *models.RecipeNutrition) (*models.Recipe, error) {
	recipe.Ingredients = nil
	recipe.Nutrition = nil

	var saved *models.Recipe
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateOwned(tx, &recipe, recipe.ID, recipe.UserID); err != nil {
			return err
		}
		if ingredients != nil {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
				return err
			}
			if err := insertIngredients(tx, recipe.ID, *ingredients); err != nil {
				return err
			}
		}
		if nutrition != nil {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeNutrition{}).Error; err != nil {
				return err
			}
			nutrition.ID = 0
			nutrition.RecipeID = recipe.ID
			if err := tx.Create(nutrition).Error; err != nil {
				return err
			}
		}
		var err error
		saved, err = findRecipe(tx, recipe.ID, recipe.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// Delete removes the recipe, its children and the meal-plan entries that reference it.
func (r *RecipeRepository) Delete(ctx context.Context, recipeID uint, userID uint) (*models.Recipe, error) {
	var deleted *models.Recipe
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe, err := findRecipe(tx, recipeID, userID)
		if err != nil {
			return err
		}
		if err := deleteRecipeChildren(tx, []uint{recipeID}); err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ? AND user_id = ?", recipeID, userID).Delete(&models.MealPlan{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Recipe{}, "id = ? AND user_id = ?", recipeID, userID).Error; err != nil {
			return err
		}
		deleted = recipe
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *RecipeRepository) Stats(ctx context.Context, userID uint) (*dto.RecipeStats, error) {
	var stats dto.RecipeStats
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Recipe{}).Where("user_id = ?", userID)
	}
	if err := base().Count(&stats.TotalRecipes).Error; err != nil {
		return nil, err
	}
	if err := base().Where("cuisine_type <> ''").Distinct("cuisine_type").Count(&stats.CuisineTypeCount).Error; err != nil {
		return nil, err
	}
	row := base().Select("COALESCE(AVG(CAST(cook_time AS FLOAT)), 0)").Row()
	if err := row.Scan(&stats.AvgCookTime); err != nil {
		return nil, err
	}
	return &stats, nil
}

func insertIngredients(tx *gorm.DB, recipeID uint, ingredients []models.RecipeIngredient) error {
	if len(ingredients) == 0 {
		return nil
	}
	rows := make([]models.RecipeIngredient, len(ingredients))
	for i, ing := range ingredients {
		rows[i] = models.RecipeIngredient{
			RecipeID:       recipeID,
			IngredientName: ing.IngredientName,
			Quantity:       ing.Quantity,
			Unit:           ing.Unit,
			Position:       i,
		}
	}
	return tx.Create(&rows).Error
}

func deleteRecipeChildren(tx *gorm.DB, recipeIDs []uint) error {
	if len(recipeIDs) == 0 {
		return nil
	}
	if err := tx.Where("recipe_id IN ?", recipeIDs).Delete(&models.RecipeIngredient{}).Error; err != nil {
		return err
	}
	return tx.Where("recipe_id IN ?", recipeIDs).Delete(&models.RecipeNutrition{}).Error
}
