package repositories

import (
	"context"
	"testing"
	"time"

	"gin-pantry/infra"
	"gin-pantry/models"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.SetupInMemoryDB()
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func createUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Email: email, Password: "hash", Name: email}
	require.NoError(t, NewAuthRepository(db).CreateUser(context.Background(), &user, models.DefaultPreference(0)))
	return user
}

func ingredient(name string, quantity float64, unit string) models.RecipeIngredient {
	return models.RecipeIngredient{IngredientName: name, Quantity: quantity, Unit: unit}
}

func createRecipe(t *testing.T, db *gorm.DB, userID uint, name string, ingredients ...models.RecipeIngredient) models.Recipe {
	t.Helper()
	recipe, err := NewRecipeRepository(db).Create(context.Background(), models.Recipe{
		UserID:      userID,
		Name:        name,
		Ingredients: ingredients,
	})
	require.NoError(t, err)
	return *recipe
}

func planMeal(t *testing.T, db *gorm.DB, userID, recipeID uint, date string, mealType string) models.MealPlan {
	t.Helper()
	entry, err := NewMealPlanRepository(db).Upsert(context.Background(), models.MealPlan{
		UserID:   userID,
		RecipeID: recipeID,
		MealDate: datatypes.Date(day(date)),
		MealType: mealType,
	})
	require.NoError(t, err)
	return *entry
}

func addPantryItem(t *testing.T, db *gorm.DB, userID uint, name string, quantity float64, unit string) models.PantryItem {
	t.Helper()
	item, err := NewPantryRepository(db).Create(context.Background(), models.PantryItem{
		UserID:   userID,
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
	})
	require.NoError(t, err)
	return *item
}

func countRows(t *testing.T, db *gorm.DB, model any, userID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Where("user_id = ?", userID).Count(&count).Error)
	return count
}
