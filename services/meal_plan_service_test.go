package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gin-pantry/dto"
	"gin-pantry/models"
	"gin-pantry/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMealPlanService(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	fixToday(t, "2026-03-10")
	recipeRepo := repositories.NewRecipeRepository(db)
	service := NewMealPlanService(repositories.NewMealPlanRepository(db), recipeRepo)
	recipes := NewRecipeService(recipeRepo, repositories.NewPantryRepository(db), nil)

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	soup, err := recipes.Create(ctx, alice.ID, dto.CreateRecipeInput{Name: "Soup"})
	require.NoError(t, err)
	salad, err := recipes.Create(ctx, alice.ID, dto.CreateRecipeInput{Name: "Salad"})
	require.NoError(t, err)

	_, err = service.Add(ctx, bob.ID, dto.AddMealPlanInput{RecipeID: soup.ID, MealDate: "2026-03-10", MealType: models.MealTypeDinner})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = service.Add(ctx, alice.ID, dto.AddMealPlanInput{RecipeID: soup.ID, MealDate: "tomorrow", MealType: models.MealTypeDinner})
	assert.True(t, errors.Is(err, ErrInvalidDate))

	first, err := service.Add(ctx, alice.ID, dto.AddMealPlanInput{RecipeID: soup.ID, MealDate: "2026-03-10", MealType: models.MealTypeDinner})
	require.NoError(t, err)
	second, err := service.Add(ctx, alice.ID, dto.AddMealPlanInput{RecipeID: salad.ID, MealDate: "2026-03-10", MealType: models.MealTypeDinner})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, salad.ID, second.RecipeID)

	_, err = service.Add(ctx, alice.ID, dto.AddMealPlanInput{RecipeID: soup.ID, MealDate: "2026-03-16", MealType: models.MealTypeLunch})
	require.NoError(t, err)
	_, err = service.Add(ctx, alice.ID, dto.AddMealPlanInput{RecipeID: soup.ID, MealDate: "2026-03-17", MealType: models.MealTypeLunch})
	require.NoError(t, err)

	_, err = service.Weekly(ctx, alice.ID, "")
	assert.True(t, errors.Is(err, ErrStartDateRequired))

	week, err := service.Weekly(ctx, alice.ID, "2026-03-10")
	require.NoError(t, err)
	require.Len(t, week, 2)
	assert.True(t, time.Time(week[1].MealDate).Equal(day("2026-03-16")))

	upcoming, err := service.Upcoming(ctx, alice.ID, 0)
	require.NoError(t, err)
	assert.Len(t, upcoming, 3)

	_, err = service.Delete(ctx, first.ID, bob.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	_, err = service.Delete(ctx, first.ID, alice.ID)
	assert.NoError(t, err)
}
