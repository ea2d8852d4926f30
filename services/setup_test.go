package services

import (
	"context"
	"testing"
	"time"

	"gin-pantry/ai"
	"gin-pantry/infra"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.SetupInMemoryDB()
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))
	require.NoError(t, infra.AutoMigrateTokens(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func fixToday(t *testing.T, value string) {
	t.Helper()
	fixed, err := ParseDate(value)
	require.NoError(t, err)
	original := today
	today = func() time.Time { return fixed }
	t.Cleanup(func() { today = original })
}

type fakeAssistant struct {
	request     ai.RecipeRequest
	pantry      []string
	expiring    []string
	recipeName  string
	ingredients []string
	err         error
}

func (f *fakeAssistant) GenerateRecipe(ctx context.Context, req ai.RecipeRequest) (*ai.GeneratedRecipe, error) {
	f.request = req
	if f.err != nil {
		return nil, f.err
	}
	return &ai.GeneratedRecipe{Name: "Generated", Servings: req.Servings}, nil
}

func (f *fakeAssistant) SuggestRecipes(ctx context.Context, pantry []string, expiring []string) ([]string, error) {
	f.pantry = pantry
	f.expiring = expiring
	if f.err != nil {
		return nil, f.err
	}
	return []string{"Omelette", "Fried rice"}, nil
}

func (f *fakeAssistant) CookingTips(ctx context.Context, recipeName string, ingredients []string) ([]string, error) {
	f.recipeName = recipeName
	f.ingredients = ingredients
	if f.err != nil {
		return nil, f.err
	}
	return []string{"Rest the dough"}, nil
}
