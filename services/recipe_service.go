package services

import (
	"context"
	"strings"
	"time"

	"gin-pantry/ai"
	"gin-pantry/dto"
	"gin-pantry/metrics"
	"gin-pantry/models"
	"gin-pantry/repositories"

	"gorm.io/datatypes"
)

const DefaultRecentLimit = 5

// IRecipeAssistant is the language model side of recipe handling.
type IRecipeAssistant interface {
	GenerateRecipe(ctx context.Context, req ai.RecipeRequest) (*ai.GeneratedRecipe, error)
	SuggestRecipes(ctx context.Context, pantry []string, expiring []string) ([]string, error)
	CookingTips(ctx context.Context, recipeName string, ingredients []string) ([]string, error)
}

type IRecipeService interface {
	FindAll(ctx context.Context, userID uint, filter dto.RecipeFilter) ([]models.Recipe, error)
	FindRecent(ctx context.Context, userID uint, limit int) ([]models.Recipe, error)
	FindById(ctx context.Context, recipeID uint, userID uint) (*models.Recipe, error)
	Stats(ctx context.Context, userID uint) (*dto.RecipeStats, error)
	Create(ctx context.Context, userID uint, input dto.CreateRecipeInput) (*models.Recipe, error)
	Update(ctx context.Context, recipeID uint, userID uint, input dto.UpdateRecipeInput) (*models.Recipe, error)
	Delete(ctx context.Context, recipeID uint, userID uint) (*models.Recipe, error)
	Generate(ctx context.Context, userID uint, input dto.GenerateRecipeInput) (*ai.GeneratedRecipe, error)
	Suggestions(ctx context.Context, userID uint) ([]string, error)
	Tips(ctx context.Context, recipeID uint, userID uint) ([]string, error)
}

type RecipeService struct {
	repository repositories.IRecipeRepository
	pantry     repositories.IPantryRepository
	assistant  IRecipeAssistant
}

// NewRecipeService accepts a nil assistant; the AI operations then fail with ErrAIDisabled.
func NewRecipeService(repository repositories.IRecipeRepository, pantry repositories.IPantryRepository, assistant IRecipeAssistant) IRecipeService {
	return &RecipeService{repository: repository, pantry: pantry, assistant: assistant}
}

func (s *RecipeService) FindAll(ctx context.Context, userID uint, filter dto.RecipeFilter) ([]models.Recipe, error) {
	return s.repository.FindAll(ctx, userID, filter)
}

func (s *RecipeService) FindRecent(ctx context.Context, userID uint, limit int) ([]models.Recipe, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.repository.FindRecent(ctx, userID, limit)
}

func (s *RecipeService) FindById(ctx context.Context, recipeID uint, userID uint) (*models.Recipe, error) {
	return s.repository.FindById(ctx, recipeID, userID)
}

func (s *RecipeService) Stats(ctx context.Context, userID uint) (*dto.RecipeStats, error) {
	return s.repository.Stats(ctx, userID)
}

func (s *RecipeService) Create(ctx context.Context, userID uint, input dto.CreateRecipeInput) (*models.Recipe, error) {
	name, err := requiredName(input.Name)
	if err != nil {
		return nil, err
	}
	ingredients, err := toIngredients(input.Ingredients)
	if err != nil {
		return nil, err
	}
	recipe := models.Recipe{
		UserID:       userID,
		Name:         name,
		Description:  input.Description,
		CuisineType:  input.CuisineType,
		Difficulty:   input.Difficulty,
		PrepTime:     input.PrepTime,
		CookTime:     input.CookTime,
		Servings:     input.Servings,
		Instructions: toJSONSlice(input.Instructions),
		DietaryTags:  toJSONSlice(input.DietaryTags),
		UserNotes:    input.UserNotes,
		ImageURL:     input.ImageURL,
		Ingredients:  ingredients,
		Nutrition:    toNutrition(input.Nutrition),
	}
	return s.repository.Create(ctx, recipe)
}

func (s *RecipeService) Update(ctx context.Context, recipeID uint, userID uint, input dto.UpdateRecipeInput) (*models.Recipe, error) {
	recipe, err := s.repository.FindById(ctx, recipeID, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if recipe.Name, err = requiredName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		recipe.Description = *input.Description
	}
	if input.CuisineType != nil {
		recipe.CuisineType = *input.CuisineType
	}
	if input.Difficulty != nil {
		recipe.Difficulty = *input.Difficulty
	}
	if input.PrepTime != nil {
		recipe.PrepTime = *input.PrepTime
	}
	if input.CookTime != nil {
		recipe.CookTime = *input.CookTime
	}
	if input.Servings != nil {
		recipe.Servings = *input.Servings
	}
	if input.Instructions != nil {
		recipe.Instructions = toJSONSlice(*input.Instructions)
	}
	if input.DietaryTags != nil {
		recipe.DietaryTags = toJSONSlice(*input.DietaryTags)
	}
	if input.UserNotes != nil {
		recipe.UserNotes = *input.UserNotes
	}
	if input.ImageURL != nil {
		recipe.ImageURL = *input.ImageURL
	}

	var ingredients *[]models.RecipeIngredient
	if input.Ingredients != nil {
		replaced, err := toIngredients(*input.Ingredients)
		if err != nil {
			return nil, err
		}
		ingredients = &replaced
	}
	return s.repository.Update(ctx, *recipe, ingredients, toNutrition(input.Nutrition))
}

func (s *RecipeService) Delete(ctx context.Context, recipeID uint, userID uint) (*models.Recipe, error) {
	return s.repository.Delete(ctx, recipeID, userID)
}

// Generate asks the model for a recipe. With UsePantry the caller's pantry names are
// merged into the requested ingredients, keeping the first spelling of each name.
func (s *RecipeService) Generate(ctx context.Context, userID uint, input dto.GenerateRecipeInput) (*ai.GeneratedRecipe, error) {
	ingredients := append([]string{}, input.Ingredients...)
	if input.UsePantry {
		items, err := s.pantry.FindAll(ctx, userID, dto.PantryFilter{})
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			ingredients = append(ingredients, item.Name)
		}
	}
	ingredients = dedupe(ingredients)
	if len(ingredients) == 0 {
		return nil, ErrNoIngredients
	}
	if s.assistant == nil {
		return nil, ErrAIDisabled
	}

	start := time.Now()
	recipe, err := s.assistant.GenerateRecipe(ctx, ai.RecipeRequest{
		Ingredients:         ingredients,
		DietaryRestrictions: input.DietaryRestrictions,
		CuisineType:         input.CuisineType,
		Servings:            input.Servings,
		CookingTime:         input.CookingTime,
	})
	metrics.RecordAIRequest("generate_recipe", time.Since(start), err == nil)
	return recipe, err
}

func (s *RecipeService) Suggestions(ctx context.Context, userID uint) ([]string, error) {
	if s.assistant == nil {
		return nil, ErrAIDisabled
	}
	items, err := s.pantry.FindAll(ctx, userID, dto.PantryFilter{})
	if err != nil {
		return nil, err
	}
	from := today()
	expiring, err := s.pantry.FindExpiring(ctx, userID, from, from.AddDate(0, 0, DefaultExpiringDays))
	if err != nil {
		return nil, err
	}

	start := time.Now()
	suggestions, err := s.assistant.SuggestRecipes(ctx, pantryNames(items), pantryNames(expiring))
	metrics.RecordAIRequest("suggestions", time.Since(start), err == nil)
	return suggestions, err
}

func (s *RecipeService) Tips(ctx context.Context, recipeID uint, userID uint) ([]string, error) {
	recipe, err := s.repository.FindById(ctx, recipeID, userID)
	if err != nil {
		return nil, err
	}
	if s.assistant == nil {
		return nil, ErrAIDisabled
	}

	names := make([]string, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		names[i] = ing.IngredientName
	}

	start := time.Now()
	tips, err := s.assistant.CookingTips(ctx, recipe.Name, names)
	metrics.RecordAIRequest("cooking_tips", time.Since(start), err == nil)
	return tips, err
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}

func pantryNames(items []models.PantryItem) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}

func toJSONSlice(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.JSONSlice[string](values)
}

func toIngredients(inputs []dto.IngredientInput) ([]models.RecipeIngredient, error) {
	ingredients := make([]models.RecipeIngredient, len(inputs))
	for i, in := range inputs {
		name, err := requiredName(in.Name)
		if err != nil {
			return nil, err
		}
		ingredients[i] = models.RecipeIngredient{
			IngredientName: name,
			Quantity:       in.Quantity,
			Unit:           in.Unit,
			Position:       i,
		}
	}
	return ingredients, nil
}

func toNutrition(input *dto.NutritionInput) *models.RecipeNutrition {
	if input == nil {
		return nil
	}
	return &models.RecipeNutrition{
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fats:     input.Fats,
		Fiber:    input.Fiber,
	}
}
