package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply  string
	err    error
	prompt string
}

func (s *stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.reply, s.err
}

func TestTimeBucket(t *testing.T) {
	assert.Equal(t, "under 30 minutes", TimeBucket("short"))
	assert.Equal(t, "30-60 minutes", TimeBucket("medium"))
	assert.Equal(t, "over 60 minutes", TimeBucket("long"))
	assert.Equal(t, "any", TimeBucket(""))
	assert.Equal(t, "any", TimeBucket("overnight"))
}

func TestRecipePrompt_Defaults(t *testing.T) {
	prompt, err := RecipePrompt(RecipeRequest{Ingredients: []string{"eggs", "rice"}})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Ingredients Available: eggs, rice")
	assert.Contains(t, prompt, "No dietary restrictions")
	assert.Contains(t, prompt, "Cuisine type: any")
	assert.Contains(t, prompt, "Servings: 4")
	assert.Contains(t, prompt, "Cooking time: any")

	prompt, err = RecipePrompt(RecipeRequest{
		Ingredients:         []string{"tofu"},
		DietaryRestrictions: []string{"vegan", "gluten-free"},
		CuisineType:         "thai",
		Servings:            2,
		CookingTime:         "short",
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Dietary restrictions: vegan, gluten-free")
	assert.Contains(t, prompt, "Cuisine type: thai")
	assert.Contains(t, prompt, "Servings: 2")
	assert.Contains(t, prompt, "Cooking time: under 30 minutes")
}

func TestGenerateRecipe_DecodesReply(t *testing.T) {
	llm := &stubGenerator{reply: "```json\n" + `{
		"name": "Egg fried rice",
		"cuisineType": "chinese",
		"difficulty": "easy",
		"prepTime": 10,
		"cook_time": 15,
		"servings": 2,
		"ingredients": [
			{"name": "Eggs", "quantity": 2, "unit": "pcs"},
			{"ingredientName": "soy sauce", "quantity": 1.5, "unit": "tbsp"}
		],
		"instructions": ["Cook rice", "Fry"],
		"dietaryTags": ["vegetarian"],
		"nutrition": {"calories": 520, "protein": 18, "fat": 14},
		"cookingTips": ["Use day-old rice"]
	}` + "\n```"}
	assistant := NewRecipeAssistant(llm)

	recipe, err := assistant.GenerateRecipe(context.Background(), RecipeRequest{Ingredients: []string{"eggs", "rice"}})
	require.NoError(t, err)
	assert.Contains(t, llm.prompt, "eggs, rice")

	assert.Equal(t, "Egg fried rice", recipe.Name)
	assert.Equal(t, "chinese", recipe.CuisineType)
	assert.Equal(t, 10, recipe.PrepTime)
	assert.Equal(t, 15, recipe.CookTime)
	assert.Equal(t, []string{"Cook rice", "Fry"}, recipe.Instructions)
	assert.Equal(t, []string{"vegetarian"}, recipe.DietaryTags)
	assert.Equal(t, []string{"Use day-old rice"}, recipe.CookingTips)

	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, GeneratedIngredient{Name: "Eggs", Quantity: 2, Unit: "pcs", Required: false}, recipe.Ingredients[0])
	assert.Equal(t, GeneratedIngredient{Name: "soy sauce", Quantity: 1.5, Unit: "tbsp", Required: true}, recipe.Ingredients[1])

	require.NotNil(t, recipe.Nutrition)
	assert.Equal(t, 520.0, recipe.Nutrition.Calories)
	assert.Equal(t, 14.0, recipe.Nutrition.Fats)
}

func TestGenerateRecipe_Errors(t *testing.T) {
	ctx := context.Background()

	failing := NewRecipeAssistant(&stubGenerator{err: ErrEmptyResponse})
	_, err := failing.GenerateRecipe(ctx, RecipeRequest{Ingredients: []string{"eggs"}})
	assert.True(t, errors.Is(err, ErrEmptyResponse))

	prose := NewRecipeAssistant(&stubGenerator{reply: "Sorry, no recipe today."})
	_, err = prose.GenerateRecipe(ctx, RecipeRequest{Ingredients: []string{"eggs"}})
	assert.True(t, errors.Is(err, ErrNoJSONObject))
}

func TestSuggestionsAndTips(t *testing.T) {
	ctx := context.Background()

	llm := &stubGenerator{reply: `Here: ["Omelette", "Rice bowl"]`}
	ideas, err := NewRecipeAssistant(llm).SuggestRecipes(ctx, []string{"eggs", "rice"}, []string{"eggs"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Omelette", "Rice bowl"}, ideas)
	assert.Contains(t, llm.prompt, "Based on ingredients: eggs, rice")
	assert.Contains(t, llm.prompt, "Priority ingredients: eggs")

	llm = &stubGenerator{reply: `["Salt the water"]`}
	tips, err := NewRecipeAssistant(llm).CookingTips(ctx, "Pasta", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Salt the water"}, tips)
	assert.Contains(t, llm.prompt, "Recipe: Pasta")
	assert.Contains(t, llm.prompt, "Ingredients: N/A")
}
