package ai

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/tidwall/gjson"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

var prompts = template.Must(template.New("prompts").
	Funcs(template.FuncMap{"join": strings.Join}).
	ParseFS(promptFS, "prompts/*.tmpl"))

const (
	DefaultCuisine  = "any"
	DefaultServings = 4
)

var timeGuide = map[string]string{
	"short":  "under 30 minutes",
	"medium": "30-60 minutes",
	"long":   "over 60 minutes",
}

// TimeBucket maps a cooking-time keyword onto the wording used in the prompt.
func TimeBucket(cookingTime string) string {
	if guide, ok := timeGuide[cookingTime]; ok {
		return guide
	}
	return "any"
}

type RecipeRequest struct {
	Ingredients         []string
	DietaryRestrictions []string
	CuisineType         string
	Servings            int
	CookingTime         string
}

type GeneratedIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Required bool    `json:"required"`
}

type GeneratedNutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
}

type GeneratedRecipe struct {
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	CuisineType  string                `json:"cuisine_type"`
	Difficulty   string                `json:"difficulty"`
	PrepTime     int                   `json:"prep_time"`
	CookTime     int                   `json:"cook_time"`
	Servings     int                   `json:"servings"`
	Ingredients  []GeneratedIngredient `json:"ingredients"`
	Instructions []string              `json:"instructions"`
	DietaryTags  []string              `json:"dietary_tags"`
	Nutrition    *GeneratedNutrition   `json:"nutrition,omitempty"`
	CookingTips  []string              `json:"cooking_tips"`
}

// RecipeAssistant asks a TextGenerator for recipes, ideas and tips.
type RecipeAssistant struct {
	llm TextGenerator
}

func NewRecipeAssistant(llm TextGenerator) *RecipeAssistant {
	return &RecipeAssistant{llm: llm}
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := prompts.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// RecipePrompt renders the recipe prompt with defaults applied.
func RecipePrompt(req RecipeRequest) (string, error) {
	cuisine := strings.TrimSpace(req.CuisineType)
	if cuisine == "" {
		cuisine = DefaultCuisine
	}
	servings := req.Servings
	if servings <= 0 {
		servings = DefaultServings
	}
	return render("recipe.tmpl", map[string]any{
		"Ingredients":         req.Ingredients,
		"DietaryRestrictions": req.DietaryRestrictions,
		"CuisineType":         cuisine,
		"Servings":            servings,
		"CookingTime":         TimeBucket(req.CookingTime),
	})
}

func (a *RecipeAssistant) GenerateRecipe(ctx context.Context, req RecipeRequest) (*GeneratedRecipe, error) {
	prompt, err := RecipePrompt(req)
	if err != nil {
		return nil, err
	}
	reply, err := a.llm.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}
	obj, err := ExtractObject(reply)
	if err != nil {
		return nil, err
	}
	return decodeRecipe(obj, req.Ingredients), nil
}

func (a *RecipeAssistant) SuggestRecipes(ctx context.Context, pantry []string, expiring []string) ([]string, error) {
	prompt, err := render("suggestions.tmpl", map[string]any{
		"Ingredients": pantry,
		"Priority":    expiring,
	})
	if err != nil {
		return nil, err
	}
	reply, err := a.llm.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ExtractStrings(reply)
}

func (a *RecipeAssistant) CookingTips(ctx context.Context, recipeName string, ingredients []string) ([]string, error) {
	prompt, err := render("tips.tmpl", map[string]any{
		"Name":        recipeName,
		"Ingredients": ingredients,
	})
	if err != nil {
		return nil, err
	}
	reply, err := a.llm.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ExtractStrings(reply)
}

// field reads the first of the given keys present on obj, so both snake_case and
// camelCase replies decode.
func field(obj gjson.Result, keys ...string) gjson.Result {
	for _, key := range keys {
		if v := obj.Get(key); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

func stringList(v gjson.Result) []string {
	out := []string{}
	for _, item := range v.Array() {
		if s := strings.TrimSpace(item.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// decodeRecipe marks every ingredient the caller did not supply as required.
func decodeRecipe(obj gjson.Result, supplied []string) *GeneratedRecipe {
	have := make(map[string]bool, len(supplied))
	for _, name := range supplied {
		have[strings.ToLower(strings.TrimSpace(name))] = true
	}

	recipe := &GeneratedRecipe{
		Name:         field(obj, "name").String(),
		Description:  field(obj, "description").String(),
		CuisineType:  field(obj, "cuisine_type", "cuisineType").String(),
		Difficulty:   field(obj, "difficulty").String(),
		PrepTime:     int(field(obj, "prep_time", "prepTime").Int()),
		CookTime:     int(field(obj, "cook_time", "cookTime").Int()),
		Servings:     int(field(obj, "servings").Int()),
		Ingredients:  []GeneratedIngredient{},
		Instructions: stringList(field(obj, "instructions")),
		DietaryTags:  stringList(field(obj, "dietary_tags", "dietaryTags")),
		CookingTips:  stringList(field(obj, "cooking_tips", "cookingTips")),
	}

	for _, ing := range field(obj, "ingredients").Array() {
		name := strings.TrimSpace(field(ing, "name", "ingredient_name", "ingredientName").String())
		recipe.Ingredients = append(recipe.Ingredients, GeneratedIngredient{
			Name:     name,
			Quantity: field(ing, "quantity").Float(),
			Unit:     field(ing, "unit").String(),
			Required: !have[strings.ToLower(name)],
		})
	}

	if n := field(obj, "nutrition"); n.IsObject() {
		recipe.Nutrition = &GeneratedNutrition{
			Calories: n.Get("calories").Float(),
			Protein:  n.Get("protein").Float(),
			Carbs:    n.Get("carbs").Float(),
			Fats:     field(n, "fats", "fat").Float(),
			Fiber:    n.Get("fiber").Float(),
		}
	}
	return recipe
}
