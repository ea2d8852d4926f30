package dto

type IngredientInput struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"gte=0"`
	Unit     string  `json:"unit"`
}

type NutritionInput struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
}

type CreateRecipeInput struct {
	Name         string            `json:"name" binding:"required"`
	Description  string            `json:"description"`
	CuisineType  string            `json:"cuisine_type"`
	Difficulty   string            `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	PrepTime     int               `json:"prep_time" binding:"gte=0"`
	CookTime     int               `json:"cook_time" binding:"gte=0"`
	Servings     int               `json:"servings" binding:"gte=0"`
	Instructions []string          `json:"instructions"`
	DietaryTags  []string          `json:"dietary_tags"`
	UserNotes    string            `json:"user_notes"`
	ImageURL     string            `json:"image_url"`
	Ingredients  []IngredientInput `json:"ingredients" binding:"dive"`
	Nutrition    *NutritionInput   `json:"nutrition"`
}

type UpdateRecipeInput struct {
	Name         *string            `json:"name" binding:"omitempty,min=1"`
	Description  *string            `json:"description"`
	CuisineType  *string            `json:"cuisine_type"`
	Difficulty   *string            `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	PrepTime     *int               `json:"prep_time" binding:"omitempty,gte=0"`
	CookTime     *int               `json:"cook_time" binding:"omitempty,gte=0"`
	Servings     *int               `json:"servings" binding:"omitempty,gte=0"`
	Instructions *[]string          `json:"instructions"`
	DietaryTags  *[]string          `json:"dietary_tags"`
	UserNotes    *string            `json:"user_notes"`
	ImageURL     *string            `json:"image_url"`
	Ingredients  *[]IngredientInput `json:"ingredients" binding:"omitempty,dive"`
	Nutrition    *NutritionInput    `json:"nutrition"`
}

type RecipeFilter struct {
	Search      string `form:"search"`
	CuisineType string `form:"cuisine_type"`
	Difficulty  string `form:"difficulty"`
	DietaryTag  string `form:"dietary_tag"`
	MaxCookTime int    `form:"max_cook_time" binding:"gte=0"`
	SortBy      string `form:"sort_by" binding:"omitempty,oneof=created_at name prep_time cook_time difficulty"`
	SortOrder   string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Limit       int    `form:"limit" binding:"gte=0,lte=100"`
	Offset      int    `form:"offset" binding:"gte=0"`
}

type RecipeStats struct {
	TotalRecipes     int64   `json:"total_recipes"`
	CuisineTypeCount int64   `json:"cuisine_type_count"`
	AvgCookTime      float64 `json:"avg_cook_time"`
}

type GenerateRecipeInput struct {
	Ingredients         []string `json:"ingredients"`
	UsePantry           bool     `json:"use_pantry"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	CuisineType         string   `json:"cuisine_type"`
	Servings            int      `json:"servings" binding:"gte=0"`
	CookingTime         string   `json:"cooking_time" binding:"omitempty,oneof=short medium long"`
}
