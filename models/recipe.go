package models

import (
	"time"

	"gorm.io/datatypes"
)

type Recipe struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	UserID       uint                        `gorm:"not null;index" json:"user_id"`
	Name         string                      `gorm:"not null" json:"name"`
	Description  string                      `json:"description"`
	CuisineType  string                      `json:"cuisine_type"`
	Difficulty   string                      `json:"difficulty"`
	PrepTime     int                         `json:"prep_time"`
	CookTime     int                         `json:"cook_time"`
	Servings     int                         `json:"servings"`
	Instructions datatypes.JSONSlice[string] `json:"instructions"`
	DietaryTags  datatypes.JSONSlice[string] `json:"dietary_tags"`
	UserNotes    string                      `json:"user_notes"`
	ImageURL     string                      `json:"image_url"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`

	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE;" json:"ingredients"`
	Nutrition   *RecipeNutrition   `gorm:"constraint:OnDelete:CASCADE;" json:"nutrition"`
}

type RecipeIngredient struct {
	ID             uint    `gorm:"primaryKey" json:"-"`
	RecipeID       uint    `gorm:"not null;index" json:"-"`
	IngredientName string  `gorm:"not null" json:"name"`
	Quantity       float64 `gorm:"not null;default:0" json:"quantity"`
	Unit           string  `json:"unit"`
	Position       int     `gorm:"not null;default:0" json:"-"`
}

type RecipeNutrition struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	RecipeID uint    `gorm:"not null;uniqueIndex" json:"-"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
}

// TableName keeps the singular table name used by the SQL migrations.
func (RecipeNutrition) TableName() string { return "recipe_nutrition" }
