package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
)

type MealPlan struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;uniqueIndex:idx_meal_plans_slot,priority:1" json:"user_id"`
	RecipeID  uint           `gorm:"not null;index" json:"recipe_id"`
	MealDate  datatypes.Date `gorm:"not null;uniqueIndex:idx_meal_plans_slot,priority:2" json:"meal_date"`
	MealType  string         `gorm:"not null;uniqueIndex:idx_meal_plans_slot,priority:3" json:"meal_type"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	Recipe *Recipe `gorm:"constraint:OnDelete:CASCADE;" json:"recipe,omitempty"`
}
