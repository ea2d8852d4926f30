package models

import "time"

const DefaultCategory = "Uncategorized"

type ShoppingListItem struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	IngredientName string    `gorm:"not null" json:"ingredient_name"`
	Quantity       float64   `gorm:"not null;default:0" json:"quantity"`
	Unit           string    `json:"unit"`
	Category       string    `gorm:"not null;default:'Uncategorized'" json:"category"`
	IsChecked      bool      `gorm:"not null;default:false" json:"is_checked"`
	FromMealPlan   bool      `gorm:"not null;default:false" json:"from_meal_plan"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
