package dto

import "gin-pantry/models"

type GenerateShoppingListInput struct {
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

type CreateShoppingListItemInput struct {
	IngredientName string  `json:"ingredient_name" binding:"required"`
	Quantity       float64 `json:"quantity" binding:"gte=0"`
	Unit           string  `json:"unit"`
	Category       string  `json:"category"`
}

type UpdateShoppingListItemInput struct {
	IngredientName *string  `json:"ingredient_name" binding:"omitempty,min=1"`
	Quantity       *float64 `json:"quantity" binding:"omitempty,gte=0"`
	Unit           *string  `json:"unit"`
	Category       *string  `json:"category"`
	IsChecked      *bool    `json:"is_checked"`
}

type ShoppingListGroup struct {
	Category string                    `json:"category"`
	Items    []models.ShoppingListItem `json:"items"`
}
