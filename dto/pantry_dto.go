package dto

type CreatePantryItemInput struct {
	Name           string  `json:"name" binding:"required"`
	Quantity       float64 `json:"quantity" binding:"gte=0"`
	Unit           string  `json:"unit"`
	Category       string  `json:"category"`
	ExpirationDate *string `json:"expiration_date" binding:"omitempty,datetime=2006-01-02"`
	IsRunningLow   bool    `json:"is_running_low"`
}

type UpdatePantryItemInput struct {
	Name           *string  `json:"name" binding:"omitempty,min=1"`
	Quantity       *float64 `json:"quantity" binding:"omitempty,gte=0"`
	Unit           *string  `json:"unit"`
	Category       *string  `json:"category"`
	ExpirationDate *string  `json:"expiration_date" binding:"omitempty,datetime=2006-01-02"`
	IsRunningLow   *bool    `json:"is_running_low"`
}

type PantryFilter struct {
	Category     string `form:"category"`
	IsRunningLow *bool  `form:"is_running_low"`
	Search       string `form:"search"`
}

type PantryStats struct {
	TotalItems        int64 `json:"total_items"`
	TotalCategories   int64 `json:"total_categories"`
	RunningLowCount   int64 `json:"running_low_count"`
	ExpiringSoonCount int64 `json:"expiring_soon_count"`
}
