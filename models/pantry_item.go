package models

import (
	"time"

	"gorm.io/datatypes"
)

type PantryItem struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	UserID         uint            `gorm:"not null;index" json:"user_id"`
	Name           string          `gorm:"not null" json:"name"`
	Quantity       float64         `gorm:"not null;default:0" json:"quantity"`
	Unit           string          `json:"unit"`
	Category       string          `json:"category"`
	ExpirationDate *datatypes.Date `json:"expiration_date"`
	IsRunningLow   bool            `gorm:"not null;default:false" json:"is_running_low"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
