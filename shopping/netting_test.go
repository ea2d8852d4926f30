package shopping

import (
	"testing"

	"gin-pantry/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeShortfalls(t *testing.T) {
	tomatoes := []Requirement{{IngredientName: "tomato", Unit: "pcs", TotalQuantity: 3}}

	tests := []struct {
		name     string
		required []Requirement
		pantry   []models.PantryItem
		want     []Shortfall
	}{
		{
			name:     "partial stock",
			required: tomatoes,
			pantry:   []models.PantryItem{{Name: "Tomato", Quantity: 1, Unit: "pcs"}},
			want:     []Shortfall{{IngredientName: "tomato", Unit: "pcs", Quantity: 2}},
		},
		{
			name:     "no stock",
			required: tomatoes,
			want:     []Shortfall{{IngredientName: "tomato", Unit: "pcs", Quantity: 3}},
		},
		{
			name:     "fully stocked",
			required: tomatoes,
			pantry:   []models.PantryItem{{Name: "TOMATO", Quantity: 5, Unit: "pcs"}},
			want:     []Shortfall{},
		},
		{
			name:     "unit mismatch counts as no stock",
			required: tomatoes,
			pantry:   []models.PantryItem{{Name: "tomato", Quantity: 1, Unit: "kg"}},
			want:     []Shortfall{{IngredientName: "tomato", Unit: "pcs", Quantity: 3}},
		},
		{
			name:     "duplicate pantry rows are summed",
			required: tomatoes,
			pantry: []models.PantryItem{
				{Name: "tomato", Quantity: 1, Unit: "pcs"},
				{Name: "Tomato", Quantity: 1, Unit: "pcs"},
			},
			want: []Shortfall{{IngredientName: "tomato", Unit: "pcs", Quantity: 1}},
		},
		{
			name: "ordered by name then unit",
			required: []Requirement{
				{IngredientName: "rice", Unit: "g", TotalQuantity: 200},
				{IngredientName: "onion", Unit: "pcs", TotalQuantity: 1},
				{IngredientName: "milk", Unit: "ml", TotalQuantity: 100},
				{IngredientName: "milk", Unit: "cup", TotalQuantity: 1},
			},
			want: []Shortfall{
				{IngredientName: "milk", Unit: "cup", Quantity: 1},
				{IngredientName: "milk", Unit: "ml", Quantity: 100},
				{IngredientName: "onion", Unit: "pcs", Quantity: 1},
				{IngredientName: "rice", Unit: "g", Quantity: 200},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeShortfalls(tt.required, tt.pantry))
		})
	}
}

func TestGroupByCategory(t *testing.T) {
	items := []models.ShoppingListItem{
		{ID: 1, IngredientName: "milk", Category: "Dairy"},
		{ID: 2, IngredientName: "apple", Category: "Produce"},
		{ID: 3, IngredientName: "cheese", Category: "Dairy"},
		{ID: 4, IngredientName: "salt", Category: models.DefaultCategory},
	}

	groups := GroupByCategory(items)

	if assert.Len(t, groups, 3) {
		assert.Equal(t, "Dairy", groups[0].Category)
		assert.Equal(t, []uint{1, 3}, []uint{groups[0].Items[0].ID, groups[0].Items[1].ID})
		assert.Equal(t, "Produce", groups[1].Category)
		assert.Equal(t, models.DefaultCategory, groups[2].Category)
	}
	assert.Empty(t, GroupByCategory(nil))
}
