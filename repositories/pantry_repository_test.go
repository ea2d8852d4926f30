package repositories

import (
	"context"
	"errors"
	"testing"

	"gin-pantry/dto"
	"gin-pantry/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func expiringOn(value string) *datatypes.Date {
	d := datatypes.Date(day(value))
	return &d
}

func TestPantryFindAll_FiltersAndIsolation(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewPantryRepository(db)
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")

	for _, item := range []models.PantryItem{
		{UserID: alice.ID, Name: "Whole Milk", Category: "Dairy", IsRunningLow: true},
		{UserID: alice.ID, Name: "Cheddar", Category: "Dairy"},
		{UserID: alice.ID, Name: "Rice", Category: "Grains"},
		{UserID: bob.ID, Name: "Milk", Category: "Dairy"},
	} {
		_, err := repo.Create(ctx, item)
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx, alice.ID, dto.PantryFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "Rice", all[0].Name)

	dairy, err := repo.FindAll(ctx, alice.ID, dto.PantryFilter{Category: "Dairy"})
	require.NoError(t, err)
	assert.Len(t, dairy, 2)

	low := true
	runningLow, err := repo.FindAll(ctx, alice.ID, dto.PantryFilter{IsRunningLow: &low})
	require.NoError(t, err)
	require.Len(t, runningLow, 1)
	assert.Equal(t, "Whole Milk", runningLow[0].Name)

	milk, err := repo.FindAll(ctx, alice.ID, dto.PantryFilter{Search: "milk"})
	require.NoError(t, err)
	require.Len(t, milk, 1)
	assert.Equal(t, alice.ID, milk[0].UserID)
}

func TestPantryUpdateAndDelete_AreScopedToOwner(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewPantryRepository(db)
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")
	item := addPantryItem(t, db, alice.ID, "Rice", 1, "kg")

	stolen := item
	stolen.UserID = bob.ID
	stolen.Quantity = 0
	_, err := repo.Update(ctx, stolen)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = repo.Delete(ctx, item.ID, bob.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	item.Quantity = 0.5
	item.IsRunningLow = true
	updated, err := repo.Update(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, 0.5, updated.Quantity)

	found, err := repo.FindById(ctx, item.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.5, found.Quantity)
	assert.True(t, found.IsRunningLow)

	deleted, err := repo.Delete(ctx, item.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rice", deleted.Name)

	_, err = repo.Delete(ctx, item.ID, alice.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestPantryExpiringAndStats(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewPantryRepository(db)
	user := createUser(t, db, "cook@example.com")

	for _, item := range []models.PantryItem{
		{UserID: user.ID, Name: "Yogurt", Category: "Dairy", ExpirationDate: expiringOn("2026-01-07")},
		{UserID: user.ID, Name: "Milk", Category: "Dairy", ExpirationDate: expiringOn("2026-01-05"), IsRunningLow: true},
		{UserID: user.ID, Name: "Ham", Category: "Meat", ExpirationDate: expiringOn("2026-02-01")},
		{UserID: user.ID, Name: "Old bread", Category: "Bakery", ExpirationDate: expiringOn("2026-01-01")},
		{UserID: user.ID, Name: "Salt"},
	} {
		_, err := repo.Create(ctx, item)
		require.NoError(t, err)
	}

	expiring, err := repo.FindExpiring(ctx, user.ID, day("2026-01-05"), day("2026-01-12"))
	require.NoError(t, err)
	require.Len(t, expiring, 2)
	assert.Equal(t, "Milk", expiring[0].Name)
	assert.Equal(t, "Yogurt", expiring[1].Name)

	stats, err := repo.Stats(ctx, user.ID, day("2026-01-05"))
	require.NoError(t, err)
	assert.EqualValues(t, 5, stats.TotalItems)
	assert.EqualValues(t, 1, stats.RunningLowCount)
	assert.EqualValues(t, 2, stats.ExpiringSoonCount)
	assert.GreaterOrEqual(t, stats.TotalCategories, int64(3))
}
