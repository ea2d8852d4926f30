package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// updateOwned writes every column of model except the identity columns, but only
// when the row with that id belongs to userID.
func updateOwned(tx *gorm.DB, model any, id uint, userID uint) error {
	result := tx.Model(model).
		Where("id = ? AND user_id = ?", id, userID).
		Select("*").
		Omit("id", "user_id", "created_at", clause.Associations).
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
