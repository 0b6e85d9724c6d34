// Package counter allocates monotonically increasing numbers from
// the metadata table. Allocation is a single atomic UPDATE followed
// by a read inside the caller's transaction, so two concurrent
// callers can never observe the same value.
package counter

import (
	"github.com/shopops-cloud/shopops/internal/models"
	"gorm.io/gorm"
)

// Next increments the counter stored under key and returns the new
// value. It must be called inside the transaction that consumes the
// number, so a failed caller rolls the allocation back with it.
func Next(tx *gorm.DB, key string) (int64, error) {
	result := tx.Model(&models.Metadata{}).
		Where("key = ?", key).
		UpdateColumn("value", gorm.Expr("value + 1"))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var meta models.Metadata
	if err := tx.First(&meta, "key = ?", key).Error; err != nil {
		return 0, err
	}

	return meta.Value, nil
}

// Current returns the counter value without incrementing it.
func Current(db *gorm.DB, key string) (int64, error) {
	var meta models.Metadata
	if err := db.First(&meta, "key = ?", key).Error; err != nil {
		return 0, err
	}
	return meta.Value, nil
}
