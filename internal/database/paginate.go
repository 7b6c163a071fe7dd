package database

import (
	"math"

	"gorm.io/gorm"
)

// Paginate counts the rows matched by db and returns one page of them.
// A page below 1 returns every row; a page whose offset would overflow is empty.
func Paginate[T any](db *gorm.DB, page, limit int) ([]T, int64, error) {
	var totalItems int64
	if err := db.Model(new(T)).Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	results := []T{}
	query := db
	if page >= 1 && limit >= 1 {
		if page-1 > math.MaxInt32/limit {
			return results, totalItems, nil
		}
		query = query.Offset((page - 1) * limit).Limit(limit)
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, totalItems, nil
}
