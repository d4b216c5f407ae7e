package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an id does not resolve to a row.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// pluckIDs returns every id of the model's table in ascending order.
func pluckIDs(db *gorm.DB, m any) ([]uint, error) {
	ids := make([]uint, 0)
	if err := db.Model(m).Order("id ASC").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
