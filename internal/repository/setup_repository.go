package repository

import (
	"context"

	"github.com/lshigami/questionbank/internal/model"
	"gorm.io/gorm"
)

type SetupRepository interface {
	Create(ctx context.Context, setup *model.Setup) error
	FindByID(ctx context.Context, id uint) (*model.Setup, error)
	FindAllIDs(ctx context.Context) ([]uint, error)
	Update(ctx context.Context, setup *model.Setup) error
	Delete(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) SetupRepository
}

type setupRepository struct {
	db *gorm.DB
}

func NewSetupRepository(db *gorm.DB) SetupRepository {
	return &setupRepository{db: db}
}

func (r *setupRepository) WithTx(tx *gorm.DB) SetupRepository {
	return &setupRepository{db: tx}
}

func (r *setupRepository) Create(ctx context.Context, setup *model.Setup) error {
	return r.db.WithContext(ctx).Create(setup).Error
}

func (r *setupRepository) FindByID(ctx context.Context, id uint) (*model.Setup, error) {
	var setup model.Setup
	if err := r.db.WithContext(ctx).First(&setup, id).Error; err != nil {
		return nil, translate(err)
	}
	return &setup, nil
}

func (r *setupRepository) FindAllIDs(ctx context.Context) ([]uint, error) {
	return pluckIDs(r.db.WithContext(ctx), &model.Setup{})
}

func (r *setupRepository) Update(ctx context.Context, setup *model.Setup) error {
	return r.db.WithContext(ctx).Model(setup).Select("setup_text", "updated_at").Updates(setup).Error
}

// Delete removes the row even when sql questions still reference it.
func (r *setupRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Setup{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
