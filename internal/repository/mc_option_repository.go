package repository

import (
	"context"

	"github.com/lshigami/questionbank/internal/model"
	"gorm.io/gorm"
)

type MCOptionRepository interface {
	Create(ctx context.Context, option *model.MCOption) error
	FindByID(ctx context.Context, id uint) (*model.MCOption, error)
	FindAllIDs(ctx context.Context) ([]uint, error)
	FindByQuestionID(ctx context.Context, qid uint) ([]model.MCOption, error)
	Update(ctx context.Context, option *model.MCOption) error
	Delete(ctx context.Context, id uint) error
	DeleteByQuestionID(ctx context.Context, qid uint) (int64, error)
	WithTx(tx *gorm.DB) MCOptionRepository
}

type mcOptionRepository struct {
	db *gorm.DB
}

func NewMCOptionRepository(db *gorm.DB) MCOptionRepository {
	return &mcOptionRepository{db: db}
}

func (r *mcOptionRepository) WithTx(tx *gorm.DB) MCOptionRepository {
	return &mcOptionRepository{db: tx}
}

func (r *mcOptionRepository) Create(ctx context.Context, option *model.MCOption) error {
	return r.db.WithContext(ctx).Create(option).Error
}

func (r *mcOptionRepository) FindByID(ctx context.Context, id uint) (*model.MCOption, error) {
	var option model.MCOption
	if err := r.db.WithContext(ctx).First(&option, id).Error; err != nil {
		return nil, translate(err)
	}
	return &option, nil
}

func (r *mcOptionRepository) FindAllIDs(ctx context.Context) ([]uint, error) {
	return pluckIDs(r.db.WithContext(ctx), &model.MCOption{})
}

func (r *mcOptionRepository) FindByQuestionID(ctx context.Context, qid uint) ([]model.MCOption, error) {
	var options []model.MCOption
	if err := r.db.WithContext(ctx).Where("qid = ?", qid).Order("id ASC").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *mcOptionRepository) Update(ctx context.Context, option *model.MCOption) error {
	// Select forces is_true=false to be written; Updates skips zero values otherwise.
	return r.db.WithContext(ctx).Model(option).Select("is_true", "option_text", "qid", "updated_at").Updates(option).Error
}

func (r *mcOptionRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.MCOption{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mcOptionRepository) DeleteByQuestionID(ctx context.Context, qid uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("qid = ?", qid).Delete(&model.MCOption{})
	return res.RowsAffected, res.Error
}
