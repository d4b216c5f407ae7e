package repository

import (
	"context"

	"github.com/lshigami/questionbank/internal/model"
	"gorm.io/gorm"
)

type RubricRepository interface {
	Create(ctx context.Context, rubric *model.Rubric) error
	FindByID(ctx context.Context, id uint) (*model.Rubric, error)
	FindAllIDs(ctx context.Context) ([]uint, error)
	FindByQuestionID(ctx context.Context, qid uint) ([]model.Rubric, error)
	Update(ctx context.Context, rubric *model.Rubric) error
	Delete(ctx context.Context, id uint) error
	DeleteByQuestionID(ctx context.Context, qid uint) (int64, error)
	WithTx(tx *gorm.DB) RubricRepository
}

type rubricRepository struct {
	db *gorm.DB
}

func NewRubricRepository(db *gorm.DB) RubricRepository {
	return &rubricRepository{db: db}
}

func (r *rubricRepository) WithTx(tx *gorm.DB) RubricRepository {
	return &rubricRepository{db: tx}
}

func (r *rubricRepository) Create(ctx context.Context, rubric *model.Rubric) error {
	return r.db.WithContext(ctx).Create(rubric).Error
}

func (r *rubricRepository) FindByID(ctx context.Context, id uint) (*model.Rubric, error) {
	var rubric model.Rubric
	if err := r.db.WithContext(ctx).First(&rubric, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rubric, nil
}

func (r *rubricRepository) FindAllIDs(ctx context.Context) ([]uint, error) {
	return pluckIDs(r.db.WithContext(ctx), &model.Rubric{})
}

func (r *rubricRepository) FindByQuestionID(ctx context.Context, qid uint) ([]model.Rubric, error) {
	var rubrics []model.Rubric
	if err := r.db.WithContext(ctx).Where("qid = ?", qid).Order("id ASC").Find(&rubrics).Error; err != nil {
		return nil, err
	}
	return rubrics, nil
}

func (r *rubricRepository) Update(ctx context.Context, rubric *model.Rubric) error {
	return r.db.WithContext(ctx).Model(rubric).Select("rubric_text", "points", "qid", "updated_at").Updates(rubric).Error
}

func (r *rubricRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Rubric{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *rubricRepository) DeleteByQuestionID(ctx context.Context, qid uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("qid = ?", qid).Delete(&model.Rubric{})
	return res.RowsAffected, res.Error
}
