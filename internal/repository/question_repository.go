package repository

import (
	"context"

	"github.com/lshigami/questionbank/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	FindByType(ctx context.Context, qType model.QuestionType) ([]model.Question, error)
	Update(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) QuestionRepository
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) WithTx(tx *gorm.DB) QuestionRepository {
	return &questionRepository{db: tx}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

func (r *questionRepository) FindByType(ctx context.Context, qType model.QuestionType) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).
		Select("id", "type", "question_text").
		Where("type = ?", qType).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Update rewrites the mutable columns. The type column is never part of the set.
func (r *questionRepository) Update(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Model(question).
		Select("question_text", "points", "setup", "answer", "updated_at").
		Updates(question).Error
}

func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Question{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
